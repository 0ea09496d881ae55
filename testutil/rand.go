package testutil

import (
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ethereum/go-ethereum/common"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// RandomAddress generates a random EVM address
func RandomAddress() common.Address {
	var addr common.Address
	copy(addr[:], randomBytes(common.AddressLength))
	return addr
}

// RandomHash generates a random 32-byte hash
func RandomHash() common.Hash {
	var hash common.Hash
	copy(hash[:], randomBytes(common.HashLength))
	return hash
}

// RandomReferralEvent generates a referral event with a unique log identity
// for the given referrer
func RandomReferralEvent(referrer common.Address) *types.ReferralEvent {
	return &types.ReferralEvent{
		Referrer:       referrer,
		Claimant:       RandomAddress(),
		ClaimedAmount:  big.NewInt(int64(gofakeit.Number(1, 1_000_000))),
		ClaimedBonus:   big.NewInt(int64(gofakeit.Number(1, 10_000))),
		CommunityBonus: big.NewInt(int64(gofakeit.Number(1, 10_000))),
		BlockHash:      RandomHash(),
		TxHash:         RandomHash(),
		LogIndex:       uint(gofakeit.Number(0, 255)),
	}
}

func randomBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(gofakeit.Number(0, 255))
	}
	return buf
}
