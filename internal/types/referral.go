package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ReferralEvent is a single decoded referral bonus log entry. It is consumed
// immediately into the ledger and not retained.
type ReferralEvent struct {
	Referrer       common.Address
	Claimant       common.Address
	ClaimedAmount  *big.Int
	ClaimedBonus   *big.Int
	CommunityBonus *big.Int

	BlockNumber uint64

	// log identity, used for duplicate delivery detection
	BlockHash common.Hash
	TxHash    common.Hash
	LogIndex  uint
}

// ID returns the stable identity of the underlying log entry. Two deliveries
// of the same on-chain event share this identity; two distinct referrals by
// the same referrer/claimant pair do not.
func (e *ReferralEvent) ID() string {
	return fmt.Sprintf("%s|%s|%d", e.BlockHash.Hex(), e.TxHash.Hex(), e.LogIndex)
}

// ReferrerStats is the per-referrer ledger entry. Monotonically
// non-decreasing; mutated only by appending referrals.
type ReferrerStats struct {
	Referrer      common.Address
	Network       Network
	TotalReferred uint64
	TotalBonus    *big.Int
}

// ReferralNotification carries the refreshed stats snapshot emitted after a
// referral lands in the ledger.
type ReferralNotification struct {
	Referrer      common.Address
	Network       Network
	TotalReferred uint64
	TotalBonus    *big.Int
}
