package services

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

const referralEventJSON = `[{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "internalType": "address", "name": "referrer", "type": "address"},
		{"indexed": true, "internalType": "address", "name": "claimant", "type": "address"},
		{"indexed": false, "internalType": "uint256", "name": "amountClaimed", "type": "uint256"},
		{"indexed": false, "internalType": "uint256", "name": "claimerBonus", "type": "uint256"},
		{"indexed": false, "internalType": "uint256", "name": "communityBonus", "type": "uint256"}
	],
	"name": "ReferralBonus",
	"type": "event"
}]`

var (
	referralABI = func() abi.ABI {
		parsed, err := abi.JSON(strings.NewReader(referralEventJSON))
		if err != nil {
			panic(fmt.Sprintf("invalid referral event ABI: %v", err))
		}
		return parsed
	}()

	// ReferralBonusTopic is the topic0 signature hash of the ReferralBonus event.
	ReferralBonusTopic = referralABI.Events["ReferralBonus"].ID
)

// parseReferralLog decodes a raw chain log into a ReferralEvent. Logs that do
// not match the ReferralBonus layout yield a *types.MalformedEventError.
func parseReferralLog(entry gethtypes.Log) (*types.ReferralEvent, error) {
	if len(entry.Topics) != 3 {
		return nil, &types.MalformedEventError{
			Reason: fmt.Sprintf("expected 3 topics, got %d", len(entry.Topics)),
		}
	}
	if entry.Topics[0] != ReferralBonusTopic {
		return nil, &types.MalformedEventError{
			Reason: fmt.Sprintf("unexpected event signature %s", entry.Topics[0].Hex()),
		}
	}

	values, err := referralABI.Unpack("ReferralBonus", entry.Data)
	if err != nil {
		return nil, &types.MalformedEventError{
			Reason: fmt.Sprintf("failed to unpack event data: %v", err),
		}
	}
	if len(values) != 3 {
		return nil, &types.MalformedEventError{
			Reason: fmt.Sprintf("expected 3 data values, got %d", len(values)),
		}
	}

	amounts := make([]*big.Int, 3)
	for i, value := range values {
		amount, ok := value.(*big.Int)
		if !ok {
			return nil, &types.MalformedEventError{
				Reason: fmt.Sprintf("data value %d is not a uint256", i),
			}
		}
		amounts[i] = amount
	}

	return &types.ReferralEvent{
		Referrer:       common.BytesToAddress(entry.Topics[1].Bytes()),
		Claimant:       common.BytesToAddress(entry.Topics[2].Bytes()),
		ClaimedAmount:  amounts[0],
		ClaimedBonus:   amounts[1],
		CommunityBonus: amounts[2],
		BlockNumber:    entry.BlockNumber,
		BlockHash:      entry.BlockHash,
		TxHash:         entry.TxHash,
		LogIndex:       entry.Index,
	}, nil
}
