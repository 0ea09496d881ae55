package services

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/testutil"
)

func referralLog(t *testing.T, referrer, claimant common.Address, claimed, claimerBonus, communityBonus *big.Int) gethtypes.Log {
	t.Helper()

	data, err := referralABI.Events["ReferralBonus"].Inputs.NonIndexed().Pack(claimed, claimerBonus, communityBonus)
	require.NoError(t, err)

	return gethtypes.Log{
		Address: testutil.RandomAddress(),
		Topics: []common.Hash{
			ReferralBonusTopic,
			common.BytesToHash(referrer.Bytes()),
			common.BytesToHash(claimant.Bytes()),
		},
		Data:        data,
		BlockNumber: 1_042_117,
		BlockHash:   testutil.RandomHash(),
		TxHash:      testutil.RandomHash(),
		Index:       3,
	}
}

func TestParseReferralLog(t *testing.T) {
	referrer := testutil.RandomAddress()
	claimant := testutil.RandomAddress()

	t.Run("valid log", func(t *testing.T) {
		entry := referralLog(t, referrer, claimant,
			big.NewInt(1_000_000), big.NewInt(50_000), big.NewInt(25_000))

		event, err := parseReferralLog(entry)
		require.NoError(t, err)
		require.Equal(t, referrer, event.Referrer)
		require.Equal(t, claimant, event.Claimant)
		require.Equal(t, big.NewInt(1_000_000), event.ClaimedAmount)
		require.Equal(t, big.NewInt(50_000), event.ClaimedBonus)
		require.Equal(t, big.NewInt(25_000), event.CommunityBonus)
		require.Equal(t, entry.BlockHash, event.BlockHash)
		require.Equal(t, entry.TxHash, event.TxHash)
		require.Equal(t, entry.Index, event.LogIndex)
	})

	t.Run("event identity is stable per log entry", func(t *testing.T) {
		entry := referralLog(t, referrer, claimant,
			big.NewInt(10), big.NewInt(1), big.NewInt(1))

		first, err := parseReferralLog(entry)
		require.NoError(t, err)
		second, err := parseReferralLog(entry)
		require.NoError(t, err)
		require.Equal(t, first.ID(), second.ID())
	})

	t.Run("missing indexed topic", func(t *testing.T) {
		entry := referralLog(t, referrer, claimant, big.NewInt(1), big.NewInt(1), big.NewInt(1))
		entry.Topics = entry.Topics[:2]

		_, err := parseReferralLog(entry)
		require.True(t, types.IsMalformedEventError(err))
	})

	t.Run("foreign event signature", func(t *testing.T) {
		entry := referralLog(t, referrer, claimant, big.NewInt(1), big.NewInt(1), big.NewInt(1))
		entry.Topics[0] = testutil.RandomHash()

		_, err := parseReferralLog(entry)
		require.True(t, types.IsMalformedEventError(err))
	})

	t.Run("truncated data payload", func(t *testing.T) {
		entry := referralLog(t, referrer, claimant, big.NewInt(1), big.NewInt(1), big.NewInt(1))
		entry.Data = entry.Data[:32]

		_, err := parseReferralLog(entry)
		require.True(t, types.IsMalformedEventError(err))
	})
}
