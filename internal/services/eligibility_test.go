package services

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keepthisthing/rewards-indexer/internal/clients/claimclient"
	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/merkle"
	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/testutil"
	"github.com/keepthisthing/rewards-indexer/tests/mocks"
)

// claimFixture is a two-leaf distribution tree with real proofs: each
// address's proof is the other leaf.
type claimFixture struct {
	cfg      *config.Config
	eligible common.Address
	other    common.Address
	shard    *claimclient.TrustedDataFile
	amount   *big.Int
}

func newClaimFixture(t *testing.T) *claimFixture {
	t.Helper()

	eligible := testutil.RandomAddress()
	other := testutil.RandomAddress()
	amount := big.NewInt(1_250_000)
	otherAmount := big.NewInt(40_000)

	leaf := merkle.LeafHash(0, eligible, amount)
	otherLeaf := merkle.LeafHash(1, other, otherAmount)
	root := merkle.FoldProof(leaf, []common.Hash{otherLeaf})

	shard := claimclient.ClaimShard{
		Claims: map[string]claimclient.ClaimRecord{
			strings.ToLower(eligible.Hex()): {
				Index:  0,
				Amount: amount.String(),
				Proof:  []string{otherLeaf.Hex()},
			},
			strings.ToLower(other.Hex()): {
				Index:  1,
				Amount: otherAmount.String(),
				Proof:  []string{leaf.Hex()},
			},
		},
	}
	raw, err := json.Marshal(shard)
	require.NoError(t, err)

	return &claimFixture{
		cfg: &config.Config{
			Eth: config.EthConfig{Network: "ethereum"},
			Claims: config.ClaimsConfig{
				MerkleRoot: root.Hex(),
			},
		},
		eligible: eligible,
		other:    other,
		amount:   amount,
		shard: &claimclient.TrustedDataFile{
			Shard: claimclient.ShardFor(eligible),
			Bytes: raw,
		},
	}
}

func (f *claimFixture) mutate(t *testing.T, fn func(shard *claimclient.ClaimShard)) {
	t.Helper()

	var shard claimclient.ClaimShard
	require.NoError(t, json.Unmarshal(f.shard.Bytes, &shard))
	fn(&shard)
	raw, err := json.Marshal(shard)
	require.NoError(t, err)
	f.shard.Bytes = raw
}

func TestGetEligibility(t *testing.T) {
	ctx := t.Context()

	t.Run("eligible address with valid proof", func(t *testing.T) {
		fixture := newClaimFixture(t)

		claims := mocks.NewClaimsInterface(t)
		claims.On("FetchTrusted", mock.Anything, fixture.eligible).Return(fixture.shard, nil)
		notifier := mocks.NewNotifier(t)
		notifier.On("NotifyEligibility", mock.Anything, mock.Anything).Return(nil)

		srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
		claim, err := srv.GetEligibility(ctx, fixture.eligible)
		require.NoError(t, err)
		require.Equal(t, fixture.eligible, claim.Account)
		require.Equal(t, uint64(0), claim.Index)
		require.Equal(t, fixture.amount, claim.Amount)
		require.Len(t, claim.Proof, 1)
	})

	t.Run("absent address is not eligible", func(t *testing.T) {
		fixture := newClaimFixture(t)
		absent := testutil.RandomAddress()
		fixture.shard.Shard = claimclient.ShardFor(absent)

		claims := mocks.NewClaimsInterface(t)
		claims.On("FetchTrusted", mock.Anything, absent).Return(fixture.shard, nil)
		notifier := mocks.NewNotifier(t)

		srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
		_, err := srv.GetEligibility(ctx, absent)
		require.True(t, types.IsNotEligibleError(err))
		notifier.AssertNotCalled(t, "NotifyEligibility", mock.Anything, mock.Anything)
	})

	t.Run("tampered proof node fails verification", func(t *testing.T) {
		fixture := newClaimFixture(t)
		fixture.mutate(t, func(shard *claimclient.ClaimShard) {
			record := shard.Claims[strings.ToLower(fixture.eligible.Hex())]
			record.Proof[0] = testutil.RandomHash().Hex()
			shard.Claims[strings.ToLower(fixture.eligible.Hex())] = record
		})

		claims := mocks.NewClaimsInterface(t)
		claims.On("FetchTrusted", mock.Anything, fixture.eligible).Return(fixture.shard, nil)
		notifier := mocks.NewNotifier(t)

		srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
		_, err := srv.GetEligibility(ctx, fixture.eligible)
		require.True(t, types.IsProofInvalidError(err))
	})

	t.Run("tampered amount fails verification", func(t *testing.T) {
		fixture := newClaimFixture(t)
		fixture.mutate(t, func(shard *claimclient.ClaimShard) {
			record := shard.Claims[strings.ToLower(fixture.eligible.Hex())]
			record.Amount = new(big.Int).Add(fixture.amount, big.NewInt(1)).String()
			shard.Claims[strings.ToLower(fixture.eligible.Hex())] = record
		})

		claims := mocks.NewClaimsInterface(t)
		claims.On("FetchTrusted", mock.Anything, fixture.eligible).Return(fixture.shard, nil)
		notifier := mocks.NewNotifier(t)

		srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
		_, err := srv.GetEligibility(ctx, fixture.eligible)
		require.True(t, types.IsProofInvalidError(err))
	})

	t.Run("unparseable record surfaces as invalid proof", func(t *testing.T) {
		for name, corrupt := range map[string]func(record *claimclient.ClaimRecord){
			"non numeric amount": func(record *claimclient.ClaimRecord) {
				record.Amount = "not-a-number"
			},
			"truncated proof node": func(record *claimclient.ClaimRecord) {
				record.Proof[0] = "0x1234"
			},
		} {
			t.Run(name, func(t *testing.T) {
				fixture := newClaimFixture(t)
				key := strings.ToLower(fixture.eligible.Hex())
				fixture.mutate(t, func(shard *claimclient.ClaimShard) {
					record := shard.Claims[key]
					corrupt(&record)
					shard.Claims[key] = record
				})

				claims := mocks.NewClaimsInterface(t)
				claims.On("FetchTrusted", mock.Anything, fixture.eligible).Return(fixture.shard, nil)
				notifier := mocks.NewNotifier(t)

				srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
				_, err := srv.GetEligibility(ctx, fixture.eligible)
				require.True(t, types.IsProofInvalidError(err))
			})
		}
	})

	t.Run("notification failure does not fail the check", func(t *testing.T) {
		fixture := newClaimFixture(t)

		claims := mocks.NewClaimsInterface(t)
		claims.On("FetchTrusted", mock.Anything, fixture.eligible).Return(fixture.shard, nil)
		notifier := mocks.NewNotifier(t)
		notifier.On("NotifyEligibility", mock.Anything, mock.Anything).Return(errors.New("queue unavailable"))

		srv := NewService(fixture.cfg, nil, nil, claims, nil, notifier)
		claim, err := srv.GetEligibility(ctx, fixture.eligible)
		require.NoError(t, err)
		require.NotNil(t, claim)
	})
}
