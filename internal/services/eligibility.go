package services

import (
	"context"
	"encoding/hex"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/internal/clients/claimclient"
	"github.com/keepthisthing/rewards-indexer/internal/merkle"
	"github.com/keepthisthing/rewards-indexer/internal/observability/metrics"
	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// GetEligibility resolves whether an address is eligible for a token claim.
// The claim record is read from integrity-checked claim data and its merkle
// proof is folded against the published root before anything is returned.
// A verified claim is additionally pushed to the notifier, best effort.
func (s *Service) GetEligibility(ctx context.Context, address common.Address) (*types.EligibilityClaim, error) {
	start := time.Now()
	claim, err := s.getEligibility(ctx, address)
	// a clean negative is not a pipeline failure
	failure := err != nil && !types.IsNotEligibleError(err)
	metrics.RecordEligibilityCheckDuration(time.Since(start), failure)
	if err != nil {
		return nil, err
	}

	if notifyErr := s.notifier.NotifyEligibility(ctx, claim); notifyErr != nil {
		log.Ctx(ctx).Error().Err(notifyErr).
			Str("account", address.Hex()).
			Msg("Failed to publish eligibility notification")
		metrics.IncNotificationErrors("eligibility")
	}

	return claim, nil
}

func (s *Service) getEligibility(ctx context.Context, address common.Address) (*types.EligibilityClaim, error) {
	trusted, err := s.claims.FetchTrusted(ctx, address)
	if err != nil {
		return nil, err
	}

	shard, err := trusted.Decode()
	if err != nil {
		return nil, err
	}

	record, ok := shard.Lookup(address)
	if !ok {
		return nil, &types.NotEligibleError{Address: address}
	}

	claim, err := buildClaim(address, record)
	if err != nil {
		return nil, err
	}

	leaf := merkle.LeafHash(claim.Index, claim.Account, claim.Amount)
	root := s.cfg.Claims.Root()
	if computed := merkle.FoldProof(leaf, claim.Proof); computed != root {
		return nil, &types.ProofInvalidError{
			Address:  address,
			Computed: computed,
			Root:     root,
		}
	}

	log.Ctx(ctx).Debug().
		Str("account", address.Hex()).
		Uint64("index", claim.Index).
		Str("amount", claim.Amount.String()).
		Msg("Verified eligibility claim")

	return claim, nil
}

// buildClaim parses a published leaf record into its typed form. A record
// that cannot be parsed can never fold to the root, so it surfaces as an
// invalid proof rather than a missing claim.
func buildClaim(address common.Address, record claimclient.ClaimRecord) (*types.EligibilityClaim, error) {
	amount, ok := new(big.Int).SetString(record.Amount, 10)
	if !ok || amount.Sign() < 0 {
		return nil, &types.ProofInvalidError{Address: address}
	}

	proof := make([]common.Hash, len(record.Proof))
	for i, node := range record.Proof {
		parsed, err := parseHash(node)
		if err != nil {
			return nil, &types.ProofInvalidError{Address: address}
		}
		proof[i] = parsed
	}

	return &types.EligibilityClaim{
		Index:   record.Index,
		Amount:  amount,
		Account: address,
		Proof:   proof,
	}, nil
}

// parseHash strictly decodes a 0x-prefixed 32-byte hash. common.HexToHash is
// too forgiving for untrusted proof nodes.
func parseHash(s string) (common.Hash, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return common.Hash{}, err
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, hex.ErrLength
	}
	return common.BytesToHash(raw), nil
}
