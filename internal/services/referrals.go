package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/internal/db"
	"github.com/keepthisthing/rewards-indexer/internal/observability/metrics"
	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// TrackReferrals opens a referral subscription for the account: one
// historical replay from contract deployment plus a live log stream, both
// funnelled through the same idempotent handler. Accounts on an unsupported
// network and accounts already under watch are no-ops.
func (s *Service) TrackReferrals(ctx context.Context, account types.WatchedAccount) {
	if account.Network != s.cfg.Eth.SupportedNetwork() {
		log.Ctx(ctx).Debug().
			Str("account", account.Address.Hex()).
			Str("network", account.Network.String()).
			Msg("Skipping account on unsupported network")
		return
	}

	s.watchedMu.Lock()
	if _, ok := s.watched[account.Key()]; ok {
		s.watchedMu.Unlock()
		return
	}
	s.watched[account.Key()] = struct{}{}
	active := len(s.watched)
	s.watchedMu.Unlock()

	metrics.RecordActiveSubscriptions(active)
	log.Ctx(ctx).Info().
		Str("account", account.Address.Hex()).
		Str("network", account.Network.String()).
		Msg("Tracking referral events for account")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.watchReferralEvents(ctx, account)
	}()
}

// GetReferrerStats reads the current ledger entry for a referrer. Referrers
// with no recorded referrals get a zero-valued entry.
func (s *Service) GetReferrerStats(ctx context.Context, referrer common.Address) (*types.ReferrerStats, error) {
	network := s.cfg.Eth.SupportedNetwork()
	doc, err := s.db.GetReferrerStats(ctx, referrer.Hex(), network.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load referrer stats: %w", err)
	}

	totalBonus, ok := new(big.Int).SetString(doc.TotalBonus, 10)
	if !ok {
		return nil, fmt.Errorf("corrupt total bonus %q for referrer %s", doc.TotalBonus, referrer.Hex())
	}

	return &types.ReferrerStats{
		Referrer:      referrer,
		Network:       network,
		TotalReferred: doc.TotalReferred,
		TotalBonus:    totalBonus,
	}, nil
}

// referralFilter matches ReferralBonus events emitted by any hunting ground
// contract with the account as referrer.
func (s *Service) referralFilter(referrer common.Address) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(s.cfg.Claims.EarliestDeployBlock()),
		Addresses: s.cfg.Claims.Contracts(),
		Topics: [][]common.Hash{
			{ReferralBonusTopic},
			{common.BytesToHash(referrer.Bytes())},
		},
	}
}

// watchReferralEvents keeps the subscription for one account alive for the
// lifetime of the service, reopening it after transport or registration
// failures. Replayed history after a reconnect is absorbed by event identity
// dedup.
func (s *Service) watchReferralEvents(ctx context.Context, account types.WatchedAccount) {
	ctx, cancel := s.quitContext(ctx)
	defer cancel()

	for {
		err := s.runReferralSubscription(ctx, account)
		if ctx.Err() != nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).
			Str("account", account.Address.Hex()).
			Msg("Referral subscription interrupted, reconnecting")

		select {
		case <-time.After(s.cfg.Eth.RetryInterval):
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) runReferralSubscription(ctx context.Context, account types.WatchedAccount) error {
	query := s.referralFilter(account.Address)

	// Subscribe before replaying history so no event can fall between the
	// end of the replay and the start of the live stream. The overlap is
	// deduplicated downstream.
	liveLogs := make(chan gethtypes.Log)
	sub, err := s.chain.SubscribeLogs(ctx, query, liveLogs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to referral logs: %w", err)
	}
	defer sub.Unsubscribe()

	if err := s.replayReferralHistory(ctx, account, query); err != nil {
		return err
	}

	for {
		select {
		case entry := <-liveLogs:
			if err := s.handleReferralLog(ctx, account, entry); err != nil {
				return err
			}
		case err := <-sub.Err():
			return fmt.Errorf("referral subscription failed: %w", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Service) replayReferralHistory(ctx context.Context, account types.WatchedAccount, query ethereum.FilterQuery) error {
	start := time.Now()
	entries, err := s.chain.FilterLogs(ctx, query)
	metrics.RecordHistoricalReplayDuration(time.Since(start), err != nil)
	if err != nil {
		return fmt.Errorf("failed to replay referral history: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("account", account.Address.Hex()).
		Int("events", len(entries)).
		Msg("Replaying historical referral events")

	for _, entry := range entries {
		if err := s.handleReferralLog(ctx, account, entry); err != nil {
			return err
		}
	}
	return nil
}

// handleReferralLog decodes and registers one log entry. Malformed entries
// are counted and dropped. A registration failure is returned so the whole
// subscription restarts: events for one referrer must land in log order, and
// the replay after the restart re-walks them from the top.
func (s *Service) handleReferralLog(ctx context.Context, account types.WatchedAccount, entry gethtypes.Log) error {
	event, err := parseReferralLog(entry)
	if err != nil {
		metrics.IncMalformedEvents()
		log.Ctx(ctx).Warn().Err(err).
			Str("tx_hash", entry.TxHash.Hex()).
			Uint("log_index", entry.Index).
			Msg("Dropping malformed referral event")
		return nil
	}

	if err := s.registerReferral(ctx, account.Network, event); err != nil {
		metrics.IncReferralEvents("failed")
		log.Ctx(ctx).Error().Err(err).
			Str("referrer", event.Referrer.Hex()).
			Str("event_id", event.ID()).
			Msg("Failed to register referral event")
		return err
	}
	return nil
}

// registerReferral applies a referral event to the referrer's ledger exactly
// once. The event is marked as seen first, then credited, then the marker is
// confirmed. A seen-but-unconfirmed marker means an earlier attempt died
// mid-registration; the next delivery of the event resumes it, and the
// per-event guard in IncrementReferrerStats keeps the resume from crediting
// a second time.
func (s *Service) registerReferral(ctx context.Context, network types.Network, event *types.ReferralEvent) error {
	unlock := s.referrerLocks.lock(event.Referrer.Hex())
	defer unlock()

	err := s.db.MarkReferralProcessed(ctx, event.ID(), event.Referrer.Hex(), network.String())
	if err != nil {
		if !db.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to mark referral event processed: %w", err)
		}
		marker, markerErr := s.db.GetProcessedReferral(ctx, event.ID())
		if markerErr != nil {
			return fmt.Errorf("failed to load processed referral marker: %w", markerErr)
		}
		if marker.Applied {
			metrics.IncReferralEvents("duplicate")
			log.Ctx(ctx).Debug().
				Str("event_id", event.ID()).
				Msg("Skipping already processed referral event")
			return nil
		}
		log.Ctx(ctx).Warn().
			Str("event_id", event.ID()).
			Msg("Resuming referral event left unapplied by an interrupted registration")
	}

	stats, err := s.db.IncrementReferrerStats(ctx, event.Referrer.Hex(), network.String(), event.ID(), event.CommunityBonus)
	if err != nil {
		// the unapplied marker stays behind so the next delivery retries
		return fmt.Errorf("failed to update referrer stats: %w", err)
	}

	if err := s.db.ConfirmReferralApplied(ctx, event.ID()); err != nil {
		return fmt.Errorf("failed to confirm referral event applied: %w", err)
	}

	metrics.IncReferralEvents("processed")
	log.Ctx(ctx).Info().
		Str("referrer", event.Referrer.Hex()).
		Str("claimant", event.Claimant.Hex()).
		Str("community_bonus", event.CommunityBonus.String()).
		Uint64("total_referred", stats.TotalReferred).
		Msg("Registered referral event")

	totalBonus, ok := new(big.Int).SetString(stats.TotalBonus, 10)
	if !ok {
		return fmt.Errorf("corrupt total bonus %q for referrer %s", stats.TotalBonus, event.Referrer.Hex())
	}
	notification := &types.ReferralNotification{
		Referrer:      event.Referrer,
		Network:       network,
		TotalReferred: stats.TotalReferred,
		TotalBonus:    totalBonus,
	}
	if notifyErr := s.notifier.NotifyReferral(ctx, notification); notifyErr != nil {
		metrics.IncNotificationErrors("referral")
		log.Ctx(ctx).Error().Err(notifyErr).
			Str("referrer", event.Referrer.Hex()).
			Msg("Failed to publish referral notification")
	}
	return nil
}
