package services

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

const bootstrapMaxRetries = 3

// BootstrapAccounts loads every account tracked before startup and opens a
// referral subscription for each. Runs in the background so live account
// announcements are not held up by a slow database.
func (s *Service) BootstrapAccounts(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := s.quitContext(ctx)
		defer cancel()

		for attempt := 1; attempt <= bootstrapMaxRetries; attempt++ {
			err := s.bootstrapAccounts(ctx)
			if err == nil {
				return
			}
			if ctx.Err() != nil {
				return
			}
			log.Ctx(ctx).Error().Err(err).
				Int("attempt", attempt).
				Msg("Failed to bootstrap watched accounts")

			select {
			case <-time.After(s.cfg.Eth.RetryInterval):
			case <-ctx.Done():
				return
			}
		}
		log.Ctx(ctx).Error().Msg("Giving up on watched account bootstrap")
	}()
}

func (s *Service) bootstrapAccounts(ctx context.Context) error {
	accounts, err := s.db.GetWatchedAccounts(ctx)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Int("accounts", len(accounts)).
		Msg("Bootstrapping watched accounts")

	for _, doc := range accounts {
		network, err := types.ParseNetwork(doc.Network)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).
				Str("account", doc.Address).
				Msg("Skipping watched account with unknown network")
			continue
		}
		s.TrackReferrals(ctx, types.WatchedAccount{
			Address: common.HexToAddress(doc.Address),
			Network: network,
		})
	}
	return nil
}
