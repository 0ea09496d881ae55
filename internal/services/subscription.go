package services

import (
	"context"

	"github.com/rs/zerolog/log"
)

// SubscribeToNewAccounts consumes the platform's tracked-account stream and
// brings each announced account under watch. Blocks until ctx is cancelled
// or the stream closes.
func (s *Service) SubscribeToNewAccounts(ctx context.Context) {
	accounts, err := s.accounts.SubscribeNewAccounts(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to subscribe to tracked account stream")
		return
	}
	log.Ctx(ctx).Info().Msg("Subscribed to tracked account stream")

	for {
		select {
		case account, ok := <-accounts:
			if !ok {
				log.Ctx(ctx).Info().Msg("Tracked account stream closed")
				return
			}
			if err := s.db.UpsertWatchedAccount(ctx, account.Address.Hex(), account.Network.String()); err != nil {
				log.Ctx(ctx).Error().Err(err).
					Str("account", account.Address.Hex()).
					Msg("Failed to persist watched account")
			}
			s.TrackReferrals(ctx, account)
		case <-ctx.Done():
			return
		}
	}
}
