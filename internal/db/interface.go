package db

import (
	"context"
	"math/big"

	"github.com/keepthisthing/rewards-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	GetReferrerStats(ctx context.Context, referrer string, network string) (*model.ReferrerStatsDocument, error)
	IncrementReferrerStats(ctx context.Context, referrer string, network string, eventID string, bonus *big.Int) (*model.ReferrerStatsDocument, error)
	MarkReferralProcessed(ctx context.Context, eventID string, referrer string, network string) error
	GetProcessedReferral(ctx context.Context, eventID string) (*model.ProcessedEventDocument, error)
	ConfirmReferralApplied(ctx context.Context, eventID string) error
	GetWatchedAccounts(ctx context.Context) ([]model.WatchedAccountDocument, error)
	UpsertWatchedAccount(ctx context.Context, address string, network string) error
}
