package db

import (
	"context"
	"math/big"
	"time"

	"github.com/keepthisthing/rewards-indexer/internal/db/model"
	"github.com/keepthisthing/rewards-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetReferrerStats(ctx context.Context, referrer string, network string) (result *model.ReferrerStatsDocument, err error) {
	//nolint:errcheck
	d.run("GetReferrerStats", func() error {
		result, err = d.db.GetReferrerStats(ctx, referrer, network)
		return err
	})
	return
}

func (d *DbWithMetrics) IncrementReferrerStats(ctx context.Context, referrer string, network string, eventID string, bonus *big.Int) (result *model.ReferrerStatsDocument, err error) {
	//nolint:errcheck
	d.run("IncrementReferrerStats", func() error {
		result, err = d.db.IncrementReferrerStats(ctx, referrer, network, eventID, bonus)
		return err
	})
	return
}

func (d *DbWithMetrics) MarkReferralProcessed(ctx context.Context, eventID string, referrer string, network string) error {
	return d.run("MarkReferralProcessed", func() error {
		return d.db.MarkReferralProcessed(ctx, eventID, referrer, network)
	})
}

func (d *DbWithMetrics) GetProcessedReferral(ctx context.Context, eventID string) (result *model.ProcessedEventDocument, err error) {
	//nolint:errcheck
	d.run("GetProcessedReferral", func() error {
		result, err = d.db.GetProcessedReferral(ctx, eventID)
		return err
	})
	return
}

func (d *DbWithMetrics) ConfirmReferralApplied(ctx context.Context, eventID string) error {
	return d.run("ConfirmReferralApplied", func() error {
		return d.db.ConfirmReferralApplied(ctx, eventID)
	})
}

func (d *DbWithMetrics) GetWatchedAccounts(ctx context.Context) (result []model.WatchedAccountDocument, err error) {
	//nolint:errcheck
	d.run("GetWatchedAccounts", func() error {
		result, err = d.db.GetWatchedAccounts(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertWatchedAccount(ctx context.Context, address string, network string) error {
	return d.run("UpsertWatchedAccount", func() error {
		return d.db.UpsertWatchedAccount(ctx, address, network)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
