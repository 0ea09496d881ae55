package consumer

import (
	"context"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// Notifier receives the outbound notifications the indexer emits: a verified
// eligibility claim and a refreshed referrer ledger snapshot. Implementations
// must tolerate being called concurrently.
//
//go:generate mockery --name=Notifier --output=../tests/mocks --outpkg=mocks --filename=mock_notifier.go
type Notifier interface {
	NotifyEligibility(ctx context.Context, claim *types.EligibilityClaim) error
	NotifyReferral(ctx context.Context, notification *types.ReferralNotification) error
}
