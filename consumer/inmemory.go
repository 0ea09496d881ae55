package consumer

import (
	"context"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// InMemoryNotifier buffers notifications on channels. Meant for embedding the
// indexer in another process and for tests; not durable.
type InMemoryNotifier struct {
	eligibility chan *types.EligibilityClaim
	referrals   chan *types.ReferralNotification
}

func NewInMemoryNotifier(bufferSize int) *InMemoryNotifier {
	return &InMemoryNotifier{
		eligibility: make(chan *types.EligibilityClaim, bufferSize),
		referrals:   make(chan *types.ReferralNotification, bufferSize),
	}
}

func (n *InMemoryNotifier) NotifyEligibility(ctx context.Context, claim *types.EligibilityClaim) error {
	select {
	case n.eligibility <- claim:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *InMemoryNotifier) NotifyReferral(ctx context.Context, notification *types.ReferralNotification) error {
	select {
	case n.referrals <- notification:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Eligibility exposes the buffered eligibility claims.
func (n *InMemoryNotifier) Eligibility() <-chan *types.EligibilityClaim {
	return n.eligibility
}

// Referrals exposes the buffered referral snapshots.
func (n *InMemoryNotifier) Referrals() <-chan *types.ReferralNotification {
	return n.referrals
}
