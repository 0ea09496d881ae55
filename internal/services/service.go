package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/consumer"
	"github.com/keepthisthing/rewards-indexer/internal/clients/chainclient"
	"github.com/keepthisthing/rewards-indexer/internal/clients/claimclient"
	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/db"
	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// AccountStream delivers accounts the platform starts tracking while the
// indexer runs.
type AccountStream interface {
	SubscribeNewAccounts(ctx context.Context) (<-chan types.WatchedAccount, error)
}

type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	chain    chainclient.ChainInterface
	claims   claimclient.ClaimsInterface
	accounts AccountStream
	notifier consumer.Notifier

	wg   sync.WaitGroup
	quit chan struct{}

	// accounts with an active referral subscription, keyed by account key
	watchedMu sync.Mutex
	watched   map[string]struct{}

	referrerLocks keyedMutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	chain chainclient.ChainInterface,
	claims claimclient.ClaimsInterface,
	accounts AccountStream,
	notifier consumer.Notifier,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       db,
		chain:    chain,
		claims:   claims,
		accounts: accounts,
		notifier: notifier,
		quit:     make(chan struct{}),
		watched:  make(map[string]struct{}),
	}
}

// StartRewardsSync brings every tracked account under watch and then keeps
// consuming newly-tracked accounts in the main thread until ctx is
// cancelled.
func (s *Service) StartRewardsSync(ctx context.Context) {
	// Start the bootstrap process for accounts tracked before startup
	s.BootstrapAccounts(ctx)
	// Keep processing newly tracked accounts in the main thread
	s.SubscribeToNewAccounts(ctx)

	close(s.quit)
	s.wg.Wait()
	log.Ctx(ctx).Info().Msg("Rewards sync stopped")
}

// quitContext returns a context cancelled when either the parent is done or
// the service shuts down.
func (s *Service) quitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	quitCtx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-quitCtx.Done():
		}
	}()
	return quitCtx, cancel
}

// keyedMutex serializes work per string key. Referral credits for the same
// referrer take the same lock; different referrers proceed in parallel.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	keyLock, ok := k.locks[key]
	if !ok {
		keyLock = &sync.Mutex{}
		k.locks[key] = keyLock
	}
	k.mu.Unlock()

	keyLock.Lock()
	return keyLock.Unlock
}
