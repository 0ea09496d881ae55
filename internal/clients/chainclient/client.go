package chainclient

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/keepthisthing/rewards-indexer/internal/config"
)

// Client wraps an EVM node connection. Historical queries get a per-call
// timeout and are retried with backoff; live subscriptions run for the
// process lifetime and are managed by the caller.
type Client struct {
	eth *ethclient.Client
	cfg *config.EthConfig
}

func NewClient(cfg *config.EthConfig) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial eth node at %s: %w", cfg.RPCAddr, err)
	}
	return &Client{
		eth: eth,
		cfg: cfg,
	}, nil
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error) {
	call := func() ([]gethtypes.Log, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
		return c.eth.FilterLogs(callCtx, q)
	}

	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Err(err).
				Msg("historical log query failed, retrying")
		}))
}

func (c *Client) SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- gethtypes.Log) (ethereum.Subscription, error) {
	return c.eth.SubscribeFilterLogs(ctx, q, ch)
}

func (c *Client) Close() {
	c.eth.Close()
}
