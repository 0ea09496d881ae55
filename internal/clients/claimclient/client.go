package claimclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/keepthisthing/rewards-indexer/internal/config"
	"github.com/keepthisthing/rewards-indexer/internal/observability/metrics"
	"github.com/keepthisthing/rewards-indexer/internal/types"
)

// Client fetches claim shards from the distribution point and validates them
// against their pinned content hashes before exposing them. Verified shards
// are cached; concurrent fetches of the same shard are collapsed into one
// request.
type Client struct {
	httpClient *http.Client
	cfg        *config.ClaimsConfig

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]*TrustedDataFile
}

func NewClient(cfg *config.ClaimsConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		cache:      make(map[string]*TrustedDataFile),
	}
}

// FetchTrusted returns the verified claim shard for an address. Transport
// failures surface as *types.FetchError, content hash mismatches as
// *types.IntegrityError; in neither case are bytes handed onward.
func (c *Client) FetchTrusted(ctx context.Context, address common.Address) (*TrustedDataFile, error) {
	shard := ShardFor(address)

	c.mu.RLock()
	cached, ok := c.cache[shard]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(shard, func() (any, error) {
		file, err := c.fetchShard(ctx, shard)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[shard] = file
		c.mu.Unlock()
		return file, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*TrustedDataFile), nil
}

func (c *Client) fetchShard(ctx context.Context, shard string) (file *TrustedDataFile, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordClaimFetchDuration(time.Since(start), err != nil)
	}()

	expectedHex, ok := c.cfg.ShardHashes[shard]
	if !ok {
		return nil, fmt.Errorf("no pinned content hash for shard %s", shard)
	}
	expected := common.HexToHash(expectedHex)
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + shard

	fetchOnce := func() ([]byte, error) {
		reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	body, err := retry.DoWithData(fetchOnce,
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Str("shard", shard).
				Err(err).
				Msg("claim shard fetch failed, retrying")
		}))
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err}
	}

	// the file is validated as a whole; a mismatch is never retried against
	// the same source
	actual := crypto.Keccak256Hash(body)
	if actual != expected {
		return nil, &types.IntegrityError{Shard: shard, Expected: expected, Actual: actual}
	}

	return &TrustedDataFile{
		Shard:       shard,
		Bytes:       body,
		ContentHash: actual,
	}, nil
}
