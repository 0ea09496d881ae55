package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// HuntingGround is one reward-eligible contract the tracker watches for
// referral events. The catalog is injected configuration, not code.
type HuntingGround struct {
	Address     string `mapstructure:"address"`
	Asset       string `mapstructure:"asset"`
	DeployBlock uint64 `mapstructure:"deploy-block"`
}

func (hg *HuntingGround) Contract() common.Address {
	return common.HexToAddress(hg.Address)
}

type ClaimsConfig struct {
	// BaseURL is the content distribution point the claim shards are
	// fetched from.
	BaseURL string `mapstructure:"base-url"`
	// MerkleRoot is the published commitment every proof must fold to.
	MerkleRoot string `mapstructure:"merkle-root"`
	// ShardHashes pins the expected keccak256 content hash per shard file.
	ShardHashes    map[string]string `mapstructure:"shard-hashes"`
	HuntingGrounds []HuntingGround   `mapstructure:"hunting-grounds"`
	Timeout        time.Duration     `mapstructure:"timeout"`
	MaxRetryTimes  uint              `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration     `mapstructure:"retry-interval"`
}

func (cfg *ClaimsConfig) Validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("claims base-url is required")
	}
	if cfg.MerkleRoot == "" {
		return fmt.Errorf("claims merkle-root is required")
	}
	if len(cfg.ShardHashes) == 0 {
		return fmt.Errorf("claims shard-hashes are required")
	}
	if len(cfg.HuntingGrounds) == 0 {
		return fmt.Errorf("at least one hunting ground is required")
	}
	for i, hg := range cfg.HuntingGrounds {
		if !common.IsHexAddress(hg.Address) {
			return fmt.Errorf("hunting ground %d has invalid contract address %q", i, hg.Address)
		}
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("claims timeout must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("claims retry-interval must be positive")
	}
	return nil
}

func (cfg *ClaimsConfig) Root() common.Hash {
	return common.HexToHash(cfg.MerkleRoot)
}

// Contracts returns the hunting ground contract addresses.
func (cfg *ClaimsConfig) Contracts() []common.Address {
	contracts := make([]common.Address, len(cfg.HuntingGrounds))
	for i, hg := range cfg.HuntingGrounds {
		contracts[i] = hg.Contract()
	}
	return contracts
}

// EarliestDeployBlock returns the lowest deployment block across the hunting
// grounds, the starting point for historical replay.
func (cfg *ClaimsConfig) EarliestDeployBlock() uint64 {
	var earliest uint64
	for i, hg := range cfg.HuntingGrounds {
		if i == 0 || hg.DeployBlock < earliest {
			earliest = hg.DeployBlock
		}
	}
	return earliest
}
