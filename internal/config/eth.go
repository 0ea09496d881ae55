package config

import (
	"fmt"
	"time"

	"github.com/keepthisthing/rewards-indexer/internal/types"
)

type EthConfig struct {
	// RPCAddr is the websocket endpoint of the EVM node. Live log
	// subscriptions require a websocket transport.
	RPCAddr       string        `mapstructure:"rpc-addr"`
	Network       string        `mapstructure:"network"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *EthConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return fmt.Errorf("eth rpc address is required")
	}
	if _, err := types.ParseNetwork(cfg.Network); err != nil {
		return fmt.Errorf("eth network is invalid: %w", err)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("eth timeout must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("eth retry-interval must be positive")
	}
	return nil
}

func (cfg *EthConfig) SupportedNetwork() types.Network {
	network, _ := types.ParseNetwork(cfg.Network)
	return network
}
