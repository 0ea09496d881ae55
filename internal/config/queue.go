package config

import "errors"

type QueueConfig struct {
	URL string `mapstructure:"url"`
	// AccountsQueue is the queue the account tracker publishes
	// newly-tracked accounts on.
	AccountsQueue string `mapstructure:"accounts-queue"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("queue url is required")
	}
	if cfg.AccountsQueue == "" {
		return errors.New("accounts queue name is required")
	}
	return nil
}
