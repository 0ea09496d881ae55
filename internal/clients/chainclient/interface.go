package chainclient

import (
	"context"

	"github.com/ethereum/go-ethereum"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockery --name=ChainInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_chain_client.go
type ChainInterface interface {
	// FilterLogs queries the full historical log for a filter.
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error)
	// SubscribeLogs establishes a live subscription delivering each new
	// matching log to ch.
	SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- gethtypes.Log) (ethereum.Subscription, error)
}
