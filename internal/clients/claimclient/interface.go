package claimclient

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockery --name=ClaimsInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_claims_client.go
type ClaimsInterface interface {
	FetchTrusted(ctx context.Context, address common.Address) (*TrustedDataFile, error)
}
