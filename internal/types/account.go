package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// WatchedAccount is an account the platform tracks on a specific network.
// One referral subscription exists per watched account on the supported
// network.
type WatchedAccount struct {
	Address common.Address
	Network Network
}

// Key returns the canonical identity of the account used to guarantee at
// most one active subscription per account.
func (a WatchedAccount) Key() string {
	return fmt.Sprintf("%s|%s", strings.ToLower(a.Address.Hex()), a.Network)
}
