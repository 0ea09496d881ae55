package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keepthisthing/rewards-indexer/internal/types"
	"github.com/keepthisthing/rewards-indexer/testutil"
)

func TestDecodeAccount(t *testing.T) {
	address := testutil.RandomAddress()

	t.Run("valid message", func(t *testing.T) {
		body, err := json.Marshal(accountMessage{
			Address: address.Hex(),
			Network: "ethereum",
		})
		require.NoError(t, err)

		account, err := decodeAccount(body)
		require.NoError(t, err)
		require.Equal(t, address, account.Address)
		require.Equal(t, types.NetworkEthereum, account.Network)
	})

	t.Run("rejects bad payloads", func(t *testing.T) {
		for name, body := range map[string]string{
			"not json":        "accounts are not csv rows",
			"invalid address": `{"address":"0x1234","network":"ethereum"}`,
			"unknown network": `{"address":"` + address.Hex() + `","network":"solana"}`,
			"empty message":   `{}`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := decodeAccount([]byte(body))
				require.Error(t, err)
			})
		}
	})
}
