package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// EligibilityClaim is the verified merkle leaf for an address that is
// eligible for a token claim. The proof, folded against the leaf fields,
// reduces to the published merkle root.
type EligibilityClaim struct {
	Index   uint64
	Amount  *big.Int
	Account common.Address
	Proof   []common.Hash
}
