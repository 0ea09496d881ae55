// Package merkle recomputes merkle roots from inclusion proofs for the token
// claim distribution tree. The construction mirrors the off-chain tree
// exactly: leaves are keccak256 over the solidity-packed (index, account,
// amount) triple and interior nodes hash their children in ascending byte
// order, so verification is independent of left/right placement.
package merkle

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LeafHash computes the claim leaf hash for an address: keccak256 of the
// packed uint256 index, the raw 20-byte account and the uint256 amount.
func LeafHash(index uint64, account common.Address, amount *big.Int) common.Hash {
	packed := make([]byte, 0, 84)
	packed = append(packed, common.LeftPadBytes(new(big.Int).SetUint64(index).Bytes(), 32)...)
	packed = append(packed, account.Bytes()...)
	packed = append(packed, common.LeftPadBytes(amount.Bytes(), 32)...)
	return crypto.Keccak256Hash(packed)
}

// FoldProof reduces a leaf hash and its ordered sibling hashes to a root.
func FoldProof(leaf common.Hash, proof []common.Hash) common.Hash {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return computed
}

// VerifyProof reports whether the proof folds the leaf to the expected root.
func VerifyProof(leaf common.Hash, proof []common.Hash, root common.Hash) bool {
	return FoldProof(leaf, proof) == root
}

// hashPair combines two nodes in canonical order: the numerically smaller
// hash always goes first.
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a.Bytes(), b.Bytes())
}
