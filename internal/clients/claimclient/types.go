package claimclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TrustedDataFile is a claim shard whose content hash matched the pinned
// commitment. Only verified bytes are ever wrapped in this type.
type TrustedDataFile struct {
	Shard       string
	Bytes       []byte
	ContentHash common.Hash
}

// ClaimShard is the decoded payload of a trusted claim shard: one record per
// eligible address, keyed by lowercased hex address.
type ClaimShard struct {
	Claims map[string]ClaimRecord `json:"claims"`
}

// ClaimRecord is the raw leaf record as published off-chain.
type ClaimRecord struct {
	Index  uint64   `json:"index"`
	Amount string   `json:"amount"`
	Proof  []string `json:"proof"`
}

// Decode parses the shard JSON. Only call on a TrustedDataFile, never on raw
// fetched bytes.
func (f *TrustedDataFile) Decode() (*ClaimShard, error) {
	var shard ClaimShard
	if err := json.Unmarshal(f.Bytes, &shard); err != nil {
		return nil, fmt.Errorf("failed to decode claim shard %s: %w", f.Shard, err)
	}
	return &shard, nil
}

// Lookup returns the claim record for an address, if present.
func (s *ClaimShard) Lookup(address common.Address) (ClaimRecord, bool) {
	record, ok := s.Claims[strings.ToLower(address.Hex())]
	return record, ok
}

// ShardFor maps an address to its claim shard file. The distribution scheme
// shards the claim tree on the first nibble of the address.
func ShardFor(address common.Address) string {
	hex := strings.ToLower(address.Hex())
	return fmt.Sprintf("claims-%c.json", hex[2])
}
