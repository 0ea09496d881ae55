package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FetchError is a transient, network-origin failure while retrieving claim
// data. Retryable by the caller.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch claim data from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IntegrityError means fetched claim data failed its content hash check. The
// data must never be trusted and the error is always surfaced.
type IntegrityError struct {
	Shard    string
	Expected common.Hash
	Actual   common.Hash
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("claim shard %s failed integrity check: expected %s, got %s",
		e.Shard, e.Expected.Hex(), e.Actual.Hex())
}

func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// NotEligibleError is a legitimate negative result: the trusted claim data is
// valid but holds no entry for the address.
type NotEligibleError struct {
	Address common.Address
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("address %s is not eligible for a claim", e.Address.Hex())
}

func IsNotEligibleError(err error) bool {
	var ne *NotEligibleError
	return errors.As(err, &ne)
}

// ProofInvalidError means the claim record exists but its proof does not fold
// to the published merkle root. This signals a system defect, not an
// eligibility denial.
type ProofInvalidError struct {
	Address  common.Address
	Computed common.Hash
	Root     common.Hash
}

func (e *ProofInvalidError) Error() string {
	return fmt.Sprintf("merkle proof for %s is invalid: computed root %s, published root %s",
		e.Address.Hex(), e.Computed.Hex(), e.Root.Hex())
}

func IsProofInvalidError(err error) bool {
	var pe *ProofInvalidError
	return errors.As(err, &pe)
}

// MalformedEventError means a received on-chain log does not carry the
// expected shape. Absorbed at the tracker boundary: logged and dropped.
type MalformedEventError struct {
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed referral event: %s", e.Reason)
}

func IsMalformedEventError(err error) bool {
	var me *MalformedEventError
	return errors.As(err, &me)
}
