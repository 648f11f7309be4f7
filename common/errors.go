package common

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidationError is returned for malformed caller input. It is always
// raised before any network call and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalidf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RemoteCallKind distinguishes why the ledger rejected a read or write
// without the caller having to parse error strings.
type RemoteCallKind int

const (
	KindRPCFailure RemoteCallKind = iota
	KindTxReverted
	KindVenueDisabled
	KindGasPriceTooHigh
	KindNoLiquidity
)

func (k RemoteCallKind) String() string {
	switch k {
	case KindTxReverted:
		return "tx reverted"
	case KindVenueDisabled:
		return "venue disabled"
	case KindGasPriceTooHigh:
		return "gas price too high"
	case KindNoLiquidity:
		return "no liquidity"
	default:
		return "rpc failure"
	}
}

// RemoteCallError is a rejected read or write at the ledger boundary.
// The library never retries it; the caller decides.
type RemoteCallError struct {
	Op   string
	Kind RemoteCallKind
	Err  error
}

func (e *RemoteCallError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// InconsistentStateError reports a multi-step protocol that partially
// completed. It always carries the hashes of the transactions that did go
// out and, for swap sessions, the temporary wallet's private key so the
// caller can recover stranded funds manually. The key is a bearer
// credential; it must never be dropped on the floor by error handling.
type InconsistentStateError struct {
	Op            string
	TxHashes      []common.Hash
	TempWalletKey *ecdsa.PrivateKey
	Err           error
}

func (e *InconsistentStateError) Error() string {
	hashes := make([]string, len(e.TxHashes))
	for i, h := range e.TxHashes {
		hashes[i] = h.Hex()
	}
	msg := fmt.Sprintf("%s left partial state (txs: %s)", e.Op, strings.Join(hashes, ", "))
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *InconsistentStateError) Unwrap() error { return e.Err }
