// Package gateway is the I/O boundary to the remote ledger. Everything
// above it (listing, swap) talks to the Gateway interface only, so tests
// drive the full transaction sequencing logic against an in-memory fake.
package gateway

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Gateway is the minimal remote-ledger surface the library consumes.
//
// SubmitTransaction broadcasts an already-signed transaction and returns
// immediately with its hash; WaitForConfirmation blocks until the ledger
// mined it (a reverted receipt is an error of kind TxReverted). Once
// submitted a transaction cannot be withdrawn, only superseded.
type Gateway interface {
	SubmitTransaction(ctx context.Context, tx *types.Transaction) (ethcommon.Hash, error)
	CallContract(ctx context.Context, to ethcommon.Address, data []byte) ([]byte, error)
	WaitForConfirmation(ctx context.Context, hash ethcommon.Hash) (*types.Receipt, error)
	GetNonce(ctx context.Context, address ethcommon.Address) (uint64, error)
	GetBalance(ctx context.Context, address ethcommon.Address) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}
