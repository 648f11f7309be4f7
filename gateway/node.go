package gateway

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sirupsen/logrus"

	"github.com/dethertech/dether-go/common"
)

const (
	callTimeout  = 4 * time.Second
	pollInterval = 5 * time.Second
)

// Node is a Gateway over a single JSON-RPC endpoint. The connection is
// dialed lazily on first use and kept for the node's lifetime.
type Node struct {
	nodeName  string
	nodeURL   string
	client    *rpc.Client
	ethClient *ethclient.Client
	mu        sync.Mutex
}

func NewNode(name, url string) *Node {
	return &Node{
		nodeName: name,
		nodeURL:  url,
	}
}

func (n *Node) NodeName() string {
	return n.nodeName
}

func (n *Node) NodeURL() string {
	return n.nodeURL
}

func (n *Node) initConnection() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.client != nil {
		return nil
	}
	client, err := rpc.Dial(n.nodeURL)
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", n.nodeName, err)
	}
	n.client = client
	n.ethClient = ethclient.NewClient(client)
	return nil
}

func (n *Node) EthClient() (*ethclient.Client, error) {
	if n.ethClient != nil {
		return n.ethClient, nil
	}
	err := n.initConnection()
	return n.ethClient, err
}

func (n *Node) SubmitTransaction(ctx context.Context, tx *types.Transaction) (ethcommon.Hash, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return ethcommon.Hash{}, &common.RemoteCallError{Op: "submit tx", Err: err}
	}
	timeout, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	if err := ethcli.SendTransaction(timeout, tx); err != nil {
		return ethcommon.Hash{}, &common.RemoteCallError{Op: "submit tx", Err: err}
	}
	logrus.WithFields(logrus.Fields{
		"node":  n.nodeName,
		"hash":  tx.Hash().Hex(),
		"nonce": tx.Nonce(),
	}).Debug("submitted transaction")
	return tx.Hash(), nil
}

func (n *Node) CallContract(ctx context.Context, to ethcommon.Address, data []byte) ([]byte, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return nil, &common.RemoteCallError{Op: "contract call", Err: err}
	}
	timeout, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	out, err := ethcli.CallContract(timeout, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, &common.RemoteCallError{Op: "contract call", Err: err}
	}
	return out, nil
}

// WaitForConfirmation polls for the receipt until the transaction is
// mined or ctx expires. A mined-but-reverted transaction comes back as
// a RemoteCallError of kind TxReverted together with its receipt.
func (n *Node) WaitForConfirmation(ctx context.Context, hash ethcommon.Hash) (*types.Receipt, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return nil, &common.RemoteCallError{Op: "wait for confirmation", Err: err}
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		timeout, cancel := context.WithTimeout(ctx, callTimeout)
		receipt, err := ethcli.TransactionReceipt(timeout, hash)
		cancel()
		if err == nil && receipt != nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, &common.RemoteCallError{
					Op:   "wait for confirmation",
					Kind: common.KindTxReverted,
					Err:  fmt.Errorf("tx %s reverted", hash.Hex()),
				}
			}
			logrus.WithFields(logrus.Fields{
				"node": n.nodeName,
				"hash": hash.Hex(),
			}).Debug("transaction mined")
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, &common.RemoteCallError{Op: "wait for confirmation", Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

func (n *Node) GetNonce(ctx context.Context, address ethcommon.Address) (uint64, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return 0, &common.RemoteCallError{Op: "get nonce", Err: err}
	}
	timeout, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	nonce, err := ethcli.PendingNonceAt(timeout, address)
	if err != nil {
		return 0, &common.RemoteCallError{Op: "get nonce", Err: err}
	}
	return nonce, nil
}

func (n *Node) GetBalance(ctx context.Context, address ethcommon.Address) (*big.Int, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return nil, &common.RemoteCallError{Op: "get balance", Err: err}
	}
	timeout, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	balance, err := ethcli.BalanceAt(timeout, address, nil)
	if err != nil {
		return nil, &common.RemoteCallError{Op: "get balance", Err: err}
	}
	return balance, nil
}

func (n *Node) ChainID(ctx context.Context) (*big.Int, error) {
	ethcli, err := n.EthClient()
	if err != nil {
		return nil, &common.RemoteCallError{Op: "chain id", Err: err}
	}
	timeout, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	id, err := ethcli.ChainID(timeout)
	if err != nil {
		return nil, &common.RemoteCallError{Op: "chain id", Err: err}
	}
	return id, nil
}
