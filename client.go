// Package dether is a client library for the Dether peer-to-peer
// marketplace on Ethereum: geolocated teller and shop listings, escrow
// backed cash-for-crypto trades, and token swaps routed through an
// exchange venue.
package dether

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sort"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/dethertech/dether-go/account"
	"github.com/dethertech/dether-go/addrbook"
	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/config"
	"github.com/dethertech/dether-go/gateway"
	"github.com/dethertech/dether-go/geo"
	"github.com/dethertech/dether-go/listing"
	"github.com/dethertech/dether-go/networks"
	"github.com/dethertech/dether-go/swap"
)

// Client bundles the listing service and the swap orchestrator for one
// network behind a single constructor. It is safe for concurrent use.
type Client struct {
	net      networks.Network
	gw       gateway.Gateway
	book     addrbook.Book
	listings *listing.Service
	swaps    *swap.Orchestrator
	token    ethcommon.Address
}

// NewClient builds a client from cfg. The node connection is dialed
// lazily; NewClient itself never touches the network.
func NewClient(cfg config.Config) (*Client, error) {
	net, err := networks.GetNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}

	nodeName, nodeURL := cfg.NodeName, cfg.NodeURL
	if nodeURL == "" {
		defaults := net.GetDefaultNodes()
		names := make([]string, 0, len(defaults))
		for name := range defaults {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) > 0 {
			nodeName = names[0]
			nodeURL = defaults[nodeName]
		}
	}
	if nodeURL == "" {
		return nil, common.Invalidf("nodeURL", "no node configured and %s has no default nodes", net.GetName())
	}
	gw := gateway.NewNode(nodeName, nodeURL)

	book := addrbook.Book(addrbook.Default())
	overrides := map[addrbook.Role]ethcommon.Address{}
	if cfg.CoreAddress != nil {
		overrides[addrbook.DetherCore] = *cfg.CoreAddress
	}
	if cfg.TokenAddress != nil {
		overrides[addrbook.DTH] = *cfg.TokenAddress
	}
	if len(overrides) > 0 {
		book = addrbook.Default().Override(net.GetName(), overrides)
	}

	core, err := book.Resolve(net.GetName(), addrbook.DetherCore)
	if err != nil {
		return nil, err
	}
	token, err := book.Resolve(net.GetName(), addrbook.DTH)
	if err != nil {
		return nil, err
	}

	gasPrice := cfg.GasPrice()
	return &Client{
		net:      net,
		gw:       gw,
		book:     book,
		listings: listing.NewService(gw, net, core, token, gasPrice),
		swaps:    swap.NewOrchestrator(gw, net, book, core, cfg.VenueParams, gasPrice),
		token:    token,
	}, nil
}

// Network returns the network the client is bound to.
func (c *Client) Network() networks.Network { return c.net }

// Listings exposes the listing service for callers that need the full
// surface, including per-call transaction options.
func (c *Client) Listings() *listing.Service { return c.listings }

// Swaps exposes the swap orchestrator.
func (c *Client) Swaps() *swap.Orchestrator { return c.swaps }

// PublishListing registers acct as a teller and stakes the escrow
// amount in one two-transaction sequence.
func (c *Client) PublishListing(ctx context.Context, rec geo.TellerRecord, stake decimal.Decimal, acct *account.Account) (*listing.PublishResult, error) {
	return c.listings.PublishTeller(ctx, rec, stake, acct, listing.TxOpts{})
}

// PublishShop registers acct as a shop.
func (c *Client) PublishShop(ctx context.Context, rec geo.ShopRecord, acct *account.Account) (ethcommon.Hash, error) {
	return c.listings.PublishShop(ctx, rec, acct, listing.TxOpts{})
}

// UpdateListing pushes a teller profile update, topping up the escrow
// by stakeDelta if it is positive.
func (c *Client) UpdateListing(ctx context.Context, currencyID, avatarID int, messenger string, sellRate, stakeDelta decimal.Decimal, acct *account.Account) (ethcommon.Hash, error) {
	return c.listings.UpdateTeller(ctx, currencyID, avatarID, messenger, sellRate, stakeDelta, acct, listing.TxOpts{})
}

// WithdrawListing deletes acct's listing and pays its escrow back.
func (c *Client) WithdrawListing(ctx context.Context, acct *account.Account) (ethcommon.Hash, error) {
	return c.listings.Withdraw(ctx, acct, listing.TxOpts{})
}

// GetListing reads one teller listing; nil when none exists.
func (c *Client) GetListing(ctx context.Context, addr ethcommon.Address) (*listing.Teller, error) {
	return c.listings.GetTeller(ctx, addr)
}

// GetListingsInZone reads every teller listed under a country and
// postal code.
func (c *Client) GetListingsInZone(ctx context.Context, countryID, postalCode string) ([]*listing.Teller, error) {
	addrs, err := c.listings.GetZoneTellers(ctx, countryID, postalCode)
	if err != nil {
		return nil, err
	}
	return c.listings.GetAllTellers(ctx, addrs...)
}

// GetAllListings reads every teller on the network.
func (c *Client) GetAllListings(ctx context.Context) ([]*listing.Teller, error) {
	return c.listings.GetAllTellers(ctx)
}

// ListingStatus reports how far addr's publish sequence got.
func (c *Client) ListingStatus(ctx context.Context, addr ethcommon.Address) (listing.Status, error) {
	return c.listings.TellerStatus(ctx, addr)
}

// EstimateSwap quotes srcAmount of pair.Base against pair.Quote without
// broadcasting anything.
func (c *Client) EstimateSwap(ctx context.Context, pair swap.Pair, srcAmount decimal.Decimal) (*swap.Quote, error) {
	return c.swaps.Estimate(ctx, pair, srcAmount)
}

// Swap runs a full swap session and blocks until it is refunded.
func (c *Client) Swap(ctx context.Context, req swap.Request) (*swap.Session, error) {
	return c.swaps.Execute(ctx, req)
}

// BeginSwap broadcasts the seller half of a swap session and returns
// without waiting; CompleteSwap finishes it.
func (c *Client) BeginSwap(ctx context.Context, req swap.Request) (*swap.Session, error) {
	return c.swaps.Begin(ctx, req)
}

// CompleteSwap resumes a session produced by BeginSwap.
func (c *Client) CompleteSwap(ctx context.Context, session *swap.Session) error {
	return c.swaps.Complete(ctx, session)
}

// RefundResidual sweeps a stranded swap session wallet back to
// recipient, using the key recovered from an InconsistentStateError.
func (c *Client) RefundResidual(ctx context.Context, tempKey *ecdsa.PrivateKey, recipient ethcommon.Address) (ethcommon.Hash, error) {
	return c.swaps.RefundResidual(ctx, tempKey, recipient, nil)
}

// Balance reads addr's native ether balance.
func (c *Client) Balance(ctx context.Context, addr ethcommon.Address) (decimal.Decimal, error) {
	wei, err := c.gw.GetBalance(ctx, addr)
	if err != nil {
		return decimal.Zero, err
	}
	return common.WeiToEth(wei), nil
}

// TokenBalance reads addr's balance of the marketplace token.
func (c *Client) TokenBalance(ctx context.Context, addr ethcommon.Address) (decimal.Decimal, error) {
	return c.erc20Balance(ctx, c.token, addr)
}

// Balances reads addr's balance for each given token role, plus its
// native ether balance under the ETH key. Roles with no deployment on
// the client's network are skipped rather than failing the whole read.
func (c *Client) Balances(ctx context.Context, addr ethcommon.Address, roles ...addrbook.Role) (map[addrbook.Role]decimal.Decimal, error) {
	result := map[addrbook.Role]decimal.Decimal{}
	eth, err := c.Balance(ctx, addr)
	if err != nil {
		return nil, err
	}
	result[addrbook.ETH] = eth
	for _, role := range roles {
		if role == addrbook.ETH {
			continue
		}
		token, err := c.book.Resolve(c.net.GetName(), role)
		if err != nil {
			var unknown *addrbook.UnknownAddressError
			if errors.As(err, &unknown) {
				continue
			}
			return nil, err
		}
		balance, err := c.erc20Balance(ctx, token, addr)
		if err != nil {
			return nil, err
		}
		result[role] = balance
	}
	return result, nil
}

func (c *Client) erc20Balance(ctx context.Context, token, addr ethcommon.Address) (decimal.Decimal, error) {
	data, err := common.GetERC223ABI().Pack("balanceOf", addr)
	if err != nil {
		return decimal.Zero, err
	}
	raw, err := c.gw.CallContract(ctx, token, data)
	if err != nil {
		return decimal.Zero, err
	}
	var out *big.Int
	if err := common.GetERC223ABI().UnpackIntoInterface(&out, "balanceOf", raw); err != nil {
		return decimal.Zero, &common.RemoteCallError{Op: "balanceOf", Err: err}
	}
	return common.WeiToEth(out), nil
}
