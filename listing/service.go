// Package listing publishes, updates, withdraws and reads geolocated
// marketplace listings.
//
// Publishing is a two-transaction sequence from the same wallet: an
// ERC223 token transfer carrying the encoded record as call data
// (registration + licence fee), then an addFunds call (escrow stake).
// Both are broadcast back to back on consecutive nonces without waiting
// for the first to confirm; the ledger orders them by nonce. If the
// second is rejected after the first went out, the listing exists but is
// unfunded — the service surfaces that as InconsistentStateError and the
// Status read path makes the state observable, it never papers over it.
package listing

import (
	"context"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dethertech/dether-go/account"
	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/gateway"
	"github.com/dethertech/dether-go/geo"
	"github.com/dethertech/dether-go/networks"
)

// Gas limits of the contract calls, measured against the deployed
// bytecode; generous headroom on the registration leg because the ERC223
// receiver runs the whole listing insertion.
const (
	registerGasLimit uint64 = 500000
	addFundsGasLimit uint64 = 110000
	updateGasLimit   uint64 = 110000
	sellEthGasLimit  uint64 = 300000
	deleteGasLimit   uint64 = 200000
	offlineGasLimit  uint64 = 50000
)

// TxOpts tunes a single write operation. Zero values mean defaults:
// the service's gas price, the per-operation gas limit above, and the
// wallet's current pending nonce.
type TxOpts struct {
	GasPriceWei *big.Int
	GasLimit    uint64
	Nonce       *uint64
}

// Teller is a decoded listing together with its on-chain reputation.
type Teller struct {
	Address    ethcommon.Address
	Record     geo.TellerRecord
	Reputation geo.ReputationSummary
}

// Shop is a decoded storefront listing.
type Shop struct {
	Address ethcommon.Address
	Record  geo.ShopRecord
}

// PublishResult carries both legs of a publish sequence.
type PublishResult struct {
	RegistrationHash ethcommon.Hash
	StakeHash        ethcommon.Hash
}

// Service drives the marketplace core contract.
type Service struct {
	gw       gateway.Gateway
	net      networks.Network
	core     ethcommon.Address
	token    ethcommon.Address
	gasPrice *big.Int
}

func NewService(gw gateway.Gateway, net networks.Network, core, token ethcommon.Address, defaultGasPriceWei *big.Int) *Service {
	return &Service{
		gw:       gw,
		net:      net,
		core:     core,
		token:    token,
		gasPrice: defaultGasPriceWei,
	}
}

func (s *Service) chainID() *big.Int {
	return big.NewInt(s.net.GetChainID())
}

func (s *Service) gasPriceFor(opts TxOpts) *big.Int {
	if opts.GasPriceWei != nil {
		return opts.GasPriceWei
	}
	return s.gasPrice
}

func (s *Service) gasLimitFor(opts TxOpts, def uint64) uint64 {
	if opts.GasLimit != 0 {
		return opts.GasLimit
	}
	return def
}

func (s *Service) nonceFor(ctx context.Context, opts TxOpts, addr ethcommon.Address) (uint64, error) {
	if opts.Nonce != nil {
		return *opts.Nonce, nil
	}
	return s.gw.GetNonce(ctx, addr)
}

// submit signs tx with acct and broadcasts it.
func (s *Service) submit(ctx context.Context, tx *types.Transaction, acct *account.Account) (ethcommon.Hash, error) {
	signed, err := acct.SignTx(tx, s.chainID())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	return s.gw.SubmitTransaction(ctx, signed)
}

func (s *Service) call(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	coreABI := common.GetDetherCoreABI()
	data, err := coreABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("couldn't pack %s: %w", method, err)
	}
	raw, err := s.gw.CallContract(ctx, s.core, data)
	if err != nil {
		return err
	}
	if err := coreABI.UnpackIntoInterface(out, method, raw); err != nil {
		return &common.RemoteCallError{Op: method, Err: err}
	}
	return nil
}

func validateTeller(rec geo.TellerRecord) error {
	lat, _ := rec.Lat.Float64()
	if lat < -90 || lat > 90 {
		return common.Invalidf("lat", "must be within ±90 degrees")
	}
	lng, _ := rec.Lng.Float64()
	if lng < -180 || lng > 180 {
		return common.Invalidf("lng", "must be within ±180 degrees")
	}
	if rec.CountryID == "" {
		return common.Invalidf("countryId", "must not be empty")
	}
	return nil
}

// PublishTeller registers a teller listing and stakes the escrow amount,
// as two transactions on nonces n and n+1 broadcast without waiting in
// between. The licence fee is read from the contract at call time and
// paid in marketplace tokens; the stake travels as native value on the
// addFunds leg.
func (s *Service) PublishTeller(ctx context.Context, rec geo.TellerRecord, stake decimal.Decimal, acct *account.Account, opts TxOpts) (*PublishResult, error) {
	if err := validateTeller(rec); err != nil {
		return nil, err
	}
	if stake.Sign() <= 0 {
		return nil, common.Invalidf("stake", "must be a positive amount")
	}
	encoded, err := geo.EncodeTeller(rec)
	if err != nil {
		return nil, err
	}

	licence, err := s.LicenceTeller(ctx, rec.CountryID)
	if err != nil {
		return nil, err
	}

	data, err := common.GetERC223ABI().Pack("transfer", s.core, common.EthToWei(licence), encoded)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack registration transfer: %w", err)
	}

	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return nil, err
	}
	gasPrice := s.gasPriceFor(opts)

	registration := types.NewTransaction(
		nonce, s.token, big.NewInt(0),
		s.gasLimitFor(opts, registerGasLimit), gasPrice, data,
	)
	regHash, err := s.submit(ctx, registration, acct)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"hash":    regHash.Hex(),
		"country": rec.CountryID,
		"licence": licence.String(),
	}).Info("teller registration submitted")

	fundsData, err := common.PackDetherCoreData("addFunds")
	if err != nil {
		return nil, fmt.Errorf("couldn't pack addFunds: %w", err)
	}
	stakeTx := types.NewTransaction(
		nonce+1, s.core, common.EthToWei(stake),
		addFundsGasLimit, gasPrice, fundsData,
	)
	stakeHash, err := s.submit(ctx, stakeTx, acct)
	if err != nil {
		// The registration is already out; the listing will exist
		// unfunded. Hand the caller everything needed to see and
		// repair that state.
		return nil, &common.InconsistentStateError{
			Op:       "publish teller",
			TxHashes: []ethcommon.Hash{regHash},
			Err:      err,
		}
	}
	logrus.WithField("hash", stakeHash.Hex()).Info("teller stake submitted")
	return &PublishResult{RegistrationHash: regHash, StakeHash: stakeHash}, nil
}

// PublishShop registers a shop listing. Shops carry no separate stake
// leg: the licence transfer is the whole sequence.
func (s *Service) PublishShop(ctx context.Context, rec geo.ShopRecord, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	lat, _ := rec.Lat.Float64()
	if lat < -90 || lat > 90 {
		return ethcommon.Hash{}, common.Invalidf("lat", "must be within ±90 degrees")
	}
	lng, _ := rec.Lng.Float64()
	if lng < -180 || lng > 180 {
		return ethcommon.Hash{}, common.Invalidf("lng", "must be within ±180 degrees")
	}
	if rec.CountryID == "" {
		return ethcommon.Hash{}, common.Invalidf("countryId", "must not be empty")
	}
	encoded, err := geo.EncodeShop(rec)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	licence, err := s.LicenceShop(ctx, rec.CountryID)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	data, err := common.GetERC223ABI().Pack("transfer", s.core, common.EthToWei(licence), encoded)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack registration transfer: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.token, big.NewInt(0),
		s.gasLimitFor(opts, registerGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}

// UpdateTeller pushes a partial profile update, optionally topping the
// escrow up with stakeDelta as native value on the same call.
func (s *Service) UpdateTeller(ctx context.Context, currencyID, avatarID int, messenger string, sellRate decimal.Decimal, stakeDelta decimal.Decimal, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	if stakeDelta.Sign() < 0 {
		return ethcommon.Hash{}, common.Invalidf("stakeDelta", "must not be negative")
	}
	args, err := geo.EncodeProfileUpdate(currencyID, avatarID, messenger, sellRate)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	data, err := common.PackDetherCoreData(
		"updateTeller",
		args.CurrencyID, args.Messenger, args.AvatarID, args.SellRate, args.Online,
	)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack updateTeller: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.core, common.EthToWei(stakeDelta),
		s.gasLimitFor(opts, updateGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}

// AddFunds tops up the caller's escrow balance.
func (s *Service) AddFunds(ctx context.Context, amount decimal.Decimal, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	if amount.Sign() <= 0 {
		return ethcommon.Hash{}, common.Invalidf("amount", "must be a positive amount")
	}
	data, err := common.PackDetherCoreData("addFunds")
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack addFunds: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.core, common.EthToWei(amount),
		s.gasLimitFor(opts, addFundsGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}

// SendToBuyer pays a buyer directly from the caller's escrow balance.
func (s *Service) SendToBuyer(ctx context.Context, receiver ethcommon.Address, amount decimal.Decimal, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	if amount.Sign() <= 0 {
		return ethcommon.Hash{}, common.Invalidf("amount", "must be a positive amount")
	}
	if receiver == (ethcommon.Address{}) {
		return ethcommon.Hash{}, common.Invalidf("receiver", "must not be the zero address")
	}
	data, err := common.PackDetherCoreData("sellEth", receiver, common.EthToWei(amount))
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack sellEth: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.core, big.NewInt(0),
		s.gasLimitFor(opts, sellEthGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}

// Withdraw deletes the caller's listing; the contract pays the escrow
// balance back to the owner as part of the deletion.
func (s *Service) Withdraw(ctx context.Context, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	data, err := common.PackDetherCoreData("deleteTeller")
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack deleteTeller: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.core, big.NewInt(0),
		s.gasLimitFor(opts, deleteGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}

// GoOffline withdraws the escrow balance but keeps the listing data.
func (s *Service) GoOffline(ctx context.Context, acct *account.Account, opts TxOpts) (ethcommon.Hash, error) {
	data, err := common.PackDetherCoreData("switchTellerOffline")
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("couldn't pack switchTellerOffline: %w", err)
	}
	nonce, err := s.nonceFor(ctx, opts, acct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	tx := types.NewTransaction(
		nonce, s.core, big.NewInt(0),
		s.gasLimitFor(opts, offlineGasLimit), s.gasPriceFor(opts), data,
	)
	return s.submit(ctx, tx, acct)
}
