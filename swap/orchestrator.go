package swap

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dethertech/dether-go/account"
	"github.com/dethertech/dether-go/addrbook"
	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/gateway"
	"github.com/dethertech/dether-go/networks"
)

// etherSentinel is the address venues use to mean "ether, not a token".
var etherSentinel = ethcommon.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

// maxDestAmount is a value no trade reaches, passed so the venue caps
// on the source amount instead.
var maxDestAmount = new(big.Int).Exp(big.NewInt(10), big.NewInt(28), nil)

// Request describes one swap: sell Amount of ether from the seller's
// escrow into Pair.Quote tokens delivered to the buyer.
type Request struct {
	Pair   Pair
	Amount decimal.Decimal
	Buyer  ethcommon.Address
	Seller *account.Account
	// GasPriceWei overrides the orchestrator default for the whole
	// session. Every rung of the ladder uses the same price.
	GasPriceWei *big.Int
	// MinConversionRate bounds the trade's execution price, typically
	// Quote.SlippageRate from a fresh Estimate. Required: a session is
	// never started without a caller-approved price floor.
	MinConversionRate *big.Int
}

// Orchestrator runs swap sessions against one network.
type Orchestrator struct {
	gw       gateway.Gateway
	net      networks.Network
	book     addrbook.Book
	core     ethcommon.Address
	params   map[Venue]VenueParams
	gasPrice *big.Int
}

// NewOrchestrator wires an orchestrator. Nil params fall back to
// DefaultVenueParams.
func NewOrchestrator(gw gateway.Gateway, net networks.Network, book addrbook.Book, core ethcommon.Address, params map[Venue]VenueParams, defaultGasPriceWei *big.Int) *Orchestrator {
	if params == nil {
		params = DefaultVenueParams()
	}
	return &Orchestrator{
		gw:       gw,
		net:      net,
		book:     book,
		core:     core,
		params:   params,
		gasPrice: defaultGasPriceWei,
	}
}

func (o *Orchestrator) chainID() *big.Int {
	return big.NewInt(o.net.GetChainID())
}

// callVenue packs a proxy contract read, executes it and unpacks the
// result.
func (o *Orchestrator) callVenue(ctx context.Context, proxy ethcommon.Address, method string, out interface{}, args ...interface{}) error {
	proxyABI := common.GetKyberProxyABI()
	data, err := proxyABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("couldn't pack %s: %w", method, err)
	}
	raw, err := o.gw.CallContract(ctx, proxy, data)
	if err != nil {
		return err
	}
	if err := proxyABI.UnpackIntoInterface(out, method, raw); err != nil {
		return &common.RemoteCallError{Op: method, Err: err}
	}
	return nil
}

// preflight verifies the venue will accept a trade at this gas price
// before any transaction goes out.
func (o *Orchestrator) preflight(ctx context.Context, proxy ethcommon.Address, gasPrice *big.Int) error {
	var enabled bool
	if err := o.callVenue(ctx, proxy, "enabled", &enabled); err != nil {
		return err
	}
	if !enabled {
		return &common.RemoteCallError{Op: "enabled", Kind: common.KindVenueDisabled}
	}
	var maxGasPrice *big.Int
	if err := o.callVenue(ctx, proxy, "maxGasPrice", &maxGasPrice); err != nil {
		return err
	}
	if maxGasPrice != nil && maxGasPrice.Cmp(gasPrice) < 0 {
		return &common.RemoteCallError{
			Op:   "maxGasPrice",
			Kind: common.KindGasPriceTooHigh,
			Err:  fmt.Errorf("venue cap %s wei, session %s wei", maxGasPrice, gasPrice),
		}
	}
	return nil
}

// fail marks the session failed and wraps err. After the first
// broadcast the wrap is always an InconsistentStateError carrying the
// session wallet key: whatever already went out may have stranded funds
// on an address only that key can spend from.
func (o *Orchestrator) fail(s *Session, op string, err error) error {
	_ = s.advance(PhaseFailed)
	if s.FundingHash == (ethcommon.Hash{}) {
		return err
	}
	return &common.InconsistentStateError{
		Op:            op,
		TxHashes:      s.Hashes(),
		TempWalletKey: s.TempKey,
		Err:           err,
	}
}

// Execute runs the whole swap ladder and blocks until the refund is
// mined. It is Begin followed by Complete.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (*Session, error) {
	session, err := o.Begin(ctx, req)
	if err != nil {
		return session, err
	}
	if err := o.Complete(ctx, session); err != nil {
		return session, err
	}
	return session, nil
}

// Begin validates the request, generates the session wallet and
// broadcasts the seller's two transactions: gas funding for the session
// wallet at nonce n and the escrow release to it at nonce n+1, back to
// back without waiting. It returns as soon as both are out; Complete
// picks the session up from there.
func (o *Orchestrator) Begin(ctx context.Context, req Request) (*Session, error) {
	if req.Amount.Sign() <= 0 {
		return nil, common.Invalidf("amount", "must be a positive amount")
	}
	if req.Buyer == (ethcommon.Address{}) {
		return nil, common.Invalidf("buyer", "must not be the zero address")
	}
	if req.Seller == nil {
		return nil, common.Invalidf("seller", "must be provided")
	}
	if req.MinConversionRate == nil || req.MinConversionRate.Sign() <= 0 {
		return nil, common.Invalidf("minConversionRate", "must be a positive rate from an estimate")
	}
	venue, ok := PairVenue(req.Pair)
	if !ok {
		return nil, common.Invalidf("pair", "%s is not tradable on any venue", req.Pair)
	}
	params, ok := o.params[venue]
	if !ok {
		return nil, common.Invalidf("pair", "no parameters configured for venue %s", venue)
	}
	proxy, err := o.book.Resolve(o.net.GetName(), addrbook.KyberNetworkProxy)
	if err != nil {
		return nil, err
	}

	gasPrice := req.GasPriceWei
	if gasPrice == nil {
		gasPrice = o.gasPrice
	}
	if err := o.preflight(ctx, proxy, gasPrice); err != nil {
		return nil, err
	}

	tempAcct, tempKey, err := account.NewRandomAccount()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:          uuid.New(),
		Pair:        req.Pair,
		Venue:       venue,
		Amount:      req.Amount,
		Buyer:       req.Buyer,
		Seller:      req.Seller.Address(),
		GasPriceWei: gasPrice,
		MinRate:     req.MinConversionRate,
		TempAddress: tempAcct.Address(),
		TempKey:     tempKey,
		Phase:       PhaseInit,
	}
	log := logrus.WithFields(logrus.Fields{
		"session": session.ID,
		"pair":    req.Pair.String(),
		"temp":    session.TempAddress.Hex(),
	})

	nonce, err := o.gw.GetNonce(ctx, req.Seller.Address())
	if err != nil {
		return session, o.fail(session, "swap funding", err)
	}

	// Gas money for the session wallet's own two transactions.
	fundingWei := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(params.FundingGasUnits))
	fundingTx := types.NewTransaction(
		nonce, session.TempAddress, fundingWei,
		params.FundingGasLimit, gasPrice, nil,
	)
	signedFunding, err := req.Seller.SignTx(fundingTx, o.chainID())
	if err != nil {
		return session, o.fail(session, "swap funding", err)
	}
	fundingHash, err := o.gw.SubmitTransaction(ctx, signedFunding)
	if err != nil {
		return session, o.fail(session, "swap funding", err)
	}
	session.FundingHash = fundingHash
	if err := session.advance(PhaseFundingTempWallet); err != nil {
		return session, err
	}
	log.WithField("hash", fundingHash.Hex()).Info("session wallet funding submitted")

	releaseData, err := common.PackDetherCoreData("sellEth", session.TempAddress, common.EthToWei(req.Amount))
	if err != nil {
		return session, o.fail(session, "escrow release", err)
	}
	releaseTx := types.NewTransaction(
		nonce+1, o.core, big.NewInt(0),
		params.ReleaseGasLimit, gasPrice, releaseData,
	)
	signedRelease, err := req.Seller.SignTx(releaseTx, o.chainID())
	if err != nil {
		return session, o.fail(session, "escrow release", err)
	}
	releaseHash, err := o.gw.SubmitTransaction(ctx, signedRelease)
	if err != nil {
		return session, o.fail(session, "escrow release", err)
	}
	session.ReleaseHash = releaseHash
	log.WithField("hash", releaseHash.Hex()).Info("escrow release submitted")
	return session, nil
}

// Complete waits for the escrow release to land, trades the released
// ether toward the buyer from the session wallet, and refunds the gas
// residue to the seller. The session wallet spends exactly its first
// two nonces: the trade, then the refund.
func (o *Orchestrator) Complete(ctx context.Context, session *Session) error {
	if session.Phase != PhaseFundingTempWallet {
		return fmt.Errorf("session %s is at %s, expected %s", session.ID, session.Phase, PhaseFundingTempWallet)
	}
	params := o.params[session.Venue]
	proxy, err := o.book.Resolve(o.net.GetName(), addrbook.KyberNetworkProxy)
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	dest, err := o.tokenAddress(session.Pair.Quote)
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	log := logrus.WithField("session", session.ID)

	if _, err := o.gw.WaitForConfirmation(ctx, session.ReleaseHash); err != nil {
		return o.fail(session, "escrow release", err)
	}
	if err := session.advance(PhaseEscrowReleased); err != nil {
		return err
	}
	log.Info("escrow release confirmed")

	tempAcct := account.NewKeyAccount(session.TempKey)
	tempNonce, err := o.gw.GetNonce(ctx, session.TempAddress)
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	amountWei := common.EthToWei(session.Amount)
	tradeData, err := common.PackKyberProxyData(
		"trade",
		etherSentinel, amountWei, dest, session.Buyer,
		maxDestAmount, session.MinRate, ethcommon.Address{},
	)
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	tradeTx := types.NewTransaction(
		tempNonce, proxy, amountWei,
		params.TradeGasLimit, session.GasPriceWei, tradeData,
	)
	signedTrade, err := tempAcct.SignTx(tradeTx, o.chainID())
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	tradeHash, err := o.gw.SubmitTransaction(ctx, signedTrade)
	if err != nil {
		return o.fail(session, "swap trade", err)
	}
	session.TradeHash = tradeHash
	log.WithField("hash", tradeHash.Hex()).Info("venue trade submitted")
	if _, err := o.gw.WaitForConfirmation(ctx, tradeHash); err != nil {
		return o.fail(session, "swap trade", err)
	}
	if err := session.advance(PhaseSwapped); err != nil {
		return err
	}

	refundHash, err := o.refund(ctx, session.TempKey, session.Seller, session.GasPriceWei, params)
	if err != nil {
		return o.fail(session, "swap refund", err)
	}
	session.RefundHash = refundHash
	if err := session.advance(PhaseRefunded); err != nil {
		return err
	}
	log.WithField("hash", refundHash.Hex()).Info("gas residue refunded")
	return nil
}

// RefundResidual sweeps whatever ether a stranded session wallet still
// holds back to recipient. It is the manual recovery path for the key
// carried by an InconsistentStateError.
func (o *Orchestrator) RefundResidual(ctx context.Context, tempKey *ecdsa.PrivateKey, recipient ethcommon.Address, gasPriceWei *big.Int) (ethcommon.Hash, error) {
	if tempKey == nil {
		return ethcommon.Hash{}, common.Invalidf("tempKey", "must be provided")
	}
	if recipient == (ethcommon.Address{}) {
		return ethcommon.Hash{}, common.Invalidf("recipient", "must not be the zero address")
	}
	if gasPriceWei == nil {
		gasPriceWei = o.gasPrice
	}
	return o.refund(ctx, tempKey, recipient, gasPriceWei, o.params[VenueKyber])
}

// refund sends the session wallet's balance minus its own gas reserve
// to recipient, pinned to the wallet's refund nonce, and waits for it
// to land.
func (o *Orchestrator) refund(ctx context.Context, tempKey *ecdsa.PrivateKey, recipient ethcommon.Address, gasPriceWei *big.Int, params VenueParams) (ethcommon.Hash, error) {
	tempAcct := account.NewKeyAccount(tempKey)
	balance, err := o.gw.GetBalance(ctx, tempAcct.Address())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	reserve := new(big.Int).Mul(gasPriceWei, new(big.Int).SetUint64(params.RefundReserveUnits))
	refundable := new(big.Int).Sub(balance, reserve)
	if refundable.Sign() <= 0 {
		return ethcommon.Hash{}, &common.RemoteCallError{
			Op:  "refund",
			Err: fmt.Errorf("session wallet balance %s wei doesn't cover the refund reserve", balance),
		}
	}
	tx := types.NewTransaction(
		params.RefundNonce, recipient, refundable,
		params.RefundGasLimit, gasPriceWei, nil,
	)
	signed, err := tempAcct.SignTx(tx, o.chainID())
	if err != nil {
		return ethcommon.Hash{}, err
	}
	hash, err := o.gw.SubmitTransaction(ctx, signed)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if _, err := o.gw.WaitForConfirmation(ctx, hash); err != nil {
		return hash, err
	}
	return hash, nil
}
