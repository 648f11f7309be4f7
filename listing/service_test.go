package listing

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dethertech/dether-go/account"
	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/geo"
	"github.com/dethertech/dether-go/networks"
)

var (
	coreAddr  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c0")
	tokenAddr = ethcommon.HexToAddress("0x00000000000000000000000000000000000000dd")
)

// fakeGateway answers core contract reads from a handler table and
// records every transaction it is handed.
type fakeGateway struct {
	t        *testing.T
	handlers map[string]func(args []interface{}) ([]interface{}, error)

	nonces    map[ethcommon.Address]uint64
	submitted []*types.Transaction
	callCount int
	submitErr map[ethcommon.Address]error // keyed by recipient
}

func newFakeGateway(t *testing.T) *fakeGateway {
	return &fakeGateway{
		t:         t,
		handlers:  map[string]func(args []interface{}) ([]interface{}, error){},
		nonces:    map[ethcommon.Address]uint64{},
		submitErr: map[ethcommon.Address]error{},
	}
}

func (g *fakeGateway) SubmitTransaction(ctx context.Context, tx *types.Transaction) (ethcommon.Hash, error) {
	if err, ok := g.submitErr[*tx.To()]; ok {
		return ethcommon.Hash{}, err
	}
	g.submitted = append(g.submitted, tx)
	return tx.Hash(), nil
}

func (g *fakeGateway) CallContract(ctx context.Context, to ethcommon.Address, data []byte) ([]byte, error) {
	g.callCount++
	method, err := common.GetDetherCoreABI().MethodById(data[:4])
	require.NoError(g.t, err)
	handler, ok := g.handlers[method.Name]
	if !ok {
		return nil, fmt.Errorf("unexpected call to %s", method.Name)
	}
	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(g.t, err)
	out, err := handler(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (g *fakeGateway) WaitForConfirmation(ctx context.Context, hash ethcommon.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}, nil
}

func (g *fakeGateway) GetNonce(ctx context.Context, address ethcommon.Address) (uint64, error) {
	return g.nonces[address], nil
}

func (g *fakeGateway) GetBalance(ctx context.Context, address ethcommon.Address) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (g *fakeGateway) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(3), nil
}

func (g *fakeGateway) stubLicences(wei *big.Int) {
	handler := func(args []interface{}) ([]interface{}, error) {
		return []interface{}{wei}, nil
	}
	g.handlers["licenceTeller"] = handler
	g.handlers["licenceShop"] = handler
}

func testService(t *testing.T) (*Service, *fakeGateway) {
	gw := newFakeGateway(t)
	net, err := networks.GetNetwork("ropsten")
	require.NoError(t, err)
	return NewService(gw, net, coreAddr, tokenAddr, big.NewInt(20000000000)), gw
}

func testAccount(t *testing.T) *account.Account {
	acct, _, err := account.NewRandomAccount()
	require.NoError(t, err)
	return acct
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRecord() geo.TellerRecord {
	return geo.TellerRecord{
		Lat:        d("48.87167"),
		Lng:        d("2.31099"),
		CountryID:  "FR",
		PostalCode: "75008",
		AvatarID:   2,
		CurrencyID: 1,
		Messenger:  "telegram",
		SellRate:   d("3"),
		BuyRate:    d("0"),
	}
}

func TestPublishTellerTwoTxSequence(t *testing.T) {
	svc, gw := testService(t)
	licence := new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18))
	gw.stubLicences(licence)
	acct := testAccount(t)
	gw.nonces[acct.Address()] = 2

	rec := testRecord()
	result, err := svc.PublishTeller(context.Background(), rec, d("0.5"), acct, TxOpts{})
	require.NoError(t, err)
	require.Len(t, gw.submitted, 2)

	registration, stake := gw.submitted[0], gw.submitted[1]

	// leg one: token transfer to the core contract with the encoded
	// record as call data, at the wallet's current nonce
	assert.Equal(t, uint64(2), registration.Nonce())
	assert.Equal(t, tokenAddr, *registration.To())
	assert.Equal(t, big.NewInt(0), registration.Value())
	method, err := common.GetERC223ABI().MethodById(registration.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "transfer", method.Name)
	require.Len(t, method.Inputs, 3)
	args, err := method.Inputs.Unpack(registration.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, coreAddr, args[0].(ethcommon.Address))
	assert.Equal(t, licence, args[1].(*big.Int))
	encoded, err := geo.EncodeTeller(rec)
	require.NoError(t, err)
	assert.Equal(t, encoded, args[2].([]byte))

	// leg two: the stake as native value on addFunds, at the next nonce
	assert.Equal(t, uint64(3), stake.Nonce())
	assert.Equal(t, coreAddr, *stake.To())
	assert.Equal(t, common.EthToWei(d("0.5")), stake.Value())
	stakeMethod, err := common.GetDetherCoreABI().MethodById(stake.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "addFunds", stakeMethod.Name)

	assert.Equal(t, registration.Hash(), result.RegistrationHash)
	assert.Equal(t, stake.Hash(), result.StakeHash)
}

func TestPublishTellerValidatesBeforeNetwork(t *testing.T) {
	svc, gw := testService(t)
	acct := testAccount(t)

	bad := testRecord()
	bad.Lat = d("91")
	_, err := svc.PublishTeller(context.Background(), bad, d("0.5"), acct, TxOpts{})
	var valErr *common.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "lat", valErr.Field)

	noCountry := testRecord()
	noCountry.CountryID = ""
	_, err = svc.PublishTeller(context.Background(), noCountry, d("0.5"), acct, TxOpts{})
	require.ErrorAs(t, err, &valErr)

	_, err = svc.PublishTeller(context.Background(), testRecord(), decimal.Zero, acct, TxOpts{})
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "stake", valErr.Field)

	assert.Equal(t, 0, gw.callCount)
	assert.Empty(t, gw.submitted)
}

func TestPublishTellerSecondLegFailure(t *testing.T) {
	svc, gw := testService(t)
	gw.stubLicences(big.NewInt(1e18))
	acct := testAccount(t)
	gw.submitErr[coreAddr] = fmt.Errorf("node rejected it")

	_, err := svc.PublishTeller(context.Background(), testRecord(), d("0.5"), acct, TxOpts{})
	var stateErr *common.InconsistentStateError
	require.ErrorAs(t, err, &stateErr)
	require.Len(t, gw.submitted, 1, "the registration leg went out")
	assert.Equal(t, []ethcommon.Hash{gw.submitted[0].Hash()}, stateErr.TxHashes)
	assert.Nil(t, stateErr.TempWalletKey)
}

func TestUpdateTellerCarriesStakeDelta(t *testing.T) {
	svc, gw := testService(t)
	acct := testAccount(t)

	hash, err := svc.UpdateTeller(context.Background(), 1, 4, "new_handle", d("2.5"), d("0.1"), acct, TxOpts{})
	require.NoError(t, err)
	require.Len(t, gw.submitted, 1)
	tx := gw.submitted[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, coreAddr, *tx.To())
	assert.Equal(t, common.EthToWei(d("0.1")), tx.Value())

	method, err := common.GetDetherCoreABI().MethodById(tx.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "updateTeller", method.Name)
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	assert.Equal(t, int8(1), args[0].(int8))
	assert.Equal(t, int8(4), args[2].(int8))
	assert.Equal(t, int16(25), args[3].(int16))
}

func TestWithdraw(t *testing.T) {
	svc, gw := testService(t)
	acct := testAccount(t)

	_, err := svc.Withdraw(context.Background(), acct, TxOpts{})
	require.NoError(t, err)
	require.Len(t, gw.submitted, 1)
	tx := gw.submitted[0]
	assert.Equal(t, coreAddr, *tx.To())
	assert.Equal(t, deleteGasLimit, tx.Gas())
	method, err := common.GetDetherCoreABI().MethodById(tx.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "deleteTeller", method.Name)
}

func TestTxOptsOverrides(t *testing.T) {
	svc, gw := testService(t)
	acct := testAccount(t)
	nonce := uint64(42)

	_, err := svc.AddFunds(context.Background(), d("1"), acct, TxOpts{
		GasPriceWei: big.NewInt(1000000000),
		GasLimit:    90000,
		Nonce:       &nonce,
	})
	require.NoError(t, err)
	tx := gw.submitted[0]
	assert.Equal(t, uint64(42), tx.Nonce())
	assert.Equal(t, uint64(90000), tx.Gas())
	assert.Equal(t, big.NewInt(1000000000), tx.GasPrice())
}
