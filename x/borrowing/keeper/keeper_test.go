package keeper_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cometbfttypes "github.com/cometbft/cometbft/api/cometbft/types/v2"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"
)

type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (m *mockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	if !from.IsAllGTE(amt) {
		return errors.New("insufficient funds")
	}
	m.balances[fromAddr.String()] = from.Sub(amt...)
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, moduleAddr(recipientModule), amt)
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, moduleAddr(senderModule), recipientAddr, amt)
}

func (m *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *mockBankKeeper) fund(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

func moduleAddr(name string) sdk.AccAddress {
	return sdk.AccAddress("module_" + name)
}

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return moduleAddr(name)
}

const collateralDenom = "coll"

type KeeperTestSuite struct {
	suite.Suite

	ctx         sdk.Context
	keeper      keeper.Keeper
	msgServer   types.MsgServer
	queryServer types.QueryServer
	bank        *mockBankKeeper

	admin    sdk.AccAddress
	borrower sdk.AccAddress
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memKey, storetypes.StoreTypeMemory, nil)
	s.Require().NoError(stateStore.LoadLatestVersion())

	header := cometbfttypes.Header{Height: 1}
	s.ctx = sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	s.bank = newMockBankKeeper()
	k := keeper.NewKeeper(storeKey, memKey, s.bank, mockAccountKeeper{})
	s.keeper = *k
	s.msgServer = keeper.NewMsgServerImpl(s.keeper)
	s.queryServer = keeper.NewQueryServerImpl(s.keeper)

	s.admin = sdk.AccAddress("admin_______________")
	s.borrower = sdk.AccAddress("borrower____________")

	// Vault admin is seeded the way genesis would, not through a message:
	// the module has no initialize-style handler of its own, matching
	// x/lending's bootstrap choice.
	s.Require().NoError(s.keeper.SetParams(s.ctx, types.Params{
		Admin:                s.admin.String(),
		CollateralRatioBps:   12000,
		LiquidationThreshold: 13000,
		LiquidationBonusBps:  500,
	}))

	s.bank.fund(s.borrower, sdk.NewCoins(sdk.NewCoin(collateralDenom, math.NewIntFromUint64(1_000_000))))
	s.bank.fund(s.borrower, sdk.NewCoins(sdk.NewCoin(types.PrincipalDenom, math.NewIntFromUint64(1_000_000))))
}

func (s *KeeperTestSuite) goCtx() context.Context {
	return sdk.WrapSDKContext(s.ctx)
}

func (s *KeeperTestSuite) whitelist() {
	_, err := s.msgServer.WhitelistCollateral(s.goCtx(), &types.MsgWhitelistCollateral{
		Admin: s.admin.String(), Denom: collateralDenom, Allowed: true,
	})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestCreateLoanRejectsWithoutWhitelist() {
	_, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().ErrorIs(err, types.ErrCollateralNotWhitelisted)
}

func (s *KeeperTestSuite) TestCreateLoanRejectsInsufficientCollateral() {
	s.whitelist()
	_, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1199,
	})
	s.Require().ErrorIs(err, types.ErrInsufficientCollateral)
}

func (s *KeeperTestSuite) TestCreateLoanRejectsWhenGloballyPaused() {
	s.whitelist()
	_, err := s.msgServer.SetGlobalPause(s.goCtx(), &types.MsgSetGlobalPause{Admin: s.admin.String(), Paused: true})
	s.Require().NoError(err)

	_, err = s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().ErrorIs(err, types.ErrGlobalPaused)
}

func (s *KeeperTestSuite) TestCreateLoanRejectsWhenVaultPaused() {
	s.whitelist()
	_, err := s.msgServer.SetVaultPause(s.goCtx(), &types.MsgSetVaultPause{
		Admin: s.admin.String(), Denom: collateralDenom, Paused: true,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().ErrorIs(err, types.ErrVaultPaused)
}

// TestPartialLiquidation reproduces the scenario 6 fixture exactly:
// collateral_ratio=12000, liq_threshold=13000, liq_bonus=500, principal=1000,
// collateral=1200; liquidating half the debt (500) leaves amount_repaid=500,
// collateral_amount=675 (1200 - 500*1.05), health_factor=13500.
func (s *KeeperTestSuite) TestPartialLiquidation() {
	s.whitelist()
	createResp, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().NoError(err)

	liquidator := sdk.AccAddress("liquidator__________")
	resp, err := s.msgServer.Liquidate(s.goCtx(), &types.MsgLiquidate{
		Liquidator: liquidator.String(), LoanID: createResp.LoanID, LiquidateAmount: 500,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(525), resp.LiquidatorReward)
	s.Require().Equal(uint64(675), resp.CollateralLeft)
	s.Require().Equal(uint64(13500), resp.HealthFactor)

	loan, found := s.keeper.GetLoan(s.ctx, createResp.LoanID)
	s.Require().True(found)
	s.Require().Equal(uint64(500), loan.AmountRepaid)
	s.Require().Equal(uint64(675), loan.CollateralAmount)
	s.Require().True(loan.IsActive)

	liquidatorBalance := s.bank.GetBalance(context.Background(), liquidator, collateralDenom)
	s.Require().Equal(uint64(525), liquidatorBalance.Amount.Uint64())
}

func (s *KeeperTestSuite) TestLiquidateRejectsHealthyLoan() {
	s.whitelist()
	createResp, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 20000,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.Liquidate(s.goCtx(), &types.MsgLiquidate{
		Liquidator: s.admin.String(), LoanID: createResp.LoanID, LiquidateAmount: 500,
	})
	s.Require().ErrorIs(err, types.ErrLoanHealthy)
}

func (s *KeeperTestSuite) TestRepayLoanFullyReturnsCollateral() {
	s.whitelist()
	createResp, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.RepayLoan(s.goCtx(), &types.MsgRepayLoan{
		Borrower: s.borrower.String(), LoanID: createResp.LoanID, Amount: 1000,
	})
	s.Require().NoError(err)
	s.Require().False(resp.IsActive)
	s.Require().Equal(uint64(1200), resp.CollateralOut)

	loan, found := s.keeper.GetLoan(s.ctx, createResp.LoanID)
	s.Require().True(found)
	s.Require().False(loan.IsActive)
}

func (s *KeeperTestSuite) TestRepayLoanPartialKeepsLoanActive() {
	s.whitelist()
	createResp, err := s.msgServer.CreateLoan(s.goCtx(), &types.MsgCreateLoan{
		Borrower: s.borrower.String(), Principal: 1000,
		CollateralDenom: collateralDenom, CollateralAmount: 1200,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.RepayLoan(s.goCtx(), &types.MsgRepayLoan{
		Borrower: s.borrower.String(), LoanID: createResp.LoanID, Amount: 400,
	})
	s.Require().NoError(err)
	s.Require().True(resp.IsActive)
	s.Require().Equal(uint64(0), resp.CollateralOut)
	s.Require().Equal(uint64(400), resp.AmountRepaid)
}

func (s *KeeperTestSuite) TestWhitelistCollateralRequiresAdmin() {
	_, err := s.msgServer.WhitelistCollateral(s.goCtx(), &types.MsgWhitelistCollateral{
		Admin: s.borrower.String(), Denom: collateralDenom, Allowed: true,
	})
	s.Require().ErrorIs(err, types.ErrNotAdmin)
}
