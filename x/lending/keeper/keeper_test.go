package keeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cometbfttypes "github.com/cometbft/cometbft/api/cometbft/types/v2"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/sharehodl/sharehodl-blockchain/x/lending/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/lending/types"
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

	admin      sdk.AccAddress
	depositor  sdk.AccAddress
	borrower   sdk.AccAddress
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

	header := cometbfttypes.Header{Height: 1, Time: time.Unix(1_700_000_000, 0)}
	s.ctx = sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	s.bank = newMockBankKeeper()
	k := keeper.NewKeeper(storeKey, memKey, s.bank, mockAccountKeeper{})
	s.keeper = *k
	s.msgServer = keeper.NewMsgServerImpl(s.keeper)
	s.queryServer = keeper.NewQueryServerImpl(s.keeper)

	s.admin = sdk.AccAddress("admin_______________")
	s.depositor = sdk.AccAddress("depositor___________")
	s.borrower = sdk.AccAddress("borrower____________")

	// Pool admin is seeded the way genesis would, not through a message: the
	// module has no InitializeAdmin-style handler of its own.
	s.Require().NoError(s.keeper.SetPoolParams(s.ctx, types.DefaultPoolParams(s.admin.String())))

	s.bank.fund(s.depositor, sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(1_000_000))))
	s.bank.fund(s.borrower, sdk.NewCoins(sdk.NewCoin(collateralDenom, math.NewIntFromUint64(1_000_000))))
}

func (s *KeeperTestSuite) goCtx() context.Context {
	return sdk.WrapSDKContext(s.ctx)
}

func (s *KeeperTestSuite) deposit(amount uint64) *types.MsgDepositResponse {
	resp, err := s.msgServer.Deposit(s.goCtx(), &types.MsgDeposit{Depositor: s.depositor.String(), Amount: amount})
	s.Require().NoError(err)
	return resp
}

func (s *KeeperTestSuite) whitelist() {
	_, err := s.msgServer.WhitelistToken(s.goCtx(), &types.MsgWhitelistToken{
		Admin: s.admin.String(), Denom: collateralDenom, Allowed: true,
	})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestDepositGenesisLocksMinimumLiquidity() {
	resp := s.deposit(2000)
	s.Require().Equal(uint64(1000), resp.Shares)

	pool := s.keeper.GetPool(s.ctx)
	s.Require().Equal(uint64(2000), pool.TotalDeposits)
	s.Require().Equal(uint64(2000), pool.TotalShares)
	s.Require().Equal(uint64(1000), s.keeper.GetShares(s.ctx, s.depositor.String()))
}

func (s *KeeperTestSuite) TestDepositAtOrBelowMinimumLiquidityRejected() {
	_, err := s.msgServer.Deposit(s.goCtx(), &types.MsgDeposit{Depositor: s.depositor.String(), Amount: 1000})
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
}

func (s *KeeperTestSuite) TestBorrowRejectsWithoutWhitelist() {
	s.deposit(100_000)
	_, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 15_000,
	})
	s.Require().ErrorIs(err, types.ErrCollateralNotWhitelisted)
}

func (s *KeeperTestSuite) TestBorrowRejectsInsufficientCollateral() {
	s.deposit(100_000)
	s.whitelist()
	_, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 14_999,
	})
	s.Require().ErrorIs(err, types.ErrInsufficientCollateral)
}

// TestBorrowFreezesOriginationRate checks the post-increment utilization
// rate: 10% utilization (10,000 borrowed of 100,000 deposited) against the
// default 2% base / 20% multiplier yields 200 + 1000*2000/10000 = 400 bps.
func (s *KeeperTestSuite) TestBorrowFreezesOriginationRate() {
	s.deposit(100_000)
	s.whitelist()
	resp, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 15_000,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(400), resp.RateBps)

	pool := s.keeper.GetPool(s.ctx)
	s.Require().Equal(uint64(10_000), pool.TotalBorrowed)
}

func (s *KeeperTestSuite) TestBorrowRejectsSecondOpenLoan() {
	s.deposit(100_000)
	s.whitelist()
	_, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 15_000,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 1_000,
		CollateralDenom: collateralDenom, CollateralAmount: 1_500,
	})
	s.Require().ErrorIs(err, types.ErrLoanAlreadyExists)
}

// TestRepaySplitsInterest advances one full year so the simple-interest
// formula collapses to principal*rate_bps/10000, then checks the
// 10%-to-protocol / 50%-of-that-to-reserve split lands on the pool exactly.
func (s *KeeperTestSuite) TestRepaySplitsInterest() {
	s.deposit(100_000)
	s.whitelist()
	_, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 15_000,
	})
	s.Require().NoError(err)

	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(time.Duration(types.SecondsPerYear) * time.Second))
	// borrower owes principal+interest; the loan proceeds alone don't cover
	// the accrued interest, so top up enough to complete repayment.
	s.bank.fund(s.borrower, sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(400))))

	resp, err := s.msgServer.Repay(s.goCtx(), &types.MsgRepay{Borrower: s.borrower.String()})
	s.Require().NoError(err)
	s.Require().Equal(uint64(400), resp.Interest)
	s.Require().Equal(uint64(10_400), resp.TotalRepaid)
	s.Require().Equal(uint64(15_000), resp.CollateralOut)

	pool := s.keeper.GetPool(s.ctx)
	s.Require().Equal(uint64(0), pool.TotalBorrowed)
	s.Require().Equal(uint64(100_360), pool.TotalDeposits)
	s.Require().Equal(uint64(20), pool.RetainedYield)
	s.Require().Equal(uint64(20), pool.BadDebtReserve)

	_, found := s.keeper.GetLoanByBorrower(s.ctx, s.borrower.String())
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestRepayWithNoOpenLoanFails() {
	_, err := s.msgServer.Repay(s.goCtx(), &types.MsgRepay{Borrower: s.borrower.String()})
	s.Require().ErrorIs(err, types.ErrNoOpenLoan)
}

func (s *KeeperTestSuite) TestWithdrawRejectsOverAvailableLiquidity() {
	s.deposit(100_000)
	s.whitelist()
	_, err := s.msgServer.Borrow(s.goCtx(), &types.MsgBorrow{
		Borrower: s.borrower.String(), Amount: 10_000,
		CollateralDenom: collateralDenom, CollateralAmount: 15_000,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.Withdraw(s.goCtx(), &types.MsgWithdraw{Withdrawer: s.depositor.String(), Shares: 95_000})
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidity)
}

func (s *KeeperTestSuite) TestWithdrawRoundTrip() {
	s.deposit(100_000)

	resp, err := s.msgServer.Withdraw(s.goCtx(), &types.MsgWithdraw{Withdrawer: s.depositor.String(), Shares: 50_000})
	s.Require().NoError(err)
	s.Require().Equal(uint64(50_000), resp.Amount)

	pool := s.keeper.GetPool(s.ctx)
	s.Require().Equal(uint64(50_000), pool.TotalDeposits)
	s.Require().Equal(uint64(50_000), pool.TotalShares)
	s.Require().Equal(uint64(49_000), s.keeper.GetShares(s.ctx, s.depositor.String()))
}

func (s *KeeperTestSuite) TestPriorityWithdrawOnlyDrawsRetainedYield() {
	pool := s.keeper.GetPool(s.ctx)
	pool.TotalDeposits = 10_000
	pool.RetainedYield = 500
	s.keeper.SetPool(s.ctx, pool)
	s.bank.fund(moduleAddr(types.ModuleName), sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(500))))

	_, err := s.msgServer.PriorityWithdraw(s.goCtx(), &types.MsgPriorityWithdraw{Withdrawer: s.depositor.String(), Amount: 600})
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidity)

	_, err = s.msgServer.PriorityWithdraw(s.goCtx(), &types.MsgPriorityWithdraw{Withdrawer: s.depositor.String(), Amount: 500})
	s.Require().NoError(err)

	pool = s.keeper.GetPool(s.ctx)
	s.Require().Equal(uint64(0), pool.RetainedYield)
}

func (s *KeeperTestSuite) TestWhitelistTokenRequiresAdmin() {
	_, err := s.msgServer.WhitelistToken(s.goCtx(), &types.MsgWhitelistToken{
		Admin: s.depositor.String(), Denom: collateralDenom, Allowed: true,
	})
	s.Require().ErrorIs(err, types.ErrNotAdmin)
}
