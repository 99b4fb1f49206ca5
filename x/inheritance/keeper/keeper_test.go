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
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"
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

type KeeperTestSuite struct {
	suite.Suite

	ctx        sdk.Context
	keeper     keeper.Keeper
	msgServer  types.MsgServer
	queryServer types.QueryServer
	bank       *mockBankKeeper

	admin sdk.AccAddress
	owner sdk.AccAddress
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
	k := keeper.NewKeeper(codec.NewLegacyAmino(), storeKey, memKey, mockAccountKeeper{}, s.bank, "cosmos1authority")
	s.keeper = *k
	s.msgServer = keeper.NewMsgServerImpl(s.keeper)
	s.queryServer = keeper.NewQueryServerImpl(s.keeper)

	s.admin = sdk.AccAddress("admin_______________")
	s.owner = sdk.AccAddress("owner_______________")
	s.bank.fund(s.owner, sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(1_000_000))))
}

func (s *KeeperTestSuite) goCtx() context.Context {
	return sdk.WrapSDKContext(s.ctx)
}

func (s *KeeperTestSuite) initAdmin() {
	_, err := s.msgServer.InitializeAdmin(s.goCtx(), &types.MsgInitializeAdmin{Admin: s.admin.String()})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestInitializeAdminOnce() {
	s.initAdmin()
	_, err := s.msgServer.InitializeAdmin(s.goCtx(), &types.MsgInitializeAdmin{Admin: s.admin.String()})
	s.Require().ErrorIs(err, types.ErrAdminAlreadyInitialized)
}

func (s *KeeperTestSuite) createPlan(totalAmount uint64) uint64 {
	if _, found := s.keeper.GetAdmin(s.ctx); !found {
		s.initAdmin()
	}
	resp, err := s.msgServer.CreatePlan(s.goCtx(), &types.MsgCreatePlan{
		Owner:              s.owner.String(),
		PlanName:           "family trust",
		Description:        "primary estate plan",
		TotalAmount:        totalAmount,
		DistributionMethod: types.DistributionLumpSum,
		Beneficiaries: []types.BeneficiaryInput{
			{Name: "alice", Email: "alice@example.com", ClaimCode: 123456, AllocationBp: 6000},
			{Name: "bob", Email: "bob@example.com", ClaimCode: 654321, AllocationBp: 4000},
		},
	})
	s.Require().NoError(err)
	return resp.PlanID
}

func (s *KeeperTestSuite) TestCreatePlanAppliesCreationFee() {
	planID := s.createPlan(10_000)
	plan, found := s.keeper.GetPlan(s.ctx, planID)
	s.Require().True(found)

	// 2% of 10000 = 200
	s.Require().Equal(uint64(9800), plan.TotalAmount)
	s.Require().True(plan.IsActive)
	s.Require().Len(plan.Beneficiaries, 2)
	s.Require().Equal(uint64(10000), plan.TotalAllocationBp)
}

// TestCreatePlanPaysFeeToAdmin asserts the creation fee lands on the admin's
// own balance, not the module account: the contract debits the owner with
// two independent transfers (owner->admin for the fee, owner->vault for the
// net), never one combined transfer of total_amount.
func (s *KeeperTestSuite) TestCreatePlanPaysFeeToAdmin() {
	s.initAdmin()
	s.createPlan(100_000)

	adminBalance := s.bank.GetBalance(context.Background(), s.admin, types.Denom)
	s.Require().Equal(uint64(2_000), adminBalance.Amount.Uint64())
}

func (s *KeeperTestSuite) TestCreatePlanRequiresAdminSet() {
	_, err := s.msgServer.CreatePlan(s.goCtx(), &types.MsgCreatePlan{
		Owner:              s.owner.String(),
		PlanName:           "no admin yet",
		TotalAmount:        10_000,
		DistributionMethod: types.DistributionLumpSum,
		Beneficiaries: []types.BeneficiaryInput{
			{Name: "alice", Email: "a@example.com", ClaimCode: 1, AllocationBp: 10000},
		},
	})
	s.Require().ErrorIs(err, types.ErrAdminNotSet)
}

func (s *KeeperTestSuite) TestCreatePlanRejectsBadAllocation() {
	_, err := s.msgServer.CreatePlan(s.goCtx(), &types.MsgCreatePlan{
		Owner:              s.owner.String(),
		PlanName:           "broken",
		TotalAmount:        1000,
		DistributionMethod: types.DistributionLumpSum,
		Beneficiaries: []types.BeneficiaryInput{
			{Name: "alice", Email: "a@example.com", ClaimCode: 1, AllocationBp: 5000},
		},
	})
	s.Require().ErrorIs(err, types.ErrAllocationMismatch)
}

func (s *KeeperTestSuite) TestDepositWithdrawRoundTrip() {
	planID := s.createPlan(10_000)

	_, err := s.msgServer.Deposit(s.goCtx(), &types.MsgDeposit{Owner: s.owner.String(), PlanID: planID, Amount: 500})
	s.Require().NoError(err)

	plan, _ := s.keeper.GetPlan(s.ctx, planID)
	s.Require().Equal(uint64(10_300), plan.TotalAmount)

	_, err = s.msgServer.Withdraw(s.goCtx(), &types.MsgWithdraw{Owner: s.owner.String(), PlanID: planID, Amount: 300})
	s.Require().NoError(err)

	plan, _ = s.keeper.GetPlan(s.ctx, planID)
	s.Require().Equal(uint64(10_000), plan.TotalAmount)
}

func (s *KeeperTestSuite) TestWithdrawRejectsOverAvailableLiquidity() {
	planID := s.createPlan(10_000)
	plan, _ := s.keeper.GetPlan(s.ctx, planID)
	plan.TotalLoaned = plan.TotalAmount
	s.keeper.SetPlan(s.ctx, plan)

	_, err := s.msgServer.Withdraw(s.goCtx(), &types.MsgWithdraw{Owner: s.owner.String(), PlanID: planID, Amount: 1})
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidity)
}

func (s *KeeperTestSuite) TestDeactivatePlanIsOneShot() {
	planID := s.createPlan(10_000)
	_, err := s.msgServer.DeactivatePlan(s.goCtx(), &types.MsgDeactivatePlan{Owner: s.owner.String(), PlanID: planID})
	s.Require().NoError(err)

	_, err = s.msgServer.DeactivatePlan(s.goCtx(), &types.MsgDeactivatePlan{Owner: s.owner.String(), PlanID: planID})
	s.Require().ErrorIs(err, types.ErrPlanAlreadyDeactivated)
}

func (s *KeeperTestSuite) TestTriggerAndClaimLumpSum() {
	s.initAdmin()
	planID := s.createPlan(10_000)

	_, err := s.msgServer.TriggerInheritance(s.goCtx(), &types.MsgTriggerInheritance{Admin: s.admin.String(), PlanID: planID})
	s.Require().NoError(err)

	claimer := sdk.AccAddress("alice_______________")
	resp, err := s.msgServer.ClaimPlan(s.goCtx(), &types.MsgClaimPlan{
		Claimer:   claimer.String(),
		PlanID:    planID,
		Email:     "alice@example.com",
		ClaimCode: 123456,
	})
	s.Require().NoError(err)
	// 60% of the net 9800 custodied balance
	s.Require().Equal(uint64(5880), resp.Payout)

	// replay is rejected
	_, err = s.msgServer.ClaimPlan(s.goCtx(), &types.MsgClaimPlan{
		Claimer:   claimer.String(),
		PlanID:    planID,
		Email:     "alice@example.com",
		ClaimCode: 123456,
	})
	s.Require().ErrorIs(err, types.ErrAlreadyClaimed)
}

func (s *KeeperTestSuite) TestClaimBeforeTriggerFails() {
	planID := s.createPlan(10_000)
	claimer := sdk.AccAddress("alice_______________")
	_, err := s.msgServer.ClaimPlan(s.goCtx(), &types.MsgClaimPlan{
		Claimer:   claimer.String(),
		PlanID:    planID,
		Email:     "alice@example.com",
		ClaimCode: 123456,
	})
	s.Require().ErrorIs(err, types.ErrInheritanceNotTriggered)
}

func (s *KeeperTestSuite) TestRecallLoanThenLiquidationFallback() {
	s.initAdmin()
	planID := s.createPlan(10_000)

	plan, _ := s.keeper.GetPlan(s.ctx, planID)
	plan.TotalLoaned = 1000
	s.keeper.SetPlan(s.ctx, plan)

	_, err := s.msgServer.TriggerInheritance(s.goCtx(), &types.MsgTriggerInheritance{Admin: s.admin.String(), PlanID: planID})
	s.Require().NoError(err)

	_, err = s.msgServer.RecallLoan(s.goCtx(), &types.MsgRecallLoan{Admin: s.admin.String(), PlanID: planID, Amount: 400})
	s.Require().NoError(err)

	resp, err := s.msgServer.LiquidationFallback(s.goCtx(), &types.MsgLiquidationFallback{Admin: s.admin.String(), PlanID: planID})
	s.Require().NoError(err)
	s.Require().Equal(uint64(600), resp.UnrecoverableAmount)

	plan, _ = s.keeper.GetPlan(s.ctx, planID)
	s.Require().Equal(uint64(0), plan.TotalLoaned)
}

func (s *KeeperTestSuite) TestKycApproveRequiresSubmission() {
	s.initAdmin()
	user := sdk.AccAddress("kyc_user____________")
	_, err := s.msgServer.ApproveKyc(s.goCtx(), &types.MsgApproveKyc{Admin: s.admin.String(), User: user.String()})
	s.Require().ErrorIs(err, types.ErrKycNotSubmitted)

	_, err = s.msgServer.SubmitKyc(s.goCtx(), &types.MsgSubmitKyc{User: user.String()})
	s.Require().NoError(err)

	_, err = s.msgServer.ApproveKyc(s.goCtx(), &types.MsgApproveKyc{Admin: s.admin.String(), User: user.String()})
	s.Require().NoError(err)

	status, found := s.keeper.GetKyc(s.ctx, user)
	s.Require().True(found)
	s.Require().True(status.Approved)
}
