package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) requireAdmin(ctx sdk.Context, caller string) error {
	admin, found := ms.GetAdmin(ctx)
	if !found {
		return types.ErrAdminNotSet
	}
	if admin.Admin != caller {
		return types.ErrNotAdmin
	}
	return nil
}

func (ms msgServer) moduleAddr() sdk.AccAddress {
	return ms.accountKeeper.GetModuleAddress(types.ModuleName)
}

func (ms msgServer) InitializeAdmin(goCtx context.Context, msg *types.MsgInitializeAdmin) (*types.MsgInitializeAdminResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if _, found := ms.GetAdmin(ctx); found {
		return nil, types.ErrAdminAlreadyInitialized
	}
	ms.SetAdmin(ctx, types.AdminState{Admin: msg.Admin, Version: types.ContractVersion})

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeContractUpgrade,
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
		sdk.NewAttribute(types.AttributeKeyVersion, fmt.Sprint(types.ContractVersion)),
	))
	return &types.MsgInitializeAdminResponse{}, nil
}

// CreatePlan implements create_inheritance_plan: a 2% creation fee is taken
// off total_amount and sent to the admin address, and the net custodied
// balance is sent to the module account as two independent transfers, each
// separately fallible to ErrFeeTransferFailed, matching the Soroban
// contract's own two try_invoke_contract calls rather than one combined
// debit of total_amount.
func (ms msgServer) CreatePlan(goCtx context.Context, msg *types.MsgCreatePlan) (*types.MsgCreatePlanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	adminState, found := ms.GetAdmin(ctx)
	if !found {
		return nil, types.ErrAdminNotSet
	}
	adminAddr, err := sdk.AccAddressFromBech32(adminState.Admin)
	if err != nil {
		return nil, err
	}

	fee := msg.TotalAmount * types.CreationFeeBp / types.MaxAllocationBp
	net := msg.TotalAmount - fee

	if fee > 0 {
		feeCoins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(fee)))
		if err := ms.bankKeeper.SendCoins(ctx, owner, adminAddr, feeCoins); err != nil {
			return nil, types.ErrFeeTransferFailed
		}
	}

	netCoins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(net)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, netCoins); err != nil {
		return nil, types.ErrFeeTransferFailed
	}

	planID := ms.GetNextPlanID(ctx)

	beneficiaries := make([]types.Beneficiary, len(msg.Beneficiaries))
	var totalBp uint64
	for i, b := range msg.Beneficiaries {
		beneficiaries[i] = types.Beneficiary{
			NameHash:      types.HashBytes(b.Name),
			EmailHash:     types.HashBytes(b.Email),
			ClaimCodeHash: types.HashBytes(fmt.Sprint(b.ClaimCode)),
			BankAccount:   b.BankAccount,
			AllocationBp:  b.AllocationBp,
		}
		totalBp += b.AllocationBp
	}

	plan := types.InheritancePlan{
		PlanID:             planID,
		Owner:              msg.Owner,
		PlanName:           msg.PlanName,
		Description:        msg.Description,
		AssetType:          types.AssetTypeStablecoin,
		TotalAmount:        net,
		DistributionMethod: msg.DistributionMethod,
		Beneficiaries:      beneficiaries,
		TotalAllocationBp:  totalBp,
		CreatedAt:          ctx.BlockTime().Unix(),
		IsActive:           true,
		IsLendable:         msg.IsLendable,
	}

	ms.SetPlan(ctx, plan)
	ms.SetOwnerPlanIndex(ctx, owner, planID)

	ms.Logger(ctx).Info("inheritance plan created", "plan_id", planID, "owner", msg.Owner, "fee", fee)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVaultDeposit,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(planID)),
		sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(net)),
		sdk.NewAttribute(types.AttributeKeyFee, fmt.Sprint(fee)),
	))

	return &types.MsgCreatePlanResponse{PlanID: planID}, nil
}

func (ms msgServer) AddBeneficiary(goCtx context.Context, msg *types.MsgAddBeneficiary) (*types.MsgAddBeneficiaryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	if !plan.IsActive {
		return nil, types.ErrPlanNotActive
	}
	if len(plan.Beneficiaries) >= types.MaxBeneficiaries {
		return nil, types.ErrTooManyBeneficiaries
	}
	if plan.TotalAllocationBp+msg.Input.AllocationBp > types.MaxAllocationBp {
		return nil, types.ErrAllocationExceedsLimit
	}

	b := types.Beneficiary{
		NameHash:      types.HashBytes(msg.Input.Name),
		EmailHash:     types.HashBytes(msg.Input.Email),
		ClaimCodeHash: types.HashBytes(fmt.Sprint(msg.Input.ClaimCode)),
		BankAccount:   msg.Input.BankAccount,
		AllocationBp:  msg.Input.AllocationBp,
	}
	plan.Beneficiaries = append(plan.Beneficiaries, b)
	plan.TotalAllocationBp += msg.Input.AllocationBp
	ms.SetPlan(ctx, plan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBeneficiaryAdd,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyBeneficiary, fmt.Sprint(len(plan.Beneficiaries)-1)),
	))
	return &types.MsgAddBeneficiaryResponse{}, nil
}

// RemoveBeneficiary is an O(1) swap-with-last removal by index. The plan's
// TotalAllocationBp may fall below 10000bp afterward; spec.md leaves that a
// valid non-terminal state since claim payout is computed per-beneficiary
// against its own AllocationBp, not normalized against the plan total.
func (ms msgServer) RemoveBeneficiary(goCtx context.Context, msg *types.MsgRemoveBeneficiary) (*types.MsgRemoveBeneficiaryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	if !plan.IsActive {
		return nil, types.ErrPlanNotActive
	}
	if int(msg.Index) >= len(plan.Beneficiaries) {
		return nil, types.ErrInvalidBeneficiaryIndex
	}

	removed := plan.Beneficiaries[msg.Index]
	last := len(plan.Beneficiaries) - 1
	plan.Beneficiaries[msg.Index] = plan.Beneficiaries[last]
	plan.Beneficiaries = plan.Beneficiaries[:last]
	plan.TotalAllocationBp -= removed.AllocationBp
	ms.SetPlan(ctx, plan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBeneficiaryRemove,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyBeneficiary, fmt.Sprint(msg.Index)),
	))
	return &types.MsgRemoveBeneficiaryResponse{}, nil
}

func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	if !plan.IsActive {
		return nil, types.ErrPlanNotActive
	}

	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, coins); err != nil {
		return nil, types.ErrTransferFailed
	}

	plan.TotalAmount += msg.Amount
	ms.SetPlan(ctx, plan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVaultDeposit,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Amount)),
	))
	return &types.MsgDepositResponse{}, nil
}

func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	if !plan.IsActive {
		return nil, types.ErrPlanNotActive
	}
	if msg.Amount > plan.AvailableLiquidity() {
		return nil, types.ErrInsufficientLiquidity
	}

	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, coins); err != nil {
		return nil, types.ErrTransferFailed
	}

	plan.TotalAmount -= msg.Amount
	ms.SetPlan(ctx, plan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVaultWithdraw,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Amount)),
	))
	return &types.MsgWithdrawResponse{}, nil
}

func (ms msgServer) SetLendable(goCtx context.Context, msg *types.MsgSetLendable) (*types.MsgSetLendableResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	plan.IsLendable = msg.Flag
	ms.SetPlan(ctx, plan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVaultLendable,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyLendable, fmt.Sprint(msg.Flag)),
	))
	return &types.MsgSetLendableResponse{}, nil
}

func (ms msgServer) DeactivatePlan(goCtx context.Context, msg *types.MsgDeactivatePlan) (*types.MsgDeactivatePlanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if plan.Owner != msg.Owner {
		return nil, types.ErrUnauthorized
	}
	if ms.IsDeactivated(ctx, msg.PlanID) {
		return nil, types.ErrPlanAlreadyDeactivated
	}

	plan.IsActive = false
	ms.SetPlan(ctx, plan)
	ms.SetDeactivated(ctx, msg.PlanID)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePlanDeactivated,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
	))
	return &types.MsgDeactivatePlanResponse{}, nil
}

func (ms msgServer) TriggerInheritance(goCtx context.Context, msg *types.MsgTriggerInheritance) (*types.MsgTriggerInheritanceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, types.ErrPlanNotActive
	}
	if _, found := ms.GetTrigger(ctx, msg.PlanID); found {
		return nil, types.ErrInheritanceAlreadyTriggered
	}

	trig := types.InheritanceTriggerInfo{
		PlanID:           msg.PlanID,
		TriggeredAt:      ctx.BlockTime().Unix(),
		LoanFreezeActive: plan.TotalLoaned > 0,
		OriginalLoaned:   plan.TotalLoaned,
	}
	ms.SetTrigger(ctx, trig)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeInheritTrigger,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
	))
	if trig.LoanFreezeActive {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeLoanFreeze,
			sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		))
	}
	return &types.MsgTriggerInheritanceResponse{}, nil
}

// RecallLoan is accounting-only: the admin attests that `amount` of the
// plan's loaned-out liquidity has been recovered from the lending pool via
// an operator-mediated off-band call, since spec.md forbids synchronous
// cross-module coupling between the vault and the pool.
func (ms msgServer) RecallLoan(goCtx context.Context, msg *types.MsgRecallLoan) (*types.MsgRecallLoanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	trig, found := ms.GetTrigger(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrInheritanceNotTriggered
	}
	if trig.OriginalLoaned == 0 || trig.RecalledAmount >= trig.OriginalLoaned {
		return nil, types.ErrNoOutstandingLoans
	}

	trig.RecalledAmount += msg.Amount
	if trig.RecalledAmount > trig.OriginalLoaned {
		trig.RecalledAmount = trig.OriginalLoaned
	}
	ms.SetTrigger(ctx, trig)

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if found {
		if msg.Amount > plan.TotalLoaned {
			plan.TotalLoaned = 0
		} else {
			plan.TotalLoaned -= msg.Amount
		}
		plan.TotalAmount += msg.Amount
		ms.SetPlan(ctx, plan)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLoanRecall,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyRecalled, fmt.Sprint(trig.RecalledAmount)),
	))
	return &types.MsgRecallLoanResponse{}, nil
}

// LiquidationFallback settles whatever loaned principal recall could not
// recover as unrecoverable bad debt against the plan, once recall attempts
// are exhausted.
func (ms msgServer) LiquidationFallback(goCtx context.Context, msg *types.MsgLiquidationFallback) (*types.MsgLiquidationFallbackResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	trig, found := ms.GetTrigger(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrInheritanceNotTriggered
	}

	unrecoverable := trig.OriginalLoaned - trig.RecalledAmount
	trig.LiquidationTriggered = true
	trig.SettledAmount = unrecoverable
	ms.SetTrigger(ctx, trig)

	if plan, found := ms.GetPlan(ctx, msg.PlanID); found {
		plan.TotalLoaned = 0
		ms.SetPlan(ctx, plan)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidationFallback,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeySettled, fmt.Sprint(unrecoverable)),
	))
	return &types.MsgLiquidationFallbackResponse{UnrecoverableAmount: unrecoverable}, nil
}

// ClaimPlan implements claim_inheritance_plan. Authorization is by secret
// (email + claim code hashing to the stored digests), not by signer
// identity: the transaction signer only pays gas.
func (ms msgServer) ClaimPlan(goCtx context.Context, msg *types.MsgClaimPlan) (*types.MsgClaimPlanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	plan, found := ms.GetPlan(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	trig, found := ms.GetTrigger(ctx, msg.PlanID)
	if !found {
		return nil, types.ErrInheritanceNotTriggered
	}

	gate := plan.DistributionMethod.TimeGateSeconds()
	if ctx.BlockTime().Unix() < trig.TriggeredAt+gate {
		return nil, types.ErrClaimNotAllowedYet
	}

	emailHash := types.HashBytes(msg.Email)
	codeHash := types.HashBytes(fmt.Sprint(msg.ClaimCode))

	var matched *types.Beneficiary
	for i := range plan.Beneficiaries {
		b := &plan.Beneficiaries[i]
		if bytesEqual(b.EmailHash, emailHash) && bytesEqual(b.ClaimCodeHash, codeHash) {
			matched = b
			break
		}
	}
	if matched == nil {
		return nil, types.ErrBeneficiaryNotFound
	}

	claimKey := types.ClaimKey(msg.PlanID, emailHash)
	if _, found := ms.GetClaimRecord(ctx, claimKey); found {
		return nil, types.ErrAlreadyClaimed
	}

	payout := plan.TotalAmount * matched.AllocationBp / types.MaxAllocationBp
	claimer, _ := sdk.AccAddressFromBech32(msg.Claimer)
	if payout > 0 {
		coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(payout)))
		if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, claimer, coins); err != nil {
			return nil, types.ErrTransferFailed
		}
	}

	ms.SetClaimRecord(ctx, claimKey, types.ClaimRecord{
		PlanID:     msg.PlanID,
		HashedEmail: emailHash,
		Payout:     payout,
		ClaimedAt:  ctx.BlockTime().Unix(),
	})
	ms.SetUserClaimedPlan(ctx, claimer, msg.PlanID)
	ms.SetAllClaimedPlan(ctx, msg.PlanID)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaimSuccess,
		sdk.NewAttribute(types.AttributeKeyPlanID, fmt.Sprint(msg.PlanID)),
		sdk.NewAttribute(types.AttributeKeyHashedEmail, fmt.Sprintf("%x", emailHash)),
		sdk.NewAttribute(types.AttributeKeyPayout, fmt.Sprint(payout)),
	))
	return &types.MsgClaimPlanResponse{Payout: payout}, nil
}

func (ms msgServer) SubmitKyc(goCtx context.Context, msg *types.MsgSubmitKyc) (*types.MsgSubmitKycResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	addr, _ := sdk.AccAddressFromBech32(msg.User)
	status, found := ms.GetKyc(ctx, addr)
	if found && status.Approved {
		return nil, types.ErrKycAlreadyApproved
	}
	status = types.KycStatus{
		User:        msg.User,
		Submitted:   true,
		SubmittedAt: ctx.BlockTime().Unix(),
	}
	ms.SetKyc(ctx, status)
	return &types.MsgSubmitKycResponse{}, nil
}

func (ms msgServer) ApproveKyc(goCtx context.Context, msg *types.MsgApproveKyc) (*types.MsgApproveKycResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	addr, _ := sdk.AccAddressFromBech32(msg.User)
	status, found := ms.GetKyc(ctx, addr)
	if !found || !status.Submitted {
		return nil, types.ErrKycNotSubmitted
	}
	if status.Approved {
		return nil, types.ErrKycAlreadyApproved
	}
	status.Approved = true
	status.ApprovedAt = ctx.BlockTime().Unix()
	ms.SetKyc(ctx, status)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeKycApproved,
		sdk.NewAttribute(types.AttributeKeyUser, msg.User),
	))
	return &types.MsgApproveKycResponse{}, nil
}

func (ms msgServer) RejectKyc(goCtx context.Context, msg *types.MsgRejectKyc) (*types.MsgRejectKycResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	addr, _ := sdk.AccAddressFromBech32(msg.User)
	status, found := ms.GetKyc(ctx, addr)
	if !found || !status.Submitted {
		return nil, types.ErrKycNotSubmitted
	}
	if status.Rejected {
		return nil, types.ErrKycAlreadyRejected
	}
	status.Rejected = true
	status.RejectedAt = ctx.BlockTime().Unix()
	ms.SetKyc(ctx, status)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeKycRejected,
		sdk.NewAttribute(types.AttributeKeyUser, msg.User),
	))
	return &types.MsgRejectKycResponse{}, nil
}

func (ms msgServer) Upgrade(goCtx context.Context, msg *types.MsgUpgrade) (*types.MsgUpgradeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	admin, _ := ms.GetAdmin(ctx)
	admin.Version++
	ms.SetAdmin(ctx, admin)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeContractUpgrade,
		sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
		sdk.NewAttribute(types.AttributeKeyVersion, fmt.Sprint(admin.Version)),
	))
	return &types.MsgUpgradeResponse{}, nil
}

func (ms msgServer) Migrate(goCtx context.Context, msg *types.MsgMigrate) (*types.MsgMigrateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	admin, _ := ms.GetAdmin(ctx)
	if admin.Version >= types.ContractVersion {
		return nil, types.ErrMigrationNotRequired
	}
	admin.Version = types.ContractVersion
	ms.SetAdmin(ctx, admin)
	return &types.MsgMigrateResponse{}, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
