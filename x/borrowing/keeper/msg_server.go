package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"
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
	params, found := ms.GetParams(ctx)
	if !found {
		return types.ErrNotAdmin
	}
	if params.Admin != caller {
		return types.ErrNotAdmin
	}
	return nil
}

// CreateLoan opens a new collateralized loan: collateral must be
// whitelisted, the vault must be neither globally nor per-token paused, and
// the posted collateral must meet the params' collateral ratio.
func (ms msgServer) CreateLoan(goCtx context.Context, msg *types.MsgCreateLoan) (*types.MsgCreateLoanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if !ms.IsWhitelisted(ctx, msg.CollateralDenom) {
		return nil, types.ErrCollateralNotWhitelisted
	}

	params, found := ms.GetParams(ctx)
	if !found {
		params = types.DefaultParams(msg.Borrower)
	}
	if params.GlobalPause {
		return nil, types.ErrGlobalPaused
	}
	if ms.IsVaultPaused(ctx, msg.CollateralDenom) {
		return nil, types.ErrVaultPaused
	}

	required := types.MulDivU64(msg.Principal, params.CollateralRatioBps, 10000)
	if msg.CollateralAmount < required {
		return nil, types.ErrInsufficientCollateral
	}

	borrower, err := sdk.AccAddressFromBech32(msg.Borrower)
	if err != nil {
		return nil, err
	}
	collateralCoins := sdk.NewCoins(sdk.NewCoin(msg.CollateralDenom, math.NewIntFromUint64(msg.CollateralAmount)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, borrower, types.ModuleName, collateralCoins); err != nil {
		return nil, types.ErrTransferFailed
	}

	loanID := ms.GetNextLoanID(ctx)
	loan := types.Loan{
		LoanID:           loanID,
		Borrower:         msg.Borrower,
		Principal:        msg.Principal,
		InterestRateBps:  msg.InterestRateBps,
		DueDate:          msg.DueDate,
		AmountRepaid:     0,
		CollateralAmount: msg.CollateralAmount,
		CollateralDenom:  msg.CollateralDenom,
		IsActive:         true,
	}
	if err := ms.SetLoan(ctx, loan); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLoanCreated,
		sdk.NewAttribute(types.AttributeKeyBorrower, msg.Borrower),
		sdk.NewAttribute(types.AttributeKeyLoanID, fmt.Sprint(loanID)),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Principal)),
		sdk.NewAttribute(types.AttributeKeyCollateral, fmt.Sprint(msg.CollateralAmount)),
	))
	return &types.MsgCreateLoanResponse{LoanID: loanID}, nil
}

// RepayLoan accumulates amount into the loan's amount_repaid; once
// amount_repaid reaches principal the loan deactivates and its full
// collateral is returned.
func (ms msgServer) RepayLoan(goCtx context.Context, msg *types.MsgRepayLoan) (*types.MsgRepayLoanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	loan, found := ms.GetLoan(ctx, msg.LoanID)
	if !found {
		return nil, types.ErrLoanNotFound
	}
	if !loan.IsActive {
		return nil, types.ErrLoanNotActive
	}
	if loan.Borrower != msg.Borrower {
		return nil, types.ErrUnauthorized
	}

	borrower, err := sdk.AccAddressFromBech32(msg.Borrower)
	if err != nil {
		return nil, err
	}

	repayCoins := sdk.NewCoins(sdk.NewCoin(types.PrincipalDenom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, borrower, types.ModuleName, repayCoins); err != nil {
		return nil, types.ErrTransferFailed
	}

	loan.AmountRepaid += msg.Amount
	collateralOut := uint64(0)
	if loan.AmountRepaid >= loan.Principal {
		loan.IsActive = false
		collateralOut = loan.CollateralAmount
		collateralCoins := sdk.NewCoins(sdk.NewCoin(loan.CollateralDenom, math.NewIntFromUint64(loan.CollateralAmount)))
		if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, borrower, collateralCoins); err != nil {
			return nil, types.ErrTransferFailed
		}
	}
	if err := ms.SetLoan(ctx, loan); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLoanRepaid,
		sdk.NewAttribute(types.AttributeKeyBorrower, msg.Borrower),
		sdk.NewAttribute(types.AttributeKeyLoanID, fmt.Sprint(loan.LoanID)),
		sdk.NewAttribute(types.AttributeKeyAmountRepaid, fmt.Sprint(loan.AmountRepaid)),
	))
	return &types.MsgRepayLoanResponse{
		AmountRepaid:  loan.AmountRepaid,
		IsActive:      loan.IsActive,
		CollateralOut: collateralOut,
	}, nil
}

// Liquidate is a permissionless call: any caller may cover liquidate_amount
// of an unhealthy loan's outstanding debt in exchange for a collateral
// reward, provided the loan's health factor is below the liquidation
// threshold.
func (ms msgServer) Liquidate(goCtx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	loan, found := ms.GetLoan(ctx, msg.LoanID)
	if !found {
		return nil, types.ErrLoanNotFound
	}
	if !loan.IsActive {
		return nil, types.ErrLoanNotActive
	}

	debt := loan.Debt()
	if msg.LiquidateAmount > debt {
		return nil, types.ErrInvalidAmount
	}

	healthFactor := loan.HealthFactor()
	params, found := ms.GetParams(ctx)
	if !found {
		return nil, types.ErrNotAdmin
	}
	if healthFactor >= params.LiquidationThreshold {
		return nil, types.ErrLoanHealthy
	}

	reward := types.LiquidatorReward(msg.LiquidateAmount, params.LiquidationBonusBps)
	if reward > loan.CollateralAmount {
		return nil, types.ErrInvalidAmount
	}

	liquidator, err := sdk.AccAddressFromBech32(msg.Liquidator)
	if err != nil {
		return nil, err
	}
	rewardCoins := sdk.NewCoins(sdk.NewCoin(loan.CollateralDenom, math.NewIntFromUint64(reward)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, liquidator, rewardCoins); err != nil {
		return nil, types.ErrTransferFailed
	}

	loan.CollateralAmount -= reward
	loan.AmountRepaid += msg.LiquidateAmount
	if loan.AmountRepaid >= loan.Principal {
		loan.IsActive = false
	}
	if err := ms.SetLoan(ctx, loan); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLoanLiquidated,
		sdk.NewAttribute(types.AttributeKeyLiquidator, msg.Liquidator),
		sdk.NewAttribute(types.AttributeKeyLoanID, fmt.Sprint(loan.LoanID)),
		sdk.NewAttribute(types.AttributeKeyLiquidatorReward, fmt.Sprint(reward)),
		sdk.NewAttribute(types.AttributeKeyHealthFactor, fmt.Sprint(loan.HealthFactor())),
	))
	return &types.MsgLiquidateResponse{
		LiquidatorReward: reward,
		CollateralLeft:   loan.CollateralAmount,
		HealthFactor:     loan.HealthFactor(),
	}, nil
}

func (ms msgServer) WhitelistCollateral(goCtx context.Context, msg *types.MsgWhitelistCollateral) (*types.MsgWhitelistCollateralResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	ms.SetWhitelisted(ctx, msg.Denom, msg.Allowed)
	return &types.MsgWhitelistCollateralResponse{}, nil
}

func (ms msgServer) SetGlobalPause(goCtx context.Context, msg *types.MsgSetGlobalPause) (*types.MsgSetGlobalPauseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	params, found := ms.GetParams(ctx)
	if !found {
		return nil, types.ErrNotAdmin
	}
	params.GlobalPause = msg.Paused
	if err := ms.SetParams(ctx, params); err != nil {
		return nil, err
	}
	return &types.MsgSetGlobalPauseResponse{}, nil
}

func (ms msgServer) SetVaultPause(goCtx context.Context, msg *types.MsgSetVaultPause) (*types.MsgSetVaultPauseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	ms.Keeper.SetVaultPause(ctx, msg.Denom, msg.Paused)
	return &types.MsgSetVaultPauseResponse{}, nil
}
