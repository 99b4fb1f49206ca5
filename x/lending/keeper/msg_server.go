package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/lending/types"
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
	params, found := ms.GetPoolParams(ctx)
	if !found {
		return types.ErrNotAdmin
	}
	if params.Admin != caller {
		return types.ErrNotAdmin
	}
	return nil
}

// Deposit implements deposit: on the genesis deposit (no existing shares or
// deposits) MINIMUM_LIQUIDITY shares are minted to the pool itself and never
// credited to the depositor, so the share/asset exchange rate can never be
// driven to zero by a single depositor's full withdrawal. Deposits that
// would net zero usable shares after that deduction are rejected.
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}

	pool := ms.GetPool(ctx)
	isGenesis := pool.TotalShares == 0 || pool.TotalDeposits == 0

	if isGenesis && msg.Amount <= types.MinimumLiquidity {
		return nil, types.ErrInvalidAmount
	}

	grossShares := pool.SharesForDeposit(msg.Amount)
	usableShares := grossShares
	if isGenesis {
		usableShares = grossShares - types.MinimumLiquidity
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, coins); err != nil {
		return nil, types.ErrTransferFailed
	}

	pool.TotalDeposits += msg.Amount
	pool.TotalShares += grossShares
	ms.SetPool(ctx, pool)
	ms.SetShares(ctx, msg.Depositor, ms.GetShares(ctx, msg.Depositor)+usableShares)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolDeposit,
		sdk.NewAttribute(types.AttributeKeyDepositor, msg.Depositor),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Amount)),
		sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprint(usableShares)),
	))
	return &types.MsgDepositResponse{Shares: usableShares}, nil
}

func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	held := ms.GetShares(ctx, msg.Withdrawer)
	if msg.Shares > held {
		return nil, types.ErrInsufficientShares
	}

	pool := ms.GetPool(ctx)
	amount := pool.AssetsForShares(msg.Shares)
	if amount > pool.AvailableLiquidity() {
		return nil, types.ErrInsufficientLiquidity
	}

	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		return nil, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(amount)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, withdrawer, coins); err != nil {
		return nil, types.ErrTransferFailed
	}

	pool.TotalDeposits -= amount
	pool.TotalShares -= msg.Shares
	ms.SetPool(ctx, pool)
	ms.SetShares(ctx, msg.Withdrawer, held-msg.Shares)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolWithdraw,
		sdk.NewAttribute(types.AttributeKeyDepositor, msg.Withdrawer),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(amount)),
		sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprint(msg.Shares)),
	))
	return &types.MsgWithdrawResponse{Amount: amount}, nil
}

// PriorityWithdraw draws only from retained_yield, never principal.
func (ms msgServer) PriorityWithdraw(goCtx context.Context, msg *types.MsgPriorityWithdraw) (*types.MsgPriorityWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	pool := ms.GetPool(ctx)
	if msg.Amount > pool.RetainedYield {
		return nil, types.ErrInsufficientLiquidity
	}

	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		return nil, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, withdrawer, coins); err != nil {
		return nil, types.ErrTransferFailed
	}

	pool.RetainedYield -= msg.Amount
	ms.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolPriorityWithdraw,
		sdk.NewAttribute(types.AttributeKeyDepositor, msg.Withdrawer),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Amount)),
	))
	return &types.MsgPriorityWithdrawResponse{}, nil
}

// Borrow opens a single collateralized loan, freezing the origination rate
// against the post-increment utilization as spec.md's interest model
// requires: the candidate borrow amount is added to total_borrowed before
// the utilization/rate computation, then that rate is persisted on the loan
// for its entire lifetime.
func (ms msgServer) Borrow(goCtx context.Context, msg *types.MsgBorrow) (*types.MsgBorrowResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if !ms.IsWhitelisted(ctx, msg.CollateralDenom) {
		return nil, types.ErrCollateralNotWhitelisted
	}
	if _, found := ms.GetLoanByBorrower(ctx, msg.Borrower); found {
		return nil, types.ErrLoanAlreadyExists
	}

	params, found := ms.GetPoolParams(ctx)
	if !found {
		params = types.DefaultPoolParams(msg.Borrower)
	}

	pool := ms.GetPool(ctx)
	required := types.MulDivU64(msg.Amount, params.CollateralRatioBps, 10000)
	if msg.CollateralAmount < required {
		return nil, types.ErrInsufficientCollateral
	}
	if msg.Amount > pool.AvailableLiquidity() {
		return nil, types.ErrInsufficientLiquidity
	}

	postUtilizationBps := uint64(0)
	postBorrowed := pool.TotalBorrowed + msg.Amount
	if pool.TotalDeposits > 0 {
		postUtilizationBps = types.MulDivU64(postBorrowed, 10000, pool.TotalDeposits)
	}
	if postUtilizationBps > params.UtilizationCapBps {
		return nil, types.ErrUtilizationCapExceeded
	}

	borrower, err := sdk.AccAddressFromBech32(msg.Borrower)
	if err != nil {
		return nil, err
	}

	collateralCoins := sdk.NewCoins(sdk.NewCoin(msg.CollateralDenom, math.NewIntFromUint64(msg.CollateralAmount)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, borrower, types.ModuleName, collateralCoins); err != nil {
		return nil, types.ErrTransferFailed
	}
	loanCoins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(msg.Amount)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, borrower, loanCoins); err != nil {
		return nil, types.ErrTransferFailed
	}

	rateBps := params.RateBps(pool, msg.Amount)
	loanID := ms.GetNextLoanID(ctx)
	loan := types.Loan{
		LoanID:           loanID,
		Borrower:         msg.Borrower,
		Principal:        msg.Amount,
		CollateralDenom:  msg.CollateralDenom,
		CollateralAmount: msg.CollateralAmount,
		RateBps:          rateBps,
		OriginatedAt:     ctx.BlockTime().Unix(),
	}
	if err := ms.SetLoan(ctx, loan); err != nil {
		return nil, err
	}

	pool.TotalBorrowed = postBorrowed
	ms.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolBorrow,
		sdk.NewAttribute(types.AttributeKeyBorrower, msg.Borrower),
		sdk.NewAttribute(types.AttributeKeyLoanID, fmt.Sprint(loanID)),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(msg.Amount)),
		sdk.NewAttribute(types.AttributeKeyRateBps, fmt.Sprint(rateBps)),
	))
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCollateralDeposited,
		sdk.NewAttribute(types.AttributeKeyBorrower, msg.Borrower),
		sdk.NewAttribute(types.AttributeKeyCollateral, fmt.Sprint(msg.CollateralAmount)),
	))
	return &types.MsgBorrowResponse{LoanID: loanID, RateBps: rateBps}, nil
}

// Repay is a single full-repayment call. Interest is split: 10% goes to the
// protocol (protocol_share), of which half is a bad-debt reserve and half is
// retained yield available to priority withdrawals; the remaining 90% of
// interest compounds back into total_deposits for depositors.
func (ms msgServer) Repay(goCtx context.Context, msg *types.MsgRepay) (*types.MsgRepayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	loan, found := ms.GetLoanByBorrower(ctx, msg.Borrower)
	if !found {
		return nil, types.ErrNoOpenLoan
	}

	interest := loan.InterestDue(ctx.BlockTime().Unix())
	total := loan.Principal + interest

	borrower, err := sdk.AccAddressFromBech32(msg.Borrower)
	if err != nil {
		return nil, err
	}
	repayCoins := sdk.NewCoins(sdk.NewCoin(types.Denom, math.NewIntFromUint64(total)))
	if err := ms.bankKeeper.SendCoinsFromAccountToModule(ctx, borrower, types.ModuleName, repayCoins); err != nil {
		return nil, types.ErrTransferFailed
	}
	collateralCoins := sdk.NewCoins(sdk.NewCoin(loan.CollateralDenom, math.NewIntFromUint64(loan.CollateralAmount)))
	if err := ms.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, borrower, collateralCoins); err != nil {
		return nil, types.ErrTransferFailed
	}

	protocolShare := types.MulDivU64(interest, 1000, 10000)
	reserveShare := types.MulDivU64(protocolShare, 5000, 10000)
	retainedShare := protocolShare - reserveShare
	poolShare := interest - protocolShare

	pool := ms.GetPool(ctx)
	if loan.Principal > pool.TotalBorrowed {
		pool.TotalBorrowed = 0
	} else {
		pool.TotalBorrowed -= loan.Principal
	}
	pool.TotalDeposits += poolShare
	pool.RetainedYield += retainedShare
	pool.BadDebtReserve += reserveShare
	ms.SetPool(ctx, pool)
	ms.DeleteLoan(ctx, loan)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolRepay,
		sdk.NewAttribute(types.AttributeKeyBorrower, msg.Borrower),
		sdk.NewAttribute(types.AttributeKeyLoanID, fmt.Sprint(loan.LoanID)),
		sdk.NewAttribute(types.AttributeKeyInterest, fmt.Sprint(interest)),
		sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprint(total)),
	))
	return &types.MsgRepayResponse{
		Interest:      interest,
		TotalRepaid:   total,
		CollateralOut: loan.CollateralAmount,
	}, nil
}

func (ms msgServer) WhitelistToken(goCtx context.Context, msg *types.MsgWhitelistToken) (*types.MsgWhitelistTokenResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	ms.SetWhitelisted(ctx, msg.Denom, msg.Allowed)
	return &types.MsgWhitelistTokenResponse{}, nil
}

func (ms msgServer) UpdatePoolParams(goCtx context.Context, msg *types.MsgUpdatePoolParams) (*types.MsgUpdatePoolParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.requireAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	if err := ms.SetPoolParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolParamsUpdated,
		sdk.NewAttribute(types.AttributeKeyDepositor, msg.Admin),
	))
	return &types.MsgUpdatePoolParamsResponse{}, nil
}
