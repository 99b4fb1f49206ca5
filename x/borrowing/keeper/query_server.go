package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (qs queryServer) Loan(goCtx context.Context, req *types.QueryLoanRequest) (*types.QueryLoanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	loan, found := qs.GetLoan(ctx, req.LoanID)
	if !found {
		return nil, types.ErrLoanNotFound
	}
	return &types.QueryLoanResponse{Loan: loan}, nil
}

func (qs queryServer) HealthFactor(goCtx context.Context, req *types.QueryHealthFactorRequest) (*types.QueryHealthFactorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	loan, found := qs.GetLoan(ctx, req.LoanID)
	if !found {
		return nil, types.ErrLoanNotFound
	}
	return &types.QueryHealthFactorResponse{HealthFactor: loan.HealthFactor()}, nil
}

func (qs queryServer) IsWhitelisted(goCtx context.Context, req *types.QueryIsWhitelistedRequest) (*types.QueryIsWhitelistedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryIsWhitelistedResponse{Whitelisted: qs.Keeper.IsWhitelisted(ctx, req.Denom)}, nil
}

func (qs queryServer) IsGlobalPaused(goCtx context.Context, req *types.QueryIsGlobalPausedRequest) (*types.QueryIsGlobalPausedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	params, _ := qs.GetParams(ctx)
	return &types.QueryIsGlobalPausedResponse{Paused: params.GlobalPause}, nil
}

func (qs queryServer) IsVaultPaused(goCtx context.Context, req *types.QueryIsVaultPausedRequest) (*types.QueryIsVaultPausedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryIsVaultPausedResponse{Paused: qs.Keeper.IsVaultPaused(ctx, req.Denom)}, nil
}

func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	params, found := qs.GetParams(ctx)
	if !found {
		return nil, types.ErrInvalidParams
	}
	return &types.QueryParamsResponse{Params: params}, nil
}
