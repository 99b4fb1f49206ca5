package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/lending/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryPoolResponse{Pool: qs.GetPool(ctx)}, nil
}

func (qs queryServer) Shares(goCtx context.Context, req *types.QuerySharesRequest) (*types.QuerySharesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QuerySharesResponse{Shares: qs.GetShares(ctx, req.Holder)}, nil
}

func (qs queryServer) Loan(goCtx context.Context, req *types.QueryLoanRequest) (*types.QueryLoanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	loan, found := qs.GetLoanByBorrower(ctx, req.Borrower)
	if !found {
		return nil, types.ErrNoOpenLoan
	}
	return &types.QueryLoanResponse{Loan: loan}, nil
}

func (qs queryServer) IsWhitelisted(goCtx context.Context, req *types.QueryIsWhitelistedRequest) (*types.QueryIsWhitelistedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryIsWhitelistedResponse{Whitelisted: qs.Keeper.IsWhitelisted(ctx, req.Denom)}, nil
}

func (qs queryServer) PoolParams(goCtx context.Context, req *types.QueryPoolParamsRequest) (*types.QueryPoolParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	params, found := qs.GetPoolParams(ctx)
	if !found {
		return nil, types.ErrInvalidPoolParams
	}
	return &types.QueryPoolParamsResponse{Params: params}, nil
}
