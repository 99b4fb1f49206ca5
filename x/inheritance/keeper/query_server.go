package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (qs queryServer) Plan(goCtx context.Context, req *types.QueryPlanRequest) (*types.QueryPlanResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	plan, found := qs.GetPlan(ctx, req.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	return &types.QueryPlanResponse{Plan: plan}, nil
}

func (qs queryServer) Beneficiaries(goCtx context.Context, req *types.QueryBeneficiariesRequest) (*types.QueryBeneficiariesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	plan, found := qs.GetPlan(ctx, req.PlanID)
	if !found {
		return nil, types.ErrPlanNotFound
	}
	return &types.QueryBeneficiariesResponse{Beneficiaries: plan.Beneficiaries}, nil
}

func (qs queryServer) PlansByOwner(goCtx context.Context, req *types.QueryPlansByOwnerRequest) (*types.QueryPlansByOwnerResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, err
	}
	return &types.QueryPlansByOwnerResponse{Plans: qs.GetPlansByOwner(ctx, owner)}, nil
}

func (qs queryServer) PlansByBeneficiary(goCtx context.Context, req *types.QueryPlansByBeneficiaryRequest) (*types.QueryPlansByBeneficiaryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	beneficiary, err := sdk.AccAddressFromBech32(req.Beneficiary)
	if err != nil {
		return nil, err
	}
	return &types.QueryPlansByBeneficiaryResponse{Plans: qs.GetPlansByBeneficiary(ctx, beneficiary)}, nil
}

func (qs queryServer) Trigger(goCtx context.Context, req *types.QueryTriggerRequest) (*types.QueryTriggerResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	trigger, found := qs.GetTrigger(ctx, req.PlanID)
	if !found {
		return nil, types.ErrInheritanceNotTriggered
	}
	return &types.QueryTriggerResponse{Trigger: trigger}, nil
}

func (qs queryServer) KycStatus(goCtx context.Context, req *types.QueryKycStatusRequest) (*types.QueryKycStatusResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	addr, err := sdk.AccAddressFromBech32(req.User)
	if err != nil {
		return nil, err
	}
	status, found := qs.GetKyc(ctx, addr)
	if !found {
		return nil, types.ErrKycNotSubmitted
	}
	return &types.QueryKycStatusResponse{Status: status}, nil
}

func (qs queryServer) ContractVersion(goCtx context.Context, req *types.QueryContractVersionRequest) (*types.QueryContractVersionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	admin, found := qs.GetAdmin(ctx)
	if !found {
		return &types.QueryContractVersionResponse{Version: types.ContractVersion}, nil
	}
	return &types.QueryContractVersionResponse{Version: admin.Version}, nil
}

func (qs queryServer) AllClaims(goCtx context.Context, req *types.QueryAllClaimsRequest) (*types.QueryAllClaimsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryAllClaimsResponse{Plans: qs.GetAllClaimedPlans(ctx)}, nil
}
