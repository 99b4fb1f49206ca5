package inheritance

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"
)

// GenesisState defines the inheritance module's genesis state.
type GenesisState struct {
	Admin    types.AdminState                 `json:"admin"`
	Plans    []types.InheritancePlan          `json:"plans"`
	Triggers []types.InheritanceTriggerInfo   `json:"triggers"`
	Kyc      []types.KycStatus                `json:"kyc"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Admin:    types.AdminState{Version: types.ContractVersion},
		Plans:    []types.InheritancePlan{},
		Triggers: []types.InheritanceTriggerInfo{},
		Kyc:      []types.KycStatus{},
	}
}

func (gs GenesisState) Validate() error {
	planIDs := make(map[uint64]bool)
	for _, plan := range gs.Plans {
		if plan.TotalAllocationBp > types.MaxAllocationBp {
			return types.ErrInvalidPlan
		}
		if len(plan.Beneficiaries) > types.MaxBeneficiaries {
			return types.ErrTooManyBeneficiaries
		}
		if planIDs[plan.PlanID] {
			return types.ErrInvalidPlan
		}
		planIDs[plan.PlanID] = true
	}
	for _, trig := range gs.Triggers {
		if !planIDs[trig.PlanID] {
			return types.ErrPlanNotFound
		}
	}
	return nil
}

// InitGenesis initializes the inheritance module's state from a provided
// genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, gs GenesisState) {
	if gs.Admin.Admin != "" {
		k.SetAdmin(ctx, gs.Admin)
	}

	for _, plan := range gs.Plans {
		k.SetPlan(ctx, plan)

		owner, err := sdk.AccAddressFromBech32(plan.Owner)
		if err == nil {
			k.SetOwnerPlanIndex(ctx, owner, plan.PlanID)
		}
	}

	for _, trig := range gs.Triggers {
		k.SetTrigger(ctx, trig)
	}

	for _, status := range gs.Kyc {
		k.SetKyc(ctx, status)
	}
}

// ExportGenesis returns the inheritance module's exported genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *GenesisState {
	admin, _ := k.GetAdmin(ctx)
	return &GenesisState{
		Admin:    admin,
		Plans:    k.GetAllPlans(ctx),
		Triggers: k.GetAllTriggers(ctx),
		Kyc:      k.GetAllKyc(ctx),
	}
}
