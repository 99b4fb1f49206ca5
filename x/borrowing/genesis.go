package borrowing

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"
)

// GenesisState defines the borrowing module's genesis state.
type GenesisState struct {
	Params                types.Params `json:"params"`
	Loans                 []types.Loan `json:"loans"`
	WhitelistedCollateral []string     `json:"whitelisted_collateral"`
	VaultPauses           []string     `json:"vault_pauses"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:                types.DefaultParams(""),
		Loans:                 []types.Loan{},
		WhitelistedCollateral: []string{},
		VaultPauses:           []string{},
	}
}

func (gs GenesisState) Validate() error {
	return gs.Params.Validate()
}

// InitGenesis initializes the borrowing module's state from a provided
// genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, gs GenesisState) {
	if gs.Params.Admin != "" {
		_ = k.SetParams(ctx, gs.Params)
	}
	for _, loan := range gs.Loans {
		_ = k.SetLoan(ctx, loan)
	}
	for _, denom := range gs.WhitelistedCollateral {
		k.SetWhitelisted(ctx, denom, true)
	}
	for _, denom := range gs.VaultPauses {
		k.SetVaultPause(ctx, denom, true)
	}
}

// ExportGenesis returns the borrowing module's exported genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *GenesisState {
	params, _ := k.GetParams(ctx)
	return &GenesisState{
		Params:                params,
		Loans:                 k.GetAllLoans(ctx),
		WhitelistedCollateral: k.GetAllWhitelistedCollateral(ctx),
		VaultPauses:           k.GetAllVaultPauses(ctx),
	}
}
