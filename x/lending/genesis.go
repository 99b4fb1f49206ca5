package lending

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/lending/keeper"
	"github.com/sharehodl/sharehodl-blockchain/x/lending/types"
)

// GenesisState defines the lending module's genesis state.
type GenesisState struct {
	Pool                  types.Pool        `json:"pool"`
	Params                types.PoolParams  `json:"params"`
	Loans                 []types.Loan      `json:"loans"`
	Shares                map[string]uint64 `json:"shares"`
	WhitelistedCollateral []string          `json:"whitelisted_collateral"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pool:                  types.Pool{},
		Params:                types.DefaultPoolParams(""),
		Loans:                 []types.Loan{},
		Shares:                map[string]uint64{},
		WhitelistedCollateral: []string{},
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, loan := range gs.Loans {
		if seen[loan.Borrower] {
			return types.ErrLoanAlreadyExists
		}
		seen[loan.Borrower] = true
	}
	return nil
}

// InitGenesis initializes the lending module's state from a provided genesis
// state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, gs GenesisState) {
	k.SetPool(ctx, gs.Pool)
	if gs.Params.Admin != "" {
		_ = k.SetPoolParams(ctx, gs.Params)
	}
	for _, loan := range gs.Loans {
		_ = k.SetLoan(ctx, loan)
	}
	for holder, shares := range gs.Shares {
		k.SetShares(ctx, holder, shares)
	}
	for _, denom := range gs.WhitelistedCollateral {
		k.SetWhitelisted(ctx, denom, true)
	}
}

// ExportGenesis returns the lending module's exported genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *GenesisState {
	params, _ := k.GetPoolParams(ctx)
	return &GenesisState{
		Pool:                  k.GetPool(ctx),
		Params:                params,
		Loans:                 k.GetAllLoans(ctx),
		Shares:                k.GetAllShares(ctx),
		WhitelistedCollateral: k.GetAllWhitelistedCollateral(ctx),
	}
}
