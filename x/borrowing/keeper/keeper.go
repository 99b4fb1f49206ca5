package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/borrowing/types"
)

// Keeper of the borrowing store.
//
// Loan/Params/whitelist/pause persistence goes through plain encoding/json
// against the KVStore, the same idiom x/lending's keeper uses -- none of
// this module's domain structs carry generated proto Marshal/Unmarshal
// methods. The loan index additionally uses cosmossdk.io/store/prefix's
// sub-store view rather than raw KVStorePrefixIterator, since iterating a
// single flat per-loan-id keyspace is exactly what prefix.NewStore is for.
type Keeper struct {
	storeKey      storetypes.StoreKey
	memKey        storetypes.StoreKey
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
}

func NewKeeper(
	storeKey,
	memKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
) *Keeper {
	return &Keeper{
		storeKey:      storeKey,
		memKey:        memKey,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) GetStoreKey() storetypes.StoreKey {
	return k.storeKey
}

// --- Params ---

func (k Keeper) GetParams(ctx sdk.Context) (types.Params, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.Params{}, false
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, false
	}
	return params, true
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	store.Set(types.ParamsKey, bz)
	return nil
}

// --- Loans ---

func (k Keeper) GetNextLoanID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextLoanIDKey)

	var id uint64 = 1
	if bz != nil {
		id = sdk.BigEndianToUint64(bz)
	}
	store.Set(types.NextLoanIDKey, sdk.Uint64ToBigEndian(id+1))
	return id
}

func (k Keeper) loanStore(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(ctx.KVStore(k.storeKey), types.LoanPrefix)
}

func (k Keeper) GetLoan(ctx sdk.Context, loanID uint64) (types.Loan, bool) {
	store := k.loanStore(ctx)
	bz := store.Get(sdk.Uint64ToBigEndian(loanID))
	if bz == nil {
		return types.Loan{}, false
	}
	var loan types.Loan
	if err := json.Unmarshal(bz, &loan); err != nil {
		return types.Loan{}, false
	}
	return loan, true
}

func (k Keeper) SetLoan(ctx sdk.Context, loan types.Loan) error {
	bz, err := json.Marshal(loan)
	if err != nil {
		return fmt.Errorf("failed to marshal loan: %w", err)
	}
	k.loanStore(ctx).Set(sdk.Uint64ToBigEndian(loan.LoanID), bz)
	return nil
}

func (k Keeper) GetAllLoans(ctx sdk.Context) []types.Loan {
	store := k.loanStore(ctx)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var loans []types.Loan
	for ; iterator.Valid(); iterator.Next() {
		var loan types.Loan
		if err := json.Unmarshal(iterator.Value(), &loan); err == nil {
			loans = append(loans, loan)
		}
	}
	return loans
}

// --- Whitelisted collateral ---

func (k Keeper) IsWhitelisted(ctx sdk.Context, denom string) bool {
	return ctx.KVStore(k.storeKey).Has(types.WhitelistedCollateralKey(denom))
}

func (k Keeper) SetWhitelisted(ctx sdk.Context, denom string, allowed bool) {
	store := ctx.KVStore(k.storeKey)
	if allowed {
		store.Set(types.WhitelistedCollateralKey(denom), []byte{1})
	} else {
		store.Delete(types.WhitelistedCollateralKey(denom))
	}
}

func (k Keeper) GetAllWhitelistedCollateral(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.WhitelistedCollateralPrefix)
	defer iterator.Close()

	var out []string
	for ; iterator.Valid(); iterator.Next() {
		out = append(out, string(iterator.Key()[len(types.WhitelistedCollateralPrefix):]))
	}
	return out
}

// --- Per-vault pause ---

func (k Keeper) IsVaultPaused(ctx sdk.Context, denom string) bool {
	return ctx.KVStore(k.storeKey).Has(types.VaultPauseKey(denom))
}

func (k Keeper) SetVaultPause(ctx sdk.Context, denom string, paused bool) {
	store := ctx.KVStore(k.storeKey)
	if paused {
		store.Set(types.VaultPauseKey(denom), []byte{1})
	} else {
		store.Delete(types.VaultPauseKey(denom))
	}
}

func (k Keeper) GetAllVaultPauses(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.VaultPausePrefix)
	defer iterator.Close()

	var out []string
	for ; iterator.Valid(); iterator.Next() {
		out = append(out, string(iterator.Key()[len(types.VaultPausePrefix):]))
	}
	return out
}
