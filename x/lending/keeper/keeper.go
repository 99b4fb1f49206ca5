package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/lending/types"
)

// Keeper of the lending store.
//
// Pool/Loan/Shares persistence goes through plain encoding/json against the
// KVStore, the same idiom the original version of this file used directly
// (bypassing the codec.BinaryCodec it otherwise declared): the domain
// structs here carry no generated proto Marshal/Unmarshal methods, and the
// module has no cross-keeper coupling that would require a shared wire
// format with another module.
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

// --- Pool ---

func (k Keeper) GetPool(ctx sdk.Context) types.Pool {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PoolKey)
	if bz == nil {
		return types.Pool{}
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}
	}
	return pool
}

func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) {
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(pool)
	if err != nil {
		panic(fmt.Errorf("failed to marshal pool: %w", err))
	}
	store.Set(types.PoolKey, bz)
}

// --- Pool params ---

func (k Keeper) GetPoolParams(ctx sdk.Context) (types.PoolParams, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PoolParamsKey)
	if bz == nil {
		return types.PoolParams{}, false
	}
	var params types.PoolParams
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.PoolParams{}, false
	}
	return params, true
}

func (k Keeper) SetPoolParams(ctx sdk.Context, params types.PoolParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal pool params: %w", err)
	}
	store.Set(types.PoolParamsKey, bz)
	return nil
}

// --- Shares ---

func (k Keeper) GetShares(ctx sdk.Context, holder string) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.SharesKey(holder))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) SetShares(ctx sdk.Context, holder string, shares uint64) {
	store := ctx.KVStore(k.storeKey)
	if shares == 0 {
		store.Delete(types.SharesKey(holder))
		return
	}
	store.Set(types.SharesKey(holder), sdk.Uint64ToBigEndian(shares))
}

func (k Keeper) GetAllShares(ctx sdk.Context) map[string]uint64 {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.SharesPrefix)
	defer iterator.Close()

	out := make(map[string]uint64)
	for ; iterator.Valid(); iterator.Next() {
		holder := string(iterator.Key()[len(types.SharesPrefix):])
		out[holder] = sdk.BigEndianToUint64(iterator.Value())
	}
	return out
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

func (k Keeper) GetLoanByBorrower(ctx sdk.Context, borrower string) (types.Loan, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.LoanByBorrowerKey(borrower))
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
	store := ctx.KVStore(k.storeKey)
	store.Set(types.LoanByBorrowerKey(loan.Borrower), bz)
	store.Set(types.LoanByIDKey(loan.LoanID), bz)
	return nil
}

func (k Keeper) GetLoanByID(ctx sdk.Context, loanID uint64) (types.Loan, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.LoanByIDKey(loanID))
	if bz == nil {
		return types.Loan{}, false
	}
	var loan types.Loan
	if err := json.Unmarshal(bz, &loan); err != nil {
		return types.Loan{}, false
	}
	return loan, true
}

func (k Keeper) DeleteLoan(ctx sdk.Context, loan types.Loan) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.LoanByBorrowerKey(loan.Borrower))
	store.Delete(types.LoanByIDKey(loan.LoanID))
}

func (k Keeper) GetAllLoans(ctx sdk.Context) []types.Loan {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.LoanByIDPrefix)
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
