package keeper

import (
	"encoding/binary"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sharehodl/sharehodl-blockchain/x/inheritance/types"
)

// Keeper of the inheritance store.
//
// Storage uses the legacy amino codec (MustMarshalBinaryBare /
// MustUnmarshalBinaryBare) rather than codec.BinaryCodec: the domain
// structs in types.go are plain Go structs with no generated proto
// Marshal/Unmarshal/Size methods, and amino's reflection-based encoder
// round-trips them without requiring any. Msg/Query wire types go through
// the same Amino instance registered in types/codec.go.
type Keeper struct {
	cdc           *codec.LegacyAmino
	storeKey      storetypes.StoreKey
	memKey        storetypes.StoreKey
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper

	authority string
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey,
	memKey storetypes.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		memKey:        memKey,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     authority,
	}
}

func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) GetStoreKey() storetypes.StoreKey {
	return k.storeKey
}

func (k Keeper) GetCodec() *codec.LegacyAmino {
	return k.cdc
}

// --- Admin state ---

func (k Keeper) GetAdmin(ctx sdk.Context) (types.AdminState, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.AdminKey)
	if bz == nil {
		return types.AdminState{}, false
	}
	var admin types.AdminState
	k.cdc.MustUnmarshalBinaryBare(bz, &admin)
	return admin, true
}

func (k Keeper) SetAdmin(ctx sdk.Context, admin types.AdminState) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&admin)
	store.Set(types.AdminKey, bz)
}

// --- Plan counter ---

func (k Keeper) GetNextPlanID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PlanCounterKey)

	var planID uint64 = 1
	if bz != nil {
		planID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, planID+1)
	store.Set(types.PlanCounterKey, next)

	return planID
}

// --- Plans ---

func (k Keeper) GetPlan(ctx sdk.Context, planID uint64) (types.InheritancePlan, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PlanKey(planID))
	if bz == nil {
		return types.InheritancePlan{}, false
	}
	var plan types.InheritancePlan
	k.cdc.MustUnmarshalBinaryBare(bz, &plan)
	return plan, true
}

func (k Keeper) SetPlan(ctx sdk.Context, plan types.InheritancePlan) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&plan)
	store.Set(types.PlanKey(plan.PlanID), bz)
}

func (k Keeper) SetOwnerPlanIndex(ctx sdk.Context, owner sdk.AccAddress, planID uint64) {
	ctx.KVStore(k.storeKey).Set(types.OwnerPlanIndexKey(owner, planID), []byte{1})
}

func (k Keeper) GetPlansByOwner(ctx sdk.Context, owner sdk.AccAddress) []types.InheritancePlan {
	store := ctx.KVStore(k.storeKey)
	prefix := types.OwnerPlanIndexPrefixForAddress(owner)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var plans []types.InheritancePlan
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		planID := binary.BigEndian.Uint64(key[len(key)-8:])
		if plan, found := k.GetPlan(ctx, planID); found {
			plans = append(plans, plan)
		}
	}
	return plans
}

func (k Keeper) SetBeneficiaryPlanIndex(ctx sdk.Context, beneficiary sdk.AccAddress, planID uint64) {
	ctx.KVStore(k.storeKey).Set(types.BeneficiaryPlanIndexKey(beneficiary, planID), []byte{1})
}

func (k Keeper) DeleteBeneficiaryPlanIndex(ctx sdk.Context, beneficiary sdk.AccAddress, planID uint64) {
	ctx.KVStore(k.storeKey).Delete(types.BeneficiaryPlanIndexKey(beneficiary, planID))
}

func (k Keeper) GetPlansByBeneficiary(ctx sdk.Context, beneficiary sdk.AccAddress) []types.InheritancePlan {
	store := ctx.KVStore(k.storeKey)
	prefix := types.BeneficiaryPlanIndexPrefixForAddress(beneficiary)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var plans []types.InheritancePlan
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		planID := binary.BigEndian.Uint64(key[len(key)-8:])
		if plan, found := k.GetPlan(ctx, planID); found {
			plans = append(plans, plan)
		}
	}
	return plans
}

func (k Keeper) IteratePlans(ctx sdk.Context, cb func(plan types.InheritancePlan) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.InheritancePlanPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var plan types.InheritancePlan
		k.cdc.MustUnmarshalBinaryBare(iterator.Value(), &plan)
		if cb(plan) {
			break
		}
	}
}

func (k Keeper) GetAllPlans(ctx sdk.Context) []types.InheritancePlan {
	var plans []types.InheritancePlan
	k.IteratePlans(ctx, func(plan types.InheritancePlan) bool {
		plans = append(plans, plan)
		return false
	})
	return plans
}

func (k Keeper) IsDeactivated(ctx sdk.Context, planID uint64) bool {
	return ctx.KVStore(k.storeKey).Has(types.DeactivatedPlanKey(planID))
}

func (k Keeper) SetDeactivated(ctx sdk.Context, planID uint64) {
	ctx.KVStore(k.storeKey).Set(types.DeactivatedPlanKey(planID), []byte{1})
}

// --- Triggers ---

func (k Keeper) GetTrigger(ctx sdk.Context, planID uint64) (types.InheritanceTriggerInfo, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TriggerKey(planID))
	if bz == nil {
		return types.InheritanceTriggerInfo{}, false
	}
	var trig types.InheritanceTriggerInfo
	k.cdc.MustUnmarshalBinaryBare(bz, &trig)
	return trig, true
}

func (k Keeper) SetTrigger(ctx sdk.Context, trig types.InheritanceTriggerInfo) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&trig)
	store.Set(types.TriggerKey(trig.PlanID), bz)
}

func (k Keeper) GetAllTriggers(ctx sdk.Context) []types.InheritanceTriggerInfo {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.TriggerPrefix)
	defer iterator.Close()

	var out []types.InheritanceTriggerInfo
	for ; iterator.Valid(); iterator.Next() {
		var trig types.InheritanceTriggerInfo
		k.cdc.MustUnmarshalBinaryBare(iterator.Value(), &trig)
		out = append(out, trig)
	}
	return out
}

// --- Claims ---

func (k Keeper) GetClaimRecord(ctx sdk.Context, claimKey []byte) (types.ClaimRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ClaimRecordKey(claimKey))
	if bz == nil {
		return types.ClaimRecord{}, false
	}
	var rec types.ClaimRecord
	k.cdc.MustUnmarshalBinaryBare(bz, &rec)
	return rec, true
}

func (k Keeper) SetClaimRecord(ctx sdk.Context, claimKey []byte, rec types.ClaimRecord) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&rec)
	store.Set(types.ClaimRecordKey(claimKey), bz)
}

func (k Keeper) GetAllClaimRecords(ctx sdk.Context) []types.ClaimRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.ClaimPrefix)
	defer iterator.Close()

	var out []types.ClaimRecord
	for ; iterator.Valid(); iterator.Next() {
		var rec types.ClaimRecord
		k.cdc.MustUnmarshalBinaryBare(iterator.Value(), &rec)
		out = append(out, rec)
	}
	return out
}

func (k Keeper) SetUserClaimedPlan(ctx sdk.Context, user sdk.AccAddress, planID uint64) {
	ctx.KVStore(k.storeKey).Set(types.UserClaimedPlanKey(user, planID), []byte{1})
}

func (k Keeper) SetAllClaimedPlan(ctx sdk.Context, planID uint64) {
	ctx.KVStore(k.storeKey).Set(types.AllClaimedPlanKey(planID), []byte{1})
}

// GetAllClaimedPlans returns every plan that has had at least one
// beneficiary claim paid out, resolving each through the main Plan store
// rather than returning bare IDs.
func (k Keeper) GetAllClaimedPlans(ctx sdk.Context) []types.InheritancePlan {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.AllClaimedPlansPrefix)
	defer iterator.Close()

	var plans []types.InheritancePlan
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		planID := binary.BigEndian.Uint64(key[len(key)-8:])
		if plan, found := k.GetPlan(ctx, planID); found {
			plans = append(plans, plan)
		}
	}
	return plans
}

// --- KYC ---

func (k Keeper) GetKyc(ctx sdk.Context, user sdk.AccAddress) (types.KycStatus, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KycKey(user))
	if bz == nil {
		return types.KycStatus{}, false
	}
	var status types.KycStatus
	k.cdc.MustUnmarshalBinaryBare(bz, &status)
	return status, true
}

func (k Keeper) SetKyc(ctx sdk.Context, status types.KycStatus) {
	addr, err := sdk.AccAddressFromBech32(status.User)
	if err != nil {
		return
	}
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(&status)
	store.Set(types.KycKey(addr), bz)
}

func (k Keeper) GetAllKyc(ctx sdk.Context) []types.KycStatus {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.KycPrefix)
	defer iterator.Close()

	var out []types.KycStatus
	for ; iterator.Valid(); iterator.Next() {
		var status types.KycStatus
		k.cdc.MustUnmarshalBinaryBare(iterator.Value(), &status)
		out = append(out, status)
	}
	return out
}
