package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "inheritance"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_inheritance"
)

// KVStore keys. Instance scope (hot, small): AdminKey, PlanCounterKey.
// Persistent scope (cold, keyed): everything prefixed below.
var (
	// AdminKey stores the one-shot admin principal and version (instance scope).
	AdminKey = []byte{0x00}

	// PlanCounterKey tracks the next plan ID (instance scope).
	PlanCounterKey = []byte{0x01}

	// InheritancePlanPrefix: 0x02 | PlanID(8) -> InheritancePlan
	InheritancePlanPrefix = []byte{0x02}

	// ClaimPrefix: 0x03 | claim_key(32) -> ClaimRecord. The claim key itself is
	// sha256(plan_id_be || hashed_email), giving idempotency for free.
	ClaimPrefix = []byte{0x03}

	// OwnerPlanIndexPrefix: 0x04 | owner | PlanID(8) -> []byte{1}
	OwnerPlanIndexPrefix = []byte{0x04}

	// BeneficiaryPlanIndexPrefix: 0x05 | beneficiary | PlanID(8) -> []byte{1}
	BeneficiaryPlanIndexPrefix = []byte{0x05}

	// KycPrefix: 0x06 | user -> KycStatus
	KycPrefix = []byte{0x06}

	// TriggerPrefix: 0x07 | PlanID(8) -> InheritanceTriggerInfo
	TriggerPrefix = []byte{0x07}

	// DeactivatedPlansPrefix: 0x08 | PlanID(8) -> []byte{1}
	DeactivatedPlansPrefix = []byte{0x08}

	// UserClaimedPlansPrefix: 0x09 | user | PlanID(8) -> []byte{1}
	UserClaimedPlansPrefix = []byte{0x09}

	// AllClaimedPlansPrefix: 0x0A | PlanID(8) -> []byte{1}
	AllClaimedPlansPrefix = []byte{0x0A}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

func PlanKey(planID uint64) []byte {
	return append(InheritancePlanPrefix, uint64Bytes(planID)...)
}

func ClaimRecordKey(claimKey []byte) []byte {
	return append(ClaimPrefix, claimKey...)
}

func OwnerPlanIndexKey(owner sdk.AccAddress, planID uint64) []byte {
	key := append(OwnerPlanIndexPrefix, owner.Bytes()...)
	return append(key, uint64Bytes(planID)...)
}

func OwnerPlanIndexPrefixForAddress(owner sdk.AccAddress) []byte {
	return append(OwnerPlanIndexPrefix, owner.Bytes()...)
}

func BeneficiaryPlanIndexKey(beneficiary sdk.AccAddress, planID uint64) []byte {
	key := append(BeneficiaryPlanIndexPrefix, beneficiary.Bytes()...)
	return append(key, uint64Bytes(planID)...)
}

func BeneficiaryPlanIndexPrefixForAddress(beneficiary sdk.AccAddress) []byte {
	return append(BeneficiaryPlanIndexPrefix, beneficiary.Bytes()...)
}

func KycKey(user sdk.AccAddress) []byte {
	return append(KycPrefix, user.Bytes()...)
}

func TriggerKey(planID uint64) []byte {
	return append(TriggerPrefix, uint64Bytes(planID)...)
}

func DeactivatedPlanKey(planID uint64) []byte {
	return append(DeactivatedPlansPrefix, uint64Bytes(planID)...)
}

func UserClaimedPlanKey(user sdk.AccAddress, planID uint64) []byte {
	key := append(UserClaimedPlansPrefix, user.Bytes()...)
	return append(key, uint64Bytes(planID)...)
}

func UserClaimedPlansPrefixForAddress(user sdk.AccAddress) []byte {
	return append(UserClaimedPlansPrefix, user.Bytes()...)
}

func AllClaimedPlanKey(planID uint64) []byte {
	return append(AllClaimedPlansPrefix, uint64Bytes(planID)...)
}
