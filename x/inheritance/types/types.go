package types

import (
	"fmt"
)

// DistributionMethod controls the time gate a claim must clear after the
// plan's inheritance has been triggered. A claim on an untriggered plan is
// always rejected, whatever the method.
type DistributionMethod int32

const (
	DistributionLumpSum DistributionMethod = iota
	DistributionMonthly
	DistributionQuarterly
	DistributionYearly
)

func (d DistributionMethod) String() string {
	switch d {
	case DistributionLumpSum:
		return "lump_sum"
	case DistributionMonthly:
		return "monthly"
	case DistributionQuarterly:
		return "quarterly"
	case DistributionYearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// TimeGateSeconds returns the minimum elapsed time since the trigger
// (TriggeredAt) before a claim is permitted. The gate is not measured from
// plan creation.
func (d DistributionMethod) TimeGateSeconds() int64 {
	switch d {
	case DistributionMonthly:
		return 30 * 86400
	case DistributionQuarterly:
		return 90 * 86400
	case DistributionYearly:
		return 365 * 86400
	default:
		return 0
	}
}

func (d DistributionMethod) Valid() bool {
	return d >= DistributionLumpSum && d <= DistributionYearly
}

// AssetType is a fixed symbol: this vault custodies exactly one denomination.
type AssetType int32

const (
	AssetTypeStablecoin AssetType = iota
)

func (a AssetType) Valid() bool {
	return a == AssetTypeStablecoin
}

const (
	// CreationFeeBp is the basis-point fee taken from total_amount at plan creation.
	CreationFeeBp = 200
	// MaxBeneficiaries bounds the beneficiaries slice of a single plan.
	MaxBeneficiaries = 10
	// MaxDescriptionLen bounds plan.Description.
	MaxDescriptionLen = 500
	// MaxAllocationBp is 100% in basis points.
	MaxAllocationBp = 10000
	// MaxClaimCode bounds the numeric claim code accepted by add_beneficiary.
	MaxClaimCode = 999999
	// ContractVersion is the compiled migration version gate.
	ContractVersion = 1
)

// Beneficiary is owned by its plan; ordered by insertion with O(1)
// swap-with-last removal. Digests are sha256 over the actual UTF-8 bytes of
// the source field (name, email, claim code) -- never over a character index.
type Beneficiary struct {
	NameHash      []byte `json:"name_hash"`
	EmailHash     []byte `json:"email_hash"`
	ClaimCodeHash []byte `json:"claim_code_hash"`
	BankAccount   []byte `json:"bank_account"`
	AllocationBp  uint64 `json:"allocation_bp"`
}

func (b Beneficiary) Validate() error {
	if len(b.NameHash) != 32 || len(b.EmailHash) != 32 || len(b.ClaimCodeHash) != 32 {
		return fmt.Errorf("beneficiary digests must be 32 bytes")
	}
	if b.AllocationBp == 0 {
		return ErrInvalidAllocation
	}
	return nil
}

// InheritancePlan is created when create_inheritance_plan succeeds.
type InheritancePlan struct {
	PlanID             uint64             `json:"plan_id"`
	Owner              string             `json:"owner"`
	PlanName           string             `json:"plan_name"`
	Description        string             `json:"description"`
	AssetType          AssetType          `json:"asset_type"`
	TotalAmount        uint64             `json:"total_amount"`
	DistributionMethod DistributionMethod `json:"distribution_method"`
	Beneficiaries      []Beneficiary      `json:"beneficiaries"`
	TotalAllocationBp  uint64             `json:"total_allocation_bp"`
	CreatedAt          int64              `json:"created_at"`
	IsActive           bool               `json:"is_active"`
	IsLendable         bool               `json:"is_lendable"`
	TotalLoaned        uint64             `json:"total_loaned"`
}

func (p InheritancePlan) AvailableLiquidity() uint64 {
	if p.TotalLoaned > p.TotalAmount {
		return 0
	}
	return p.TotalAmount - p.TotalLoaned
}

// ClaimRecord is created once per (plan_id, hashed_email) pair.
type ClaimRecord struct {
	PlanID      uint64 `json:"plan_id"`
	HashedEmail []byte `json:"hashed_email"`
	Payout      uint64 `json:"payout"`
	ClaimedAt   int64  `json:"claimed_at"`
}

// KycStatus is keyed by user principal. Lifecycle: None -> submitted ->
// (approved xor rejected).
type KycStatus struct {
	User        string `json:"user"`
	Submitted   bool   `json:"submitted"`
	Approved    bool   `json:"approved"`
	Rejected    bool   `json:"rejected"`
	SubmittedAt int64  `json:"submitted_at"`
	ApprovedAt  int64  `json:"approved_at"`
	RejectedAt  int64  `json:"rejected_at"`
}

// InheritanceTriggerInfo is created once per plan by trigger_inheritance.
type InheritanceTriggerInfo struct {
	PlanID               uint64 `json:"plan_id"`
	TriggeredAt          int64  `json:"triggered_at"`
	LoanFreezeActive     bool   `json:"loan_freeze_active"`
	RecallAttempted      bool   `json:"recall_attempted"`
	LiquidationTriggered bool   `json:"liquidation_triggered"`
	OriginalLoaned       uint64 `json:"original_loaned"`
	RecalledAmount       uint64 `json:"recalled_amount"`
	SettledAmount        uint64 `json:"settled_amount"`
}

// AdminState is the instance-scope record holding the one-shot admin
// principal plus the compiled-version gate used by migrate().
type AdminState struct {
	Admin   string `json:"admin"`
	Version uint64 `json:"version"`
}
