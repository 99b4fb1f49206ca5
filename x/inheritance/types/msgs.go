package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message route constants.
const (
	TypeMsgInitializeAdmin     = "initialize_admin"
	TypeMsgCreatePlan          = "create_inheritance_plan"
	TypeMsgAddBeneficiary      = "add_beneficiary"
	TypeMsgRemoveBeneficiary   = "remove_beneficiary"
	TypeMsgDeposit             = "deposit"
	TypeMsgWithdraw            = "withdraw"
	TypeMsgSetLendable         = "set_lendable"
	TypeMsgDeactivatePlan      = "deactivate_inheritance_plan"
	TypeMsgTriggerInheritance  = "trigger_inheritance"
	TypeMsgRecallLoan          = "recall_loan"
	TypeMsgLiquidationFallback = "liquidation_fallback"
	TypeMsgClaimPlan           = "claim_inheritance_plan"
	TypeMsgSubmitKyc           = "submit_kyc"
	TypeMsgApproveKyc          = "approve_kyc"
	TypeMsgRejectKyc           = "reject_kyc"
	TypeMsgUpgrade             = "upgrade"
	TypeMsgMigrate             = "migrate"
)

// BeneficiaryInput is the caller-supplied plaintext for a new beneficiary
// slot; the chain hashes Name/Email/ClaimCode into the stored digests.
type BeneficiaryInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ClaimCode    uint64 `json:"claim_code"`
	BankAccount  []byte `json:"bank_account"`
	AllocationBp uint64 `json:"allocation_bp"`
}

func (b BeneficiaryInput) ValidateBasic() error {
	if b.Name == "" || b.Email == "" {
		return ErrMissingRequiredField
	}
	if b.ClaimCode > MaxClaimCode {
		return ErrInvalidClaimCodeRange
	}
	if b.AllocationBp == 0 {
		return ErrInvalidAllocation
	}
	return nil
}

func reqAddr(field, s string) (sdk.AccAddress, error) {
	if s == "" {
		return nil, fmt.Errorf("%s cannot be empty", field)
	}
	addr, err := sdk.AccAddressFromBech32(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s address: %w", field, err)
	}
	return addr, nil
}

// MsgInitializeAdmin — one-shot admin bootstrap.
type MsgInitializeAdmin struct {
	Admin string `json:"admin"`
}

func (m MsgInitializeAdmin) ValidateBasic() error {
	_, err := reqAddr("admin", m.Admin)
	return err
}
func (m MsgInitializeAdmin) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgCreatePlan — create_inheritance_plan.
type MsgCreatePlan struct {
	Owner              string             `json:"owner"`
	PlanName           string             `json:"plan_name"`
	Description        string             `json:"description"`
	TotalAmount        uint64             `json:"total_amount"`
	DistributionMethod DistributionMethod `json:"distribution_method"`
	Beneficiaries      []BeneficiaryInput `json:"beneficiaries"`
	IsLendable         bool               `json:"is_lendable"`
}

func (m MsgCreatePlan) ValidateBasic() error {
	if _, err := reqAddr("owner", m.Owner); err != nil {
		return err
	}
	if m.PlanName == "" {
		return ErrMissingRequiredField
	}
	if len(m.Description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if m.TotalAmount == 0 {
		return ErrInvalidTotalAmount
	}
	if !m.DistributionMethod.Valid() {
		return ErrInvalidBeneficiaryData
	}
	if len(m.Beneficiaries) == 0 || len(m.Beneficiaries) > MaxBeneficiaries {
		return ErrTooManyBeneficiaries
	}
	var total uint64
	for _, b := range m.Beneficiaries {
		if err := b.ValidateBasic(); err != nil {
			return err
		}
		total += b.AllocationBp
	}
	if total != MaxAllocationBp {
		return ErrAllocationMismatch
	}
	return nil
}
func (m MsgCreatePlan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgAddBeneficiary — add_beneficiary.
type MsgAddBeneficiary struct {
	Owner  string           `json:"owner"`
	PlanID uint64           `json:"plan_id"`
	Input  BeneficiaryInput `json:"input"`
}

func (m MsgAddBeneficiary) ValidateBasic() error {
	if _, err := reqAddr("owner", m.Owner); err != nil {
		return err
	}
	if m.PlanID == 0 {
		return ErrPlanNotFound
	}
	return m.Input.ValidateBasic()
}
func (m MsgAddBeneficiary) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgRemoveBeneficiary — remove_beneficiary, O(1) swap-with-last by index.
type MsgRemoveBeneficiary struct {
	Owner  string `json:"owner"`
	PlanID uint64 `json:"plan_id"`
	Index  uint32 `json:"index"`
}

func (m MsgRemoveBeneficiary) ValidateBasic() error {
	if _, err := reqAddr("owner", m.Owner); err != nil {
		return err
	}
	if m.PlanID == 0 {
		return ErrPlanNotFound
	}
	return nil
}
func (m MsgRemoveBeneficiary) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgDeposit — deposit.
type MsgDeposit struct {
	Owner  string `json:"owner"`
	PlanID uint64 `json:"plan_id"`
	Amount uint64 `json:"amount"`
}

func (m MsgDeposit) ValidateBasic() error {
	if _, err := reqAddr("owner", m.Owner); err != nil {
		return err
	}
	if m.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (m MsgDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgWithdraw — withdraw.
type MsgWithdraw struct {
	Owner  string `json:"owner"`
	PlanID uint64 `json:"plan_id"`
	Amount uint64 `json:"amount"`
}

func (m MsgWithdraw) ValidateBasic() error {
	if _, err := reqAddr("owner", m.Owner); err != nil {
		return err
	}
	if m.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (m MsgWithdraw) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgSetLendable — set_lendable, pure bit flip.
type MsgSetLendable struct {
	Owner  string `json:"owner"`
	PlanID uint64 `json:"plan_id"`
	Flag   bool   `json:"flag"`
}

func (m MsgSetLendable) ValidateBasic() error {
	_, err := reqAddr("owner", m.Owner)
	return err
}
func (m MsgSetLendable) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgDeactivatePlan — deactivate_inheritance_plan.
type MsgDeactivatePlan struct {
	Owner  string `json:"owner"`
	PlanID uint64 `json:"plan_id"`
}

func (m MsgDeactivatePlan) ValidateBasic() error {
	_, err := reqAddr("owner", m.Owner)
	return err
}
func (m MsgDeactivatePlan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{addr}
}

// MsgTriggerInheritance — trigger_inheritance, admin-auth.
type MsgTriggerInheritance struct {
	Admin  string `json:"admin"`
	PlanID uint64 `json:"plan_id"`
}

func (m MsgTriggerInheritance) ValidateBasic() error {
	_, err := reqAddr("admin", m.Admin)
	return err
}
func (m MsgTriggerInheritance) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgRecallLoan — recall_loan, admin-auth, accounting only.
type MsgRecallLoan struct {
	Admin  string `json:"admin"`
	PlanID uint64 `json:"plan_id"`
	Amount uint64 `json:"amount"`
}

func (m MsgRecallLoan) ValidateBasic() error {
	if _, err := reqAddr("admin", m.Admin); err != nil {
		return err
	}
	if m.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (m MsgRecallLoan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgLiquidationFallback — liquidation_fallback, admin-auth.
type MsgLiquidationFallback struct {
	Admin  string `json:"admin"`
	PlanID uint64 `json:"plan_id"`
}

func (m MsgLiquidationFallback) ValidateBasic() error {
	_, err := reqAddr("admin", m.Admin)
	return err
}
func (m MsgLiquidationFallback) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgClaimPlan — claim_inheritance_plan. Unauthenticated: the claim code is
// the secret. Claimer signs only to pay gas; it carries no authorization
// weight over the claim itself.
type MsgClaimPlan struct {
	Claimer   string `json:"claimer"`
	PlanID    uint64 `json:"plan_id"`
	Email     string `json:"email"`
	ClaimCode uint64 `json:"claim_code"`
}

func (m MsgClaimPlan) ValidateBasic() error {
	if _, err := reqAddr("claimer", m.Claimer); err != nil {
		return err
	}
	if m.Email == "" {
		return ErrMissingRequiredField
	}
	if m.ClaimCode > MaxClaimCode {
		return ErrInvalidClaimCodeRange
	}
	return nil
}
func (m MsgClaimPlan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Claimer)
	return []sdk.AccAddress{addr}
}

// MsgSubmitKyc — submit_kyc, user-auth, idempotent while !approved.
type MsgSubmitKyc struct {
	User string `json:"user"`
}

func (m MsgSubmitKyc) ValidateBasic() error {
	_, err := reqAddr("user", m.User)
	return err
}
func (m MsgSubmitKyc) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.User)
	return []sdk.AccAddress{addr}
}

// MsgApproveKyc — approve_kyc, admin-auth.
type MsgApproveKyc struct {
	Admin string `json:"admin"`
	User  string `json:"user"`
}

func (m MsgApproveKyc) ValidateBasic() error {
	if _, err := reqAddr("admin", m.Admin); err != nil {
		return err
	}
	_, err := reqAddr("user", m.User)
	return err
}
func (m MsgApproveKyc) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgRejectKyc — reject_kyc, admin-auth.
type MsgRejectKyc struct {
	Admin string `json:"admin"`
	User  string `json:"user"`
}

func (m MsgRejectKyc) ValidateBasic() error {
	if _, err := reqAddr("admin", m.Admin); err != nil {
		return err
	}
	_, err := reqAddr("user", m.User)
	return err
}
func (m MsgRejectKyc) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgUpgrade — upgrade, admin-auth; bumps stored version and swaps code
// atomically, preserving all storage.
type MsgUpgrade struct {
	Admin    string `json:"admin"`
	CodeHash []byte `json:"code_hash"`
}

func (m MsgUpgrade) ValidateBasic() error {
	if _, err := reqAddr("admin", m.Admin); err != nil {
		return err
	}
	if len(m.CodeHash) == 0 {
		return ErrMissingRequiredField
	}
	return nil
}
func (m MsgUpgrade) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// MsgMigrate — migrate, admin-auth, version-gated.
type MsgMigrate struct {
	Admin string `json:"admin"`
}

func (m MsgMigrate) ValidateBasic() error {
	_, err := reqAddr("admin", m.Admin)
	return err
}
func (m MsgMigrate) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{addr}
}

// Response types.
type (
	MsgInitializeAdminResponse   struct{}
	MsgCreatePlanResponse        struct{ PlanID uint64 `json:"plan_id"` }
	MsgAddBeneficiaryResponse    struct{}
	MsgRemoveBeneficiaryResponse struct{}
	MsgDepositResponse           struct{}
	MsgWithdrawResponse          struct{}
	MsgSetLendableResponse       struct{}
	MsgDeactivatePlanResponse    struct{}
	MsgTriggerInheritanceResponse struct{}
	MsgRecallLoanResponse        struct{}
	MsgLiquidationFallbackResponse struct {
		UnrecoverableAmount uint64 `json:"unrecoverable_amount"`
	}
	MsgClaimPlanResponse struct {
		Payout uint64 `json:"payout"`
	}
	MsgSubmitKycResponse  struct{}
	MsgApproveKycResponse struct{}
	MsgRejectKycResponse  struct{}
	MsgUpgradeResponse    struct{}
	MsgMigrateResponse    struct{}
)

// ProtoMessage stubs. This module uses the legacy amino codec for message
// serialization (see codec.go); proto-based registration is not used, so
// every Msg/response type only needs to satisfy proto.Message's marker
// methods, not generated Marshal/Unmarshal.
func (m *MsgInitializeAdmin) ProtoMessage()  {}
func (m *MsgInitializeAdmin) Reset()         { *m = MsgInitializeAdmin{} }
func (m *MsgInitializeAdmin) String() string { return fmt.Sprintf("MsgInitializeAdmin{%s}", m.Admin) }

func (m *MsgCreatePlan) ProtoMessage()  {}
func (m *MsgCreatePlan) Reset()         { *m = MsgCreatePlan{} }
func (m *MsgCreatePlan) String() string { return fmt.Sprintf("MsgCreatePlan{%s,%s}", m.Owner, m.PlanName) }

func (m *MsgAddBeneficiary) ProtoMessage()  {}
func (m *MsgAddBeneficiary) Reset()         { *m = MsgAddBeneficiary{} }
func (m *MsgAddBeneficiary) String() string { return fmt.Sprintf("MsgAddBeneficiary{plan=%d}", m.PlanID) }

func (m *MsgRemoveBeneficiary) ProtoMessage()  {}
func (m *MsgRemoveBeneficiary) Reset()         { *m = MsgRemoveBeneficiary{} }
func (m *MsgRemoveBeneficiary) String() string {
	return fmt.Sprintf("MsgRemoveBeneficiary{plan=%d,index=%d}", m.PlanID, m.Index)
}

func (m *MsgDeposit) ProtoMessage()  {}
func (m *MsgDeposit) Reset()         { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string { return fmt.Sprintf("MsgDeposit{plan=%d,amount=%d}", m.PlanID, m.Amount) }

func (m *MsgWithdraw) ProtoMessage()  {}
func (m *MsgWithdraw) Reset()         { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string { return fmt.Sprintf("MsgWithdraw{plan=%d,amount=%d}", m.PlanID, m.Amount) }

func (m *MsgSetLendable) ProtoMessage()  {}
func (m *MsgSetLendable) Reset()         { *m = MsgSetLendable{} }
func (m *MsgSetLendable) String() string { return fmt.Sprintf("MsgSetLendable{plan=%d,flag=%t}", m.PlanID, m.Flag) }

func (m *MsgDeactivatePlan) ProtoMessage()  {}
func (m *MsgDeactivatePlan) Reset()         { *m = MsgDeactivatePlan{} }
func (m *MsgDeactivatePlan) String() string { return fmt.Sprintf("MsgDeactivatePlan{plan=%d}", m.PlanID) }

func (m *MsgTriggerInheritance) ProtoMessage()  {}
func (m *MsgTriggerInheritance) Reset()         { *m = MsgTriggerInheritance{} }
func (m *MsgTriggerInheritance) String() string { return fmt.Sprintf("MsgTriggerInheritance{plan=%d}", m.PlanID) }

func (m *MsgRecallLoan) ProtoMessage()  {}
func (m *MsgRecallLoan) Reset()         { *m = MsgRecallLoan{} }
func (m *MsgRecallLoan) String() string { return fmt.Sprintf("MsgRecallLoan{plan=%d,amount=%d}", m.PlanID, m.Amount) }

func (m *MsgLiquidationFallback) ProtoMessage()  {}
func (m *MsgLiquidationFallback) Reset()         { *m = MsgLiquidationFallback{} }
func (m *MsgLiquidationFallback) String() string {
	return fmt.Sprintf("MsgLiquidationFallback{plan=%d}", m.PlanID)
}

func (m *MsgClaimPlan) ProtoMessage()  {}
func (m *MsgClaimPlan) Reset()         { *m = MsgClaimPlan{} }
func (m *MsgClaimPlan) String() string { return fmt.Sprintf("MsgClaimPlan{plan=%d}", m.PlanID) }

func (m *MsgSubmitKyc) ProtoMessage()  {}
func (m *MsgSubmitKyc) Reset()         { *m = MsgSubmitKyc{} }
func (m *MsgSubmitKyc) String() string { return fmt.Sprintf("MsgSubmitKyc{%s}", m.User) }

func (m *MsgApproveKyc) ProtoMessage()  {}
func (m *MsgApproveKyc) Reset()         { *m = MsgApproveKyc{} }
func (m *MsgApproveKyc) String() string { return fmt.Sprintf("MsgApproveKyc{%s}", m.User) }

func (m *MsgRejectKyc) ProtoMessage()  {}
func (m *MsgRejectKyc) Reset()         { *m = MsgRejectKyc{} }
func (m *MsgRejectKyc) String() string { return fmt.Sprintf("MsgRejectKyc{%s}", m.User) }

func (m *MsgUpgrade) ProtoMessage()  {}
func (m *MsgUpgrade) Reset()         { *m = MsgUpgrade{} }
func (m *MsgUpgrade) String() string { return "MsgUpgrade{}" }

func (m *MsgMigrate) ProtoMessage()  {}
func (m *MsgMigrate) Reset()         { *m = MsgMigrate{} }
func (m *MsgMigrate) String() string { return "MsgMigrate{}" }

func (m *MsgInitializeAdminResponse) ProtoMessage()  {}
func (m *MsgInitializeAdminResponse) Reset()         { *m = MsgInitializeAdminResponse{} }
func (m *MsgInitializeAdminResponse) String() string { return "MsgInitializeAdminResponse{}" }
func (m *MsgCreatePlanResponse) ProtoMessage()        {}
func (m *MsgCreatePlanResponse) Reset()               { *m = MsgCreatePlanResponse{} }
func (m *MsgCreatePlanResponse) String() string       { return fmt.Sprintf("MsgCreatePlanResponse{%d}", m.PlanID) }
func (m *MsgAddBeneficiaryResponse) ProtoMessage()    {}
func (m *MsgAddBeneficiaryResponse) Reset()           { *m = MsgAddBeneficiaryResponse{} }
func (m *MsgAddBeneficiaryResponse) String() string   { return "MsgAddBeneficiaryResponse{}" }
func (m *MsgRemoveBeneficiaryResponse) ProtoMessage() {}
func (m *MsgRemoveBeneficiaryResponse) Reset()        { *m = MsgRemoveBeneficiaryResponse{} }
func (m *MsgRemoveBeneficiaryResponse) String() string { return "MsgRemoveBeneficiaryResponse{}" }
func (m *MsgDepositResponse) ProtoMessage()           {}
func (m *MsgDepositResponse) Reset()                  { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string          { return "MsgDepositResponse{}" }
func (m *MsgWithdrawResponse) ProtoMessage()          {}
func (m *MsgWithdrawResponse) Reset()                 { *m = MsgWithdrawResponse{} }
func (m *MsgWithdrawResponse) String() string         { return "MsgWithdrawResponse{}" }
func (m *MsgSetLendableResponse) ProtoMessage()       {}
func (m *MsgSetLendableResponse) Reset()              { *m = MsgSetLendableResponse{} }
func (m *MsgSetLendableResponse) String() string      { return "MsgSetLendableResponse{}" }
func (m *MsgDeactivatePlanResponse) ProtoMessage()    {}
func (m *MsgDeactivatePlanResponse) Reset()           { *m = MsgDeactivatePlanResponse{} }
func (m *MsgDeactivatePlanResponse) String() string   { return "MsgDeactivatePlanResponse{}" }
func (m *MsgTriggerInheritanceResponse) ProtoMessage() {}
func (m *MsgTriggerInheritanceResponse) Reset()        { *m = MsgTriggerInheritanceResponse{} }
func (m *MsgTriggerInheritanceResponse) String() string { return "MsgTriggerInheritanceResponse{}" }
func (m *MsgRecallLoanResponse) ProtoMessage()         {}
func (m *MsgRecallLoanResponse) Reset()                { *m = MsgRecallLoanResponse{} }
func (m *MsgRecallLoanResponse) String() string        { return "MsgRecallLoanResponse{}" }
func (m *MsgLiquidationFallbackResponse) ProtoMessage() {}
func (m *MsgLiquidationFallbackResponse) Reset()        { *m = MsgLiquidationFallbackResponse{} }
func (m *MsgLiquidationFallbackResponse) String() string {
	return fmt.Sprintf("MsgLiquidationFallbackResponse{%d}", m.UnrecoverableAmount)
}
func (m *MsgClaimPlanResponse) ProtoMessage() {}
func (m *MsgClaimPlanResponse) Reset()        { *m = MsgClaimPlanResponse{} }
func (m *MsgClaimPlanResponse) String() string {
	return fmt.Sprintf("MsgClaimPlanResponse{%d}", m.Payout)
}
func (m *MsgSubmitKycResponse) ProtoMessage()  {}
func (m *MsgSubmitKycResponse) Reset()         { *m = MsgSubmitKycResponse{} }
func (m *MsgSubmitKycResponse) String() string { return "MsgSubmitKycResponse{}" }
func (m *MsgApproveKycResponse) ProtoMessage() {}
func (m *MsgApproveKycResponse) Reset()        { *m = MsgApproveKycResponse{} }
func (m *MsgApproveKycResponse) String() string { return "MsgApproveKycResponse{}" }
func (m *MsgRejectKycResponse) ProtoMessage()  {}
func (m *MsgRejectKycResponse) Reset()         { *m = MsgRejectKycResponse{} }
func (m *MsgRejectKycResponse) String() string { return "MsgRejectKycResponse{}" }
func (m *MsgUpgradeResponse) ProtoMessage()    {}
func (m *MsgUpgradeResponse) Reset()           { *m = MsgUpgradeResponse{} }
func (m *MsgUpgradeResponse) String() string   { return "MsgUpgradeResponse{}" }
func (m *MsgMigrateResponse) ProtoMessage()    {}
func (m *MsgMigrateResponse) Reset()           { *m = MsgMigrateResponse{} }
func (m *MsgMigrateResponse) String() string   { return "MsgMigrateResponse{}" }
