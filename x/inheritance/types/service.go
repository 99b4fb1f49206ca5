package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer defines the Msg service.
type MsgServer interface {
	InitializeAdmin(goCtx context.Context, msg *MsgInitializeAdmin) (*MsgInitializeAdminResponse, error)
	CreatePlan(goCtx context.Context, msg *MsgCreatePlan) (*MsgCreatePlanResponse, error)
	AddBeneficiary(goCtx context.Context, msg *MsgAddBeneficiary) (*MsgAddBeneficiaryResponse, error)
	RemoveBeneficiary(goCtx context.Context, msg *MsgRemoveBeneficiary) (*MsgRemoveBeneficiaryResponse, error)
	Deposit(goCtx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(goCtx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	SetLendable(goCtx context.Context, msg *MsgSetLendable) (*MsgSetLendableResponse, error)
	DeactivatePlan(goCtx context.Context, msg *MsgDeactivatePlan) (*MsgDeactivatePlanResponse, error)
	TriggerInheritance(goCtx context.Context, msg *MsgTriggerInheritance) (*MsgTriggerInheritanceResponse, error)
	RecallLoan(goCtx context.Context, msg *MsgRecallLoan) (*MsgRecallLoanResponse, error)
	LiquidationFallback(goCtx context.Context, msg *MsgLiquidationFallback) (*MsgLiquidationFallbackResponse, error)
	ClaimPlan(goCtx context.Context, msg *MsgClaimPlan) (*MsgClaimPlanResponse, error)
	SubmitKyc(goCtx context.Context, msg *MsgSubmitKyc) (*MsgSubmitKycResponse, error)
	ApproveKyc(goCtx context.Context, msg *MsgApproveKyc) (*MsgApproveKycResponse, error)
	RejectKyc(goCtx context.Context, msg *MsgRejectKyc) (*MsgRejectKycResponse, error)
	Upgrade(goCtx context.Context, msg *MsgUpgrade) (*MsgUpgradeResponse, error)
	Migrate(goCtx context.Context, msg *MsgMigrate) (*MsgMigrateResponse, error)
}

// QueryServer defines the Query service.
type QueryServer interface {
	Plan(goCtx context.Context, req *QueryPlanRequest) (*QueryPlanResponse, error)
	Beneficiaries(goCtx context.Context, req *QueryBeneficiariesRequest) (*QueryBeneficiariesResponse, error)
	PlansByOwner(goCtx context.Context, req *QueryPlansByOwnerRequest) (*QueryPlansByOwnerResponse, error)
	PlansByBeneficiary(goCtx context.Context, req *QueryPlansByBeneficiaryRequest) (*QueryPlansByBeneficiaryResponse, error)
	Trigger(goCtx context.Context, req *QueryTriggerRequest) (*QueryTriggerResponse, error)
	KycStatus(goCtx context.Context, req *QueryKycStatusRequest) (*QueryKycStatusResponse, error)
	ContractVersion(goCtx context.Context, req *QueryContractVersionRequest) (*QueryContractVersionResponse, error)
	AllClaims(goCtx context.Context, req *QueryAllClaimsRequest) (*QueryAllClaimsResponse, error)
}

// Query request and response types.
type QueryPlanRequest struct {
	PlanID uint64 `json:"plan_id"`
}

type QueryPlanResponse struct {
	Plan InheritancePlan `json:"plan"`
}

type QueryBeneficiariesRequest struct {
	PlanID uint64 `json:"plan_id"`
}

type QueryBeneficiariesResponse struct {
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}

type QueryPlansByOwnerRequest struct {
	Owner string `json:"owner"`
}

type QueryPlansByOwnerResponse struct {
	Plans []InheritancePlan `json:"plans"`
}

type QueryPlansByBeneficiaryRequest struct {
	Beneficiary string `json:"beneficiary"`
}

type QueryPlansByBeneficiaryResponse struct {
	Plans []InheritancePlan `json:"plans"`
}

type QueryTriggerRequest struct {
	PlanID uint64 `json:"plan_id"`
}

type QueryTriggerResponse struct {
	Trigger InheritanceTriggerInfo `json:"trigger"`
}

type QueryKycStatusRequest struct {
	User string `json:"user"`
}

type QueryKycStatusResponse struct {
	Status KycStatus `json:"status"`
}

type QueryContractVersionRequest struct{}

type QueryContractVersionResponse struct {
	Version uint64 `json:"version"`
}

type QueryAllClaimsRequest struct{}

type QueryAllClaimsResponse struct {
	Plans []InheritancePlan `json:"plans"`
}

// ProtoMessage implementations. See the note in msgs.go on the legacy amino
// codec — these are marker stubs, not generated code.
func (m *QueryPlanRequest) ProtoMessage()               {}
func (m *QueryPlanRequest) Reset()                      { *m = QueryPlanRequest{} }
func (m *QueryPlanRequest) String() string              { return "QueryPlanRequest{}" }
func (m *QueryPlanResponse) ProtoMessage()              {}
func (m *QueryPlanResponse) Reset()                     { *m = QueryPlanResponse{} }
func (m *QueryPlanResponse) String() string             { return "QueryPlanResponse{}" }
func (m *QueryBeneficiariesRequest) ProtoMessage()      {}
func (m *QueryBeneficiariesRequest) Reset()             { *m = QueryBeneficiariesRequest{} }
func (m *QueryBeneficiariesRequest) String() string     { return "QueryBeneficiariesRequest{}" }
func (m *QueryBeneficiariesResponse) ProtoMessage()     {}
func (m *QueryBeneficiariesResponse) Reset()            { *m = QueryBeneficiariesResponse{} }
func (m *QueryBeneficiariesResponse) String() string    { return "QueryBeneficiariesResponse{}" }
func (m *QueryPlansByOwnerRequest) ProtoMessage()       {}
func (m *QueryPlansByOwnerRequest) Reset()              { *m = QueryPlansByOwnerRequest{} }
func (m *QueryPlansByOwnerRequest) String() string      { return "QueryPlansByOwnerRequest{}" }
func (m *QueryPlansByOwnerResponse) ProtoMessage()      {}
func (m *QueryPlansByOwnerResponse) Reset()             { *m = QueryPlansByOwnerResponse{} }
func (m *QueryPlansByOwnerResponse) String() string     { return "QueryPlansByOwnerResponse{}" }
func (m *QueryPlansByBeneficiaryRequest) ProtoMessage()  {}
func (m *QueryPlansByBeneficiaryRequest) Reset()         { *m = QueryPlansByBeneficiaryRequest{} }
func (m *QueryPlansByBeneficiaryRequest) String() string { return "QueryPlansByBeneficiaryRequest{}" }
func (m *QueryPlansByBeneficiaryResponse) ProtoMessage() {}
func (m *QueryPlansByBeneficiaryResponse) Reset()        { *m = QueryPlansByBeneficiaryResponse{} }
func (m *QueryPlansByBeneficiaryResponse) String() string {
	return "QueryPlansByBeneficiaryResponse{}"
}
func (m *QueryTriggerRequest) ProtoMessage()           {}
func (m *QueryTriggerRequest) Reset()                  { *m = QueryTriggerRequest{} }
func (m *QueryTriggerRequest) String() string          { return "QueryTriggerRequest{}" }
func (m *QueryTriggerResponse) ProtoMessage()          {}
func (m *QueryTriggerResponse) Reset()                 { *m = QueryTriggerResponse{} }
func (m *QueryTriggerResponse) String() string         { return "QueryTriggerResponse{}" }
func (m *QueryKycStatusRequest) ProtoMessage()         {}
func (m *QueryKycStatusRequest) Reset()                { *m = QueryKycStatusRequest{} }
func (m *QueryKycStatusRequest) String() string        { return "QueryKycStatusRequest{}" }
func (m *QueryKycStatusResponse) ProtoMessage()        {}
func (m *QueryKycStatusResponse) Reset()               { *m = QueryKycStatusResponse{} }
func (m *QueryKycStatusResponse) String() string       { return "QueryKycStatusResponse{}" }
func (m *QueryContractVersionRequest) ProtoMessage()   {}
func (m *QueryContractVersionRequest) Reset()          { *m = QueryContractVersionRequest{} }
func (m *QueryContractVersionRequest) String() string  { return "QueryContractVersionRequest{}" }
func (m *QueryContractVersionResponse) ProtoMessage()  {}
func (m *QueryContractVersionResponse) Reset()         { *m = QueryContractVersionResponse{} }
func (m *QueryContractVersionResponse) String() string { return "QueryContractVersionResponse{}" }
func (m *QueryAllClaimsRequest) ProtoMessage()         {}
func (m *QueryAllClaimsRequest) Reset()                { *m = QueryAllClaimsRequest{} }
func (m *QueryAllClaimsRequest) String() string        { return "QueryAllClaimsRequest{}" }
func (m *QueryAllClaimsResponse) ProtoMessage()        {}
func (m *QueryAllClaimsResponse) Reset()               { *m = QueryAllClaimsResponse{} }
func (m *QueryAllClaimsResponse) String() string       { return "QueryAllClaimsResponse{}" }

// RegisterMsgServer registers the msg server. Proto-based gRPC registration
// is not used by this module; this stub exists for module wiring
// compatibility only.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {}

// RegisterQueryServer registers the query server. See RegisterMsgServer.
func RegisterQueryServer(s grpc.ServiceRegistrar, srv QueryServer) {}
