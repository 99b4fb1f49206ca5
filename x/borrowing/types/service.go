package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer defines the Msg service.
type MsgServer interface {
	CreateLoan(goCtx context.Context, msg *MsgCreateLoan) (*MsgCreateLoanResponse, error)
	RepayLoan(goCtx context.Context, msg *MsgRepayLoan) (*MsgRepayLoanResponse, error)
	Liquidate(goCtx context.Context, msg *MsgLiquidate) (*MsgLiquidateResponse, error)
	WhitelistCollateral(goCtx context.Context, msg *MsgWhitelistCollateral) (*MsgWhitelistCollateralResponse, error)
	SetGlobalPause(goCtx context.Context, msg *MsgSetGlobalPause) (*MsgSetGlobalPauseResponse, error)
	SetVaultPause(goCtx context.Context, msg *MsgSetVaultPause) (*MsgSetVaultPauseResponse, error)
}

// QueryServer defines the Query service.
type QueryServer interface {
	Loan(goCtx context.Context, req *QueryLoanRequest) (*QueryLoanResponse, error)
	HealthFactor(goCtx context.Context, req *QueryHealthFactorRequest) (*QueryHealthFactorResponse, error)
	IsWhitelisted(goCtx context.Context, req *QueryIsWhitelistedRequest) (*QueryIsWhitelistedResponse, error)
	IsGlobalPaused(goCtx context.Context, req *QueryIsGlobalPausedRequest) (*QueryIsGlobalPausedResponse, error)
	IsVaultPaused(goCtx context.Context, req *QueryIsVaultPausedRequest) (*QueryIsVaultPausedResponse, error)
	Params(goCtx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
}

// Query request and response types.
type QueryLoanRequest struct {
	LoanID uint64 `json:"loan_id"`
}

type QueryLoanResponse struct {
	Loan Loan `json:"loan"`
}

type QueryHealthFactorRequest struct {
	LoanID uint64 `json:"loan_id"`
}

type QueryHealthFactorResponse struct {
	HealthFactor uint64 `json:"health_factor"`
}

type QueryIsWhitelistedRequest struct {
	Denom string `json:"denom"`
}

type QueryIsWhitelistedResponse struct {
	Whitelisted bool `json:"whitelisted"`
}

type QueryIsGlobalPausedRequest struct{}

type QueryIsGlobalPausedResponse struct {
	Paused bool `json:"paused"`
}

type QueryIsVaultPausedRequest struct {
	Denom string `json:"denom"`
}

type QueryIsVaultPausedResponse struct {
	Paused bool `json:"paused"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// ProtoMessage implementations. See the note in msgs.go on the legacy amino
// codec -- these are marker stubs, not generated code.
func (m *QueryLoanRequest) ProtoMessage()  {}
func (m *QueryLoanRequest) Reset()         { *m = QueryLoanRequest{} }
func (m *QueryLoanRequest) String() string { return "QueryLoanRequest{}" }
func (m *QueryLoanResponse) ProtoMessage() {}
func (m *QueryLoanResponse) Reset()        { *m = QueryLoanResponse{} }
func (m *QueryLoanResponse) String() string {
	return "QueryLoanResponse{}"
}
func (m *QueryHealthFactorRequest) ProtoMessage()  {}
func (m *QueryHealthFactorRequest) Reset()         { *m = QueryHealthFactorRequest{} }
func (m *QueryHealthFactorRequest) String() string { return "QueryHealthFactorRequest{}" }
func (m *QueryHealthFactorResponse) ProtoMessage()  {}
func (m *QueryHealthFactorResponse) Reset()         { *m = QueryHealthFactorResponse{} }
func (m *QueryHealthFactorResponse) String() string { return "QueryHealthFactorResponse{}" }
func (m *QueryIsWhitelistedRequest) ProtoMessage()  {}
func (m *QueryIsWhitelistedRequest) Reset()         { *m = QueryIsWhitelistedRequest{} }
func (m *QueryIsWhitelistedRequest) String() string {
	return "QueryIsWhitelistedRequest{}"
}
func (m *QueryIsWhitelistedResponse) ProtoMessage() {}
func (m *QueryIsWhitelistedResponse) Reset()        { *m = QueryIsWhitelistedResponse{} }
func (m *QueryIsWhitelistedResponse) String() string {
	return "QueryIsWhitelistedResponse{}"
}
func (m *QueryIsGlobalPausedRequest) ProtoMessage() {}
func (m *QueryIsGlobalPausedRequest) Reset()        { *m = QueryIsGlobalPausedRequest{} }
func (m *QueryIsGlobalPausedRequest) String() string {
	return "QueryIsGlobalPausedRequest{}"
}
func (m *QueryIsGlobalPausedResponse) ProtoMessage() {}
func (m *QueryIsGlobalPausedResponse) Reset()        { *m = QueryIsGlobalPausedResponse{} }
func (m *QueryIsGlobalPausedResponse) String() string {
	return "QueryIsGlobalPausedResponse{}"
}
func (m *QueryIsVaultPausedRequest) ProtoMessage() {}
func (m *QueryIsVaultPausedRequest) Reset()        { *m = QueryIsVaultPausedRequest{} }
func (m *QueryIsVaultPausedRequest) String() string {
	return "QueryIsVaultPausedRequest{}"
}
func (m *QueryIsVaultPausedResponse) ProtoMessage() {}
func (m *QueryIsVaultPausedResponse) Reset()        { *m = QueryIsVaultPausedResponse{} }
func (m *QueryIsVaultPausedResponse) String() string {
	return "QueryIsVaultPausedResponse{}"
}
func (m *QueryParamsRequest) ProtoMessage()  {}
func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return "QueryParamsRequest{}" }
func (m *QueryParamsResponse) ProtoMessage() {}
func (m *QueryParamsResponse) Reset()        { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string {
	return "QueryParamsResponse{}"
}

// RegisterMsgServer registers the msg server. Proto-based gRPC registration
// is not used by this module; this stub exists for module wiring
// compatibility only.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {}

// RegisterQueryServer registers the query server. See RegisterMsgServer.
func RegisterQueryServer(s grpc.ServiceRegistrar, srv QueryServer) {}
