package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer defines the Msg service.
type MsgServer interface {
	Deposit(goCtx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(goCtx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	PriorityWithdraw(goCtx context.Context, msg *MsgPriorityWithdraw) (*MsgPriorityWithdrawResponse, error)
	Borrow(goCtx context.Context, msg *MsgBorrow) (*MsgBorrowResponse, error)
	Repay(goCtx context.Context, msg *MsgRepay) (*MsgRepayResponse, error)
	WhitelistToken(goCtx context.Context, msg *MsgWhitelistToken) (*MsgWhitelistTokenResponse, error)
	UpdatePoolParams(goCtx context.Context, msg *MsgUpdatePoolParams) (*MsgUpdatePoolParamsResponse, error)
}

// QueryServer defines the Query service.
type QueryServer interface {
	Pool(goCtx context.Context, req *QueryPoolRequest) (*QueryPoolResponse, error)
	Shares(goCtx context.Context, req *QuerySharesRequest) (*QuerySharesResponse, error)
	Loan(goCtx context.Context, req *QueryLoanRequest) (*QueryLoanResponse, error)
	IsWhitelisted(goCtx context.Context, req *QueryIsWhitelistedRequest) (*QueryIsWhitelistedResponse, error)
	PoolParams(goCtx context.Context, req *QueryPoolParamsRequest) (*QueryPoolParamsResponse, error)
}

// Query request and response types.
type QueryPoolRequest struct{}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QuerySharesRequest struct {
	Holder string `json:"holder"`
}

type QuerySharesResponse struct {
	Shares uint64 `json:"shares"`
}

type QueryLoanRequest struct {
	Borrower string `json:"borrower"`
}

type QueryLoanResponse struct {
	Loan Loan `json:"loan"`
}

type QueryIsWhitelistedRequest struct {
	Denom string `json:"denom"`
}

type QueryIsWhitelistedResponse struct {
	Whitelisted bool `json:"whitelisted"`
}

type QueryPoolParamsRequest struct{}

type QueryPoolParamsResponse struct {
	Params PoolParams `json:"params"`
}

// ProtoMessage implementations. See the note in msgs.go on the legacy amino
// codec — these are marker stubs, not generated code.
func (m *QueryPoolRequest) ProtoMessage()    {}
func (m *QueryPoolRequest) Reset()           { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string   { return "QueryPoolRequest{}" }
func (m *QueryPoolResponse) ProtoMessage()   {}
func (m *QueryPoolResponse) Reset()          { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string  { return "QueryPoolResponse{}" }
func (m *QuerySharesRequest) ProtoMessage()  {}
func (m *QuerySharesRequest) Reset()         { *m = QuerySharesRequest{} }
func (m *QuerySharesRequest) String() string { return "QuerySharesRequest{}" }
func (m *QuerySharesResponse) ProtoMessage() {}
func (m *QuerySharesResponse) Reset()        { *m = QuerySharesResponse{} }
func (m *QuerySharesResponse) String() string {
	return "QuerySharesResponse{}"
}
func (m *QueryLoanRequest) ProtoMessage()  {}
func (m *QueryLoanRequest) Reset()         { *m = QueryLoanRequest{} }
func (m *QueryLoanRequest) String() string { return "QueryLoanRequest{}" }
func (m *QueryLoanResponse) ProtoMessage() {}
func (m *QueryLoanResponse) Reset()        { *m = QueryLoanResponse{} }
func (m *QueryLoanResponse) String() string {
	return "QueryLoanResponse{}"
}
func (m *QueryIsWhitelistedRequest) ProtoMessage() {}
func (m *QueryIsWhitelistedRequest) Reset()        { *m = QueryIsWhitelistedRequest{} }
func (m *QueryIsWhitelistedRequest) String() string {
	return "QueryIsWhitelistedRequest{}"
}
func (m *QueryIsWhitelistedResponse) ProtoMessage() {}
func (m *QueryIsWhitelistedResponse) Reset()        { *m = QueryIsWhitelistedResponse{} }
func (m *QueryIsWhitelistedResponse) String() string {
	return "QueryIsWhitelistedResponse{}"
}
func (m *QueryPoolParamsRequest) ProtoMessage() {}
func (m *QueryPoolParamsRequest) Reset()        { *m = QueryPoolParamsRequest{} }
func (m *QueryPoolParamsRequest) String() string {
	return "QueryPoolParamsRequest{}"
}
func (m *QueryPoolParamsResponse) ProtoMessage() {}
func (m *QueryPoolParamsResponse) Reset()        { *m = QueryPoolParamsResponse{} }
func (m *QueryPoolParamsResponse) String() string {
	return "QueryPoolParamsResponse{}"
}

// RegisterMsgServer registers the msg server. Proto-based gRPC registration
// is not used by this module; this stub exists for module wiring
// compatibility only.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {}

// RegisterQueryServer registers the query server. See RegisterMsgServer.
func RegisterQueryServer(s grpc.ServiceRegistrar, srv QueryServer) {}
