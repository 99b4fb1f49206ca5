package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgDeposit           = "deposit"
	TypeMsgWithdraw          = "withdraw"
	TypeMsgPriorityWithdraw  = "priority_withdraw"
	TypeMsgBorrow            = "borrow"
	TypeMsgRepay             = "repay"
	TypeMsgWhitelistToken    = "whitelist_token"
	TypeMsgUpdatePoolParams  = "update_pool_params"
)

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

// MsgDeposit credits the caller with pool shares for amount.
type MsgDeposit struct {
	Depositor string `json:"depositor"`
	Amount    uint64 `json:"amount"`
}

func (msg *MsgDeposit) Route() string { return RouterKey }
func (msg *MsgDeposit) Type() string  { return TypeMsgDeposit }
func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := reqAddr("depositor", msg.Depositor); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Depositor)
	return []sdk.AccAddress{addr}
}
func (msg *MsgDeposit) ProtoMessage() {}
func (msg *MsgDeposit) Reset()        { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return "lending/MsgDeposit" }

type MsgDepositResponse struct {
	Shares uint64 `json:"shares"`
}

func (m *MsgDepositResponse) ProtoMessage()  {}
func (m *MsgDepositResponse) Reset()         { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string { return "lending/MsgDepositResponse" }

// MsgWithdraw redeems shares for their underlying asset value.
type MsgWithdraw struct {
	Withdrawer string `json:"withdrawer"`
	Shares     uint64 `json:"shares"`
}

func (msg *MsgWithdraw) Route() string { return RouterKey }
func (msg *MsgWithdraw) Type() string  { return TypeMsgWithdraw }
func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := reqAddr("withdrawer", msg.Withdrawer); err != nil {
		return err
	}
	if msg.Shares == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Withdrawer)
	return []sdk.AccAddress{addr}
}
func (msg *MsgWithdraw) ProtoMessage()  {}
func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return "lending/MsgWithdraw" }

type MsgWithdrawResponse struct {
	Amount uint64 `json:"amount"`
}

func (m *MsgWithdrawResponse) ProtoMessage()  {}
func (m *MsgWithdrawResponse) Reset()         { *m = MsgWithdrawResponse{} }
func (m *MsgWithdrawResponse) String() string { return "lending/MsgWithdrawResponse" }

// MsgPriorityWithdraw draws only from retained_yield, never principal.
type MsgPriorityWithdraw struct {
	Withdrawer string `json:"withdrawer"`
	Amount     uint64 `json:"amount"`
}

func (msg *MsgPriorityWithdraw) Route() string { return RouterKey }
func (msg *MsgPriorityWithdraw) Type() string  { return TypeMsgPriorityWithdraw }
func (msg *MsgPriorityWithdraw) ValidateBasic() error {
	if _, err := reqAddr("withdrawer", msg.Withdrawer); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (msg *MsgPriorityWithdraw) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Withdrawer)
	return []sdk.AccAddress{addr}
}
func (msg *MsgPriorityWithdraw) ProtoMessage()  {}
func (msg *MsgPriorityWithdraw) Reset()         { *msg = MsgPriorityWithdraw{} }
func (msg *MsgPriorityWithdraw) String() string { return "lending/MsgPriorityWithdraw" }

type MsgPriorityWithdrawResponse struct{}

func (m *MsgPriorityWithdrawResponse) ProtoMessage()  {}
func (m *MsgPriorityWithdrawResponse) Reset()         { *m = MsgPriorityWithdrawResponse{} }
func (m *MsgPriorityWithdrawResponse) String() string { return "lending/MsgPriorityWithdrawResponse" }

// MsgBorrow opens a single collateralized loan for the caller.
type MsgBorrow struct {
	Borrower         string `json:"borrower"`
	Amount           uint64 `json:"amount"`
	CollateralDenom  string `json:"collateral_denom"`
	CollateralAmount uint64 `json:"collateral_amount"`
}

func (msg *MsgBorrow) Route() string { return RouterKey }
func (msg *MsgBorrow) Type() string  { return TypeMsgBorrow }
func (msg *MsgBorrow) ValidateBasic() error {
	if _, err := reqAddr("borrower", msg.Borrower); err != nil {
		return err
	}
	if msg.Amount == 0 || msg.CollateralAmount == 0 {
		return ErrInvalidAmount
	}
	if msg.CollateralDenom == "" {
		return fmt.Errorf("collateral_denom is required")
	}
	return nil
}
func (msg *MsgBorrow) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Borrower)
	return []sdk.AccAddress{addr}
}
func (msg *MsgBorrow) ProtoMessage()  {}
func (msg *MsgBorrow) Reset()         { *msg = MsgBorrow{} }
func (msg *MsgBorrow) String() string { return "lending/MsgBorrow" }

type MsgBorrowResponse struct {
	LoanID  uint64 `json:"loan_id"`
	RateBps uint64 `json:"rate_bps"`
}

func (m *MsgBorrowResponse) ProtoMessage()  {}
func (m *MsgBorrowResponse) Reset()         { *m = MsgBorrowResponse{} }
func (m *MsgBorrowResponse) String() string { return "lending/MsgBorrowResponse" }

// MsgRepay is a single full-repayment call; partial repayment is not
// supported, matching the one-call-full-repayment-only invariant.
type MsgRepay struct {
	Borrower string `json:"borrower"`
}

func (msg *MsgRepay) Route() string { return RouterKey }
func (msg *MsgRepay) Type() string  { return TypeMsgRepay }
func (msg *MsgRepay) ValidateBasic() error {
	_, err := reqAddr("borrower", msg.Borrower)
	return err
}
func (msg *MsgRepay) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Borrower)
	return []sdk.AccAddress{addr}
}
func (msg *MsgRepay) ProtoMessage()  {}
func (msg *MsgRepay) Reset()         { *msg = MsgRepay{} }
func (msg *MsgRepay) String() string { return "lending/MsgRepay" }

type MsgRepayResponse struct {
	Interest      uint64 `json:"interest"`
	TotalRepaid   uint64 `json:"total_repaid"`
	CollateralOut uint64 `json:"collateral_out"`
}

func (m *MsgRepayResponse) ProtoMessage()  {}
func (m *MsgRepayResponse) Reset()         { *m = MsgRepayResponse{} }
func (m *MsgRepayResponse) String() string { return "lending/MsgRepayResponse" }

// MsgWhitelistToken is an admin-gated collateral allowlist setter.
type MsgWhitelistToken struct {
	Admin   string `json:"admin"`
	Denom   string `json:"denom"`
	Allowed bool   `json:"allowed"`
}

func (msg *MsgWhitelistToken) Route() string { return RouterKey }
func (msg *MsgWhitelistToken) Type() string  { return TypeMsgWhitelistToken }
func (msg *MsgWhitelistToken) ValidateBasic() error {
	if _, err := reqAddr("admin", msg.Admin); err != nil {
		return err
	}
	if msg.Denom == "" {
		return fmt.Errorf("denom is required")
	}
	return nil
}
func (msg *MsgWhitelistToken) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}
func (msg *MsgWhitelistToken) ProtoMessage()  {}
func (msg *MsgWhitelistToken) Reset()         { *msg = MsgWhitelistToken{} }
func (msg *MsgWhitelistToken) String() string { return "lending/MsgWhitelistToken" }

type MsgWhitelistTokenResponse struct{}

func (m *MsgWhitelistTokenResponse) ProtoMessage()  {}
func (m *MsgWhitelistTokenResponse) Reset()         { *m = MsgWhitelistTokenResponse{} }
func (m *MsgWhitelistTokenResponse) String() string { return "lending/MsgWhitelistTokenResponse" }

// MsgUpdatePoolParams is the admin-gated rate/risk knob setter supplemented
// from the original Soroban contract's base_rate_bps/multiplier_bps/
// utilization_cap_bps/collateral_ratio_bps setters.
type MsgUpdatePoolParams struct {
	Admin  string     `json:"admin"`
	Params PoolParams `json:"params"`
}

func (msg *MsgUpdatePoolParams) Route() string { return RouterKey }
func (msg *MsgUpdatePoolParams) Type() string  { return TypeMsgUpdatePoolParams }
func (msg *MsgUpdatePoolParams) ValidateBasic() error {
	if _, err := reqAddr("admin", msg.Admin); err != nil {
		return err
	}
	return msg.Params.Validate()
}
func (msg *MsgUpdatePoolParams) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}
func (msg *MsgUpdatePoolParams) ProtoMessage()  {}
func (msg *MsgUpdatePoolParams) Reset()         { *msg = MsgUpdatePoolParams{} }
func (msg *MsgUpdatePoolParams) String() string { return "lending/MsgUpdatePoolParams" }

type MsgUpdatePoolParamsResponse struct{}

func (m *MsgUpdatePoolParamsResponse) ProtoMessage()  {}
func (m *MsgUpdatePoolParamsResponse) Reset()         { *m = MsgUpdatePoolParamsResponse{} }
func (m *MsgUpdatePoolParamsResponse) String() string { return "lending/MsgUpdatePoolParamsResponse" }
