package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgCreateLoan          = "create_loan"
	TypeMsgRepayLoan           = "repay_loan"
	TypeMsgLiquidate           = "liquidate"
	TypeMsgWhitelistCollateral = "whitelist_collateral"
	TypeMsgSetGlobalPause      = "set_global_pause"
	TypeMsgSetVaultPause       = "set_vault_pause"
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

// MsgCreateLoan opens a new collateralized loan for the caller. Unlike the
// lending pool, a borrower may hold more than one concurrent loan here; each
// call allocates a fresh loan id.
type MsgCreateLoan struct {
	Borrower         string `json:"borrower"`
	Principal        uint64 `json:"principal"`
	InterestRateBps  uint64 `json:"interest_rate_bps"`
	DueDate          int64  `json:"due_date"`
	CollateralDenom  string `json:"collateral_denom"`
	CollateralAmount uint64 `json:"collateral_amount"`
}

func (msg *MsgCreateLoan) Route() string { return RouterKey }
func (msg *MsgCreateLoan) Type() string  { return TypeMsgCreateLoan }
func (msg *MsgCreateLoan) ValidateBasic() error {
	if _, err := reqAddr("borrower", msg.Borrower); err != nil {
		return err
	}
	if msg.Principal == 0 || msg.CollateralAmount == 0 {
		return ErrInvalidAmount
	}
	if msg.CollateralDenom == "" {
		return fmt.Errorf("collateral_denom is required")
	}
	return nil
}
func (msg *MsgCreateLoan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Borrower)
	return []sdk.AccAddress{addr}
}
func (msg *MsgCreateLoan) ProtoMessage()  {}
func (msg *MsgCreateLoan) Reset()         { *msg = MsgCreateLoan{} }
func (msg *MsgCreateLoan) String() string { return "borrowing/MsgCreateLoan" }

type MsgCreateLoanResponse struct {
	LoanID uint64 `json:"loan_id"`
}

func (m *MsgCreateLoanResponse) ProtoMessage()  {}
func (m *MsgCreateLoanResponse) Reset()         { *m = MsgCreateLoanResponse{} }
func (m *MsgCreateLoanResponse) String() string { return "borrowing/MsgCreateLoanResponse" }

// MsgRepayLoan accumulates amount into the loan's amount_repaid; a caller
// may call this repeatedly with partial amounts.
type MsgRepayLoan struct {
	Borrower string `json:"borrower"`
	LoanID   uint64 `json:"loan_id"`
	Amount   uint64 `json:"amount"`
}

func (msg *MsgRepayLoan) Route() string { return RouterKey }
func (msg *MsgRepayLoan) Type() string  { return TypeMsgRepayLoan }
func (msg *MsgRepayLoan) ValidateBasic() error {
	if _, err := reqAddr("borrower", msg.Borrower); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (msg *MsgRepayLoan) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Borrower)
	return []sdk.AccAddress{addr}
}
func (msg *MsgRepayLoan) ProtoMessage()  {}
func (msg *MsgRepayLoan) Reset()         { *msg = MsgRepayLoan{} }
func (msg *MsgRepayLoan) String() string { return "borrowing/MsgRepayLoan" }

type MsgRepayLoanResponse struct {
	AmountRepaid  uint64 `json:"amount_repaid"`
	IsActive      bool   `json:"is_active"`
	CollateralOut uint64 `json:"collateral_out"`
}

func (m *MsgRepayLoanResponse) ProtoMessage()  {}
func (m *MsgRepayLoanResponse) Reset()         { *m = MsgRepayLoanResponse{} }
func (m *MsgRepayLoanResponse) String() string { return "borrowing/MsgRepayLoanResponse" }

// MsgLiquidate is a permissionless call covering liquidate_amount of an
// unhealthy loan's outstanding debt in exchange for a collateral reward.
type MsgLiquidate struct {
	Liquidator      string `json:"liquidator"`
	LoanID          uint64 `json:"loan_id"`
	LiquidateAmount uint64 `json:"liquidate_amount"`
}

func (msg *MsgLiquidate) Route() string { return RouterKey }
func (msg *MsgLiquidate) Type() string  { return TypeMsgLiquidate }
func (msg *MsgLiquidate) ValidateBasic() error {
	if _, err := reqAddr("liquidator", msg.Liquidator); err != nil {
		return err
	}
	if msg.LiquidateAmount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
func (msg *MsgLiquidate) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Liquidator)
	return []sdk.AccAddress{addr}
}
func (msg *MsgLiquidate) ProtoMessage()  {}
func (msg *MsgLiquidate) Reset()         { *msg = MsgLiquidate{} }
func (msg *MsgLiquidate) String() string { return "borrowing/MsgLiquidate" }

type MsgLiquidateResponse struct {
	LiquidatorReward uint64 `json:"liquidator_reward"`
	CollateralLeft   uint64 `json:"collateral_left"`
	HealthFactor     uint64 `json:"health_factor"`
}

func (m *MsgLiquidateResponse) ProtoMessage()  {}
func (m *MsgLiquidateResponse) Reset()         { *m = MsgLiquidateResponse{} }
func (m *MsgLiquidateResponse) String() string { return "borrowing/MsgLiquidateResponse" }

// MsgWhitelistCollateral is an admin-gated collateral allowlist setter.
type MsgWhitelistCollateral struct {
	Admin   string `json:"admin"`
	Denom   string `json:"denom"`
	Allowed bool   `json:"allowed"`
}

func (msg *MsgWhitelistCollateral) Route() string { return RouterKey }
func (msg *MsgWhitelistCollateral) Type() string  { return TypeMsgWhitelistCollateral }
func (msg *MsgWhitelistCollateral) ValidateBasic() error {
	if _, err := reqAddr("admin", msg.Admin); err != nil {
		return err
	}
	if msg.Denom == "" {
		return fmt.Errorf("denom is required")
	}
	return nil
}
func (msg *MsgWhitelistCollateral) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}
func (msg *MsgWhitelistCollateral) ProtoMessage()  {}
func (msg *MsgWhitelistCollateral) Reset()         { *msg = MsgWhitelistCollateral{} }
func (msg *MsgWhitelistCollateral) String() string { return "borrowing/MsgWhitelistCollateral" }

type MsgWhitelistCollateralResponse struct{}

func (m *MsgWhitelistCollateralResponse) ProtoMessage()  {}
func (m *MsgWhitelistCollateralResponse) Reset()         { *m = MsgWhitelistCollateralResponse{} }
func (m *MsgWhitelistCollateralResponse) String() string {
	return "borrowing/MsgWhitelistCollateralResponse"
}

// MsgSetGlobalPause is an admin-gated kill switch for the whole vault.
type MsgSetGlobalPause struct {
	Admin  string `json:"admin"`
	Paused bool   `json:"paused"`
}

func (msg *MsgSetGlobalPause) Route() string { return RouterKey }
func (msg *MsgSetGlobalPause) Type() string  { return TypeMsgSetGlobalPause }
func (msg *MsgSetGlobalPause) ValidateBasic() error {
	_, err := reqAddr("admin", msg.Admin)
	return err
}
func (msg *MsgSetGlobalPause) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}
func (msg *MsgSetGlobalPause) ProtoMessage()  {}
func (msg *MsgSetGlobalPause) Reset()         { *msg = MsgSetGlobalPause{} }
func (msg *MsgSetGlobalPause) String() string { return "borrowing/MsgSetGlobalPause" }

type MsgSetGlobalPauseResponse struct{}

func (m *MsgSetGlobalPauseResponse) ProtoMessage()  {}
func (m *MsgSetGlobalPauseResponse) Reset()         { *m = MsgSetGlobalPauseResponse{} }
func (m *MsgSetGlobalPauseResponse) String() string { return "borrowing/MsgSetGlobalPauseResponse" }

// MsgSetVaultPause is an admin-gated kill switch scoped to a single
// collateral token.
type MsgSetVaultPause struct {
	Admin  string `json:"admin"`
	Denom  string `json:"denom"`
	Paused bool   `json:"paused"`
}

func (msg *MsgSetVaultPause) Route() string { return RouterKey }
func (msg *MsgSetVaultPause) Type() string  { return TypeMsgSetVaultPause }
func (msg *MsgSetVaultPause) ValidateBasic() error {
	if _, err := reqAddr("admin", msg.Admin); err != nil {
		return err
	}
	if msg.Denom == "" {
		return fmt.Errorf("denom is required")
	}
	return nil
}
func (msg *MsgSetVaultPause) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{addr}
}
func (msg *MsgSetVaultPause) ProtoMessage()  {}
func (msg *MsgSetVaultPause) Reset()         { *msg = MsgSetVaultPause{} }
func (msg *MsgSetVaultPause) String() string { return "borrowing/MsgSetVaultPause" }

type MsgSetVaultPauseResponse struct{}

func (m *MsgSetVaultPauseResponse) ProtoMessage()  {}
func (m *MsgSetVaultPauseResponse) Reset()         { *m = MsgSetVaultPauseResponse{} }
func (m *MsgSetVaultPauseResponse) String() string { return "borrowing/MsgSetVaultPauseResponse" }
