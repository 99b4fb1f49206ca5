package types

import (
	"cosmossdk.io/errors"
)

// x/lending module sentinel errors, partitioned in blocks of 10 by concern.
var (
	// Amount/precondition errors
	ErrInvalidAmount     = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidPoolParams = errors.Register(ModuleName, 2, "invalid pool params")

	// Liquidity/share errors
	ErrInsufficientLiquidity = errors.Register(ModuleName, 10, "insufficient pool liquidity")
	ErrInsufficientShares    = errors.Register(ModuleName, 11, "insufficient shares")

	// Loan/collateral errors
	ErrLoanAlreadyExists        = errors.Register(ModuleName, 20, "borrower already has an open loan")
	ErrNoOpenLoan               = errors.Register(ModuleName, 21, "no open loan for borrower")
	ErrLoanNotFound             = errors.Register(ModuleName, 22, "loan not found")
	ErrCollateralNotWhitelisted = errors.Register(ModuleName, 23, "collateral token not whitelisted")
	ErrInsufficientCollateral   = errors.Register(ModuleName, 24, "collateral does not meet the required ratio")
	ErrUtilizationCapExceeded   = errors.Register(ModuleName, 25, "borrow would exceed the utilization cap")

	// Authorization/IO errors
	ErrUnauthorized   = errors.Register(ModuleName, 30, "unauthorized")
	ErrNotAdmin       = errors.Register(ModuleName, 31, "caller is not the pool admin")
	ErrTransferFailed = errors.Register(ModuleName, 32, "token transfer failed")
)

// Event types
const (
	EventTypePoolDeposit          = "pool_deposit"
	EventTypePoolWithdraw         = "pool_withdraw"
	EventTypePoolBorrow           = "pool_borrow"
	EventTypePoolRepay            = "pool_repay"
	EventTypePoolPriorityWithdraw = "pool_priority_withdraw"
	EventTypeCollateralDeposited  = "collateral_deposited"
	EventTypePoolParamsUpdated    = "pool_params_updated"
)

// Attribute keys
const (
	AttributeKeyDepositor  = "depositor"
	AttributeKeyBorrower   = "borrower"
	AttributeKeyLoanID     = "loan_id"
	AttributeKeyAmount     = "amount"
	AttributeKeyShares     = "shares"
	AttributeKeyRateBps    = "rate_bps"
	AttributeKeyCollateral = "collateral_amount"
	AttributeKeyInterest   = "interest"
)
