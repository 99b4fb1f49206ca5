package types

import (
	"cosmossdk.io/errors"
)

// x/borrowing module sentinel errors, partitioned in blocks of 10 by
// concern, matching the teacher's lending errors.go convention.
var (
	// Amount/precondition errors
	ErrInvalidAmount = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidParams = errors.Register(ModuleName, 2, "invalid vault params")

	// Collateral/whitelist errors
	ErrCollateralNotWhitelisted = errors.Register(ModuleName, 10, "collateral token not whitelisted")
	ErrInsufficientCollateral   = errors.Register(ModuleName, 11, "collateral does not meet the required ratio")
	ErrGlobalPaused             = errors.Register(ModuleName, 12, "vault is globally paused")
	ErrVaultPaused              = errors.Register(ModuleName, 13, "vault is paused for this collateral token")

	// Loan lifecycle errors
	ErrLoanNotFound = errors.Register(ModuleName, 20, "loan not found")
	ErrLoanNotActive = errors.Register(ModuleName, 21, "loan is not active")
	ErrLoanHealthy  = errors.Register(ModuleName, 22, "loan health factor is at or above the liquidation threshold")

	// Authorization/IO errors
	ErrUnauthorized   = errors.Register(ModuleName, 30, "unauthorized")
	ErrNotAdmin       = errors.Register(ModuleName, 31, "caller is not the vault admin")
	ErrTransferFailed = errors.Register(ModuleName, 32, "token transfer failed")
)

// Event types
const (
	EventTypeLoanCreated    = "borrowing_loan_created"
	EventTypeLoanRepaid     = "borrowing_loan_repaid"
	EventTypeLoanLiquidated = "borrowing_loan_liquidated"
	EventTypeParamsUpdated  = "borrowing_params_updated"
)

// Attribute keys
const (
	AttributeKeyBorrower         = "borrower"
	AttributeKeyLiquidator       = "liquidator"
	AttributeKeyLoanID           = "loan_id"
	AttributeKeyAmount           = "amount"
	AttributeKeyCollateral       = "collateral_amount"
	AttributeKeyAmountRepaid     = "amount_repaid"
	AttributeKeyHealthFactor     = "health_factor"
	AttributeKeyLiquidatorReward = "liquidator_reward"
)
