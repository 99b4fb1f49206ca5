package types

import (
	"cosmossdk.io/errors"
)

// x/inheritance module sentinel errors. Codes are partitioned by concern in
// blocks of 10, following the teacher's x/lending/types/errors.go convention.
var (
	// Precondition errors (client asked for something invalid)
	ErrInvalidAmount            = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidAllocation        = errors.Register(ModuleName, 2, "invalid allocation")
	ErrInvalidClaimCodeRange    = errors.Register(ModuleName, 3, "claim code out of range")
	ErrAllocationExceedsLimit   = errors.Register(ModuleName, 4, "allocation exceeds 10000 bp limit")
	ErrAllocationMismatch       = errors.Register(ModuleName, 5, "beneficiary allocations must sum to exactly 10000 bp")
	ErrTooManyBeneficiaries     = errors.Register(ModuleName, 6, "too many beneficiaries")
	ErrDescriptionTooLong       = errors.Register(ModuleName, 7, "description too long")
	ErrMissingRequiredField     = errors.Register(ModuleName, 8, "missing required field")
	ErrInvalidBeneficiaryData   = errors.Register(ModuleName, 9, "invalid beneficiary data")
	ErrInvalidBeneficiaryIndex  = errors.Register(ModuleName, 10, "invalid beneficiary index")
	ErrInvalidTotalAmount       = errors.Register(ModuleName, 11, "invalid total amount")

	// State errors (world is not in a compatible state)
	ErrPlanNotFound               = errors.Register(ModuleName, 20, "inheritance plan not found")
	ErrPlanNotActive              = errors.Register(ModuleName, 21, "plan is not active")
	ErrPlanAlreadyDeactivated     = errors.Register(ModuleName, 22, "plan already deactivated")
	ErrAlreadyClaimed             = errors.Register(ModuleName, 23, "claim already processed")
	ErrBeneficiaryNotFound        = errors.Register(ModuleName, 24, "beneficiary not found")
	ErrClaimNotAllowedYet         = errors.Register(ModuleName, 25, "claim not allowed yet")
	ErrInheritanceAlreadyTriggered = errors.Register(ModuleName, 26, "inheritance already triggered")
	ErrInheritanceNotTriggered    = errors.Register(ModuleName, 27, "inheritance not triggered")
	ErrNoOutstandingLoans         = errors.Register(ModuleName, 28, "no outstanding loans to recall")
	ErrInsufficientLiquidity      = errors.Register(ModuleName, 29, "insufficient liquidity")
	ErrInsufficientBalance        = errors.Register(ModuleName, 30, "insufficient balance")
	ErrKycNotSubmitted            = errors.Register(ModuleName, 31, "kyc not submitted")
	ErrKycAlreadyApproved         = errors.Register(ModuleName, 32, "kyc already approved")
	ErrKycAlreadyRejected         = errors.Register(ModuleName, 33, "kyc already rejected")
	ErrAdminNotSet                = errors.Register(ModuleName, 34, "admin not set")
	ErrAdminAlreadyInitialized    = errors.Register(ModuleName, 35, "admin already initialized")
	ErrMigrationNotRequired       = errors.Register(ModuleName, 36, "migration not required")

	// Authorization and I/O failures
	ErrUnauthorized      = errors.Register(ModuleName, 50, "unauthorized")
	ErrNotAdmin          = errors.Register(ModuleName, 51, "not admin")
	ErrFeeTransferFailed = errors.Register(ModuleName, 52, "fee transfer failed")
	ErrTransferFailed    = errors.Register(ModuleName, 53, "transfer failed")
	ErrLoanRecallFailed  = errors.Register(ModuleName, 54, "loan recall failed")
	ErrUpgradeFailed     = errors.Register(ModuleName, 55, "upgrade failed")

	// Kept for genesis validation
	ErrInvalidPlan = errors.Register(ModuleName, 60, "invalid inheritance plan")
)
