package types

import (
	"math/big"

	"gopkg.in/yaml.v2"
)

// PrincipalDenom is the single fungible denomination loan principal and
// repayment move in, the same chain stablecoin the lending pool accepts
// (spec.md §1's one Token Interface asset). Collateral, by contrast, is
// whatever whitelisted denom the borrower posts per loan.
const PrincipalDenom = "usdx"

// Params are the vault's instance-scope admin knobs.
type Params struct {
	Admin                string `json:"admin" yaml:"admin"`
	CollateralRatioBps   uint64 `json:"collateral_ratio_bps" yaml:"collateral_ratio_bps"`
	LiquidationThreshold uint64 `json:"liquidation_threshold_bps" yaml:"liquidation_threshold_bps"`
	LiquidationBonusBps  uint64 `json:"liquidation_bonus_bps" yaml:"liquidation_bonus_bps"`
	GlobalPause          bool   `json:"global_pause" yaml:"global_pause"`
}

func DefaultParams(admin string) Params {
	return Params{
		Admin:                admin,
		CollateralRatioBps:   15000, // 150%
		LiquidationThreshold: 12000, // 120%
		LiquidationBonusBps:  500,   // 5%
		GlobalPause:          false,
	}
}

func (p Params) Validate() error {
	if p.CollateralRatioBps < 10000 {
		return ErrInvalidParams
	}
	if p.LiquidationThreshold == 0 {
		return ErrInvalidParams
	}
	return nil
}

// String renders the params as YAML, matching the teacher's Params.String()
// convention elsewhere in the module set.
func (p Params) String() string {
	bz, err := yaml.Marshal(p)
	if err != nil {
		return ""
	}
	return string(bz)
}

// Loan is a single per-loan collateralized position, keyed by a monotonic
// loan id rather than one-per-borrower: a borrower may hold multiple
// concurrent loans in this vault, unlike the lending pool.
type Loan struct {
	LoanID           uint64 `json:"loan_id"`
	Borrower         string `json:"borrower"`
	Principal        uint64 `json:"principal"`
	InterestRateBps  uint64 `json:"interest_rate_bps"`
	DueDate          int64  `json:"due_date"`
	AmountRepaid     uint64 `json:"amount_repaid"`
	CollateralAmount uint64 `json:"collateral_amount"`
	CollateralDenom  string `json:"collateral_denom"`
	IsActive         bool   `json:"is_active"`
}

// Debt is the outstanding principal not yet repaid.
func (l Loan) Debt() uint64 {
	if l.AmountRepaid >= l.Principal {
		return 0
	}
	return l.Principal - l.AmountRepaid
}

// HealthFactor is collateral_amount*10000/debt in basis points, capped at
// 10000 when debt is zero (a fully repaid or never-drawn loan is maximally
// healthy by definition, never divided by zero).
func (l Loan) HealthFactor() uint64 {
	debt := l.Debt()
	if debt == 0 {
		return 10000
	}
	return MulDivU64(l.CollateralAmount, 10000, debt)
}

// MulDivU64 computes a*b/c using a big.Int intermediate, mirroring the u128
// intermediate arithmetic of the original Soroban contract.
func MulDivU64(a, b, c uint64) uint64 {
	if c == 0 {
		return 0
	}
	n := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	n.Quo(n, new(big.Int).SetUint64(c))
	return n.Uint64()
}

// LiquidatorReward is the collateral paid to a liquidator for covering
// liquidateAmount of a loan's debt: the liquidated amount plus a bonus
// percentage of it, mirroring the original contract's
// `liquidate_amount + liquidate_amount*bonus_bps/10000`.
func LiquidatorReward(liquidateAmount, liquidationBonusBps uint64) uint64 {
	return MulDivU64(liquidateAmount, 10000+liquidationBonusBps, 10000)
}
