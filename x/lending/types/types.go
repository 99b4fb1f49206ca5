package types

import (
	"math/big"

	"gopkg.in/yaml.v2"
)

// Denom is the single fungible denomination the pool accepts.
const Denom = "usdx"

// MinimumLiquidity is permanently locked on the genesis deposit so the
// share/asset exchange rate can never be driven to zero by a full
// withdrawal of the only depositor.
const MinimumLiquidity = 1000

// SecondsPerYear is the simple-interest accrual denominator.
const SecondsPerYear = 31_536_000

// Pool is the module's single lending pool, instance-scoped (one per chain).
type Pool struct {
	TotalDeposits  uint64 `json:"total_deposits"`
	TotalBorrowed  uint64 `json:"total_borrowed"`
	TotalShares    uint64 `json:"total_shares"`
	RetainedYield  uint64 `json:"retained_yield"`
	BadDebtReserve uint64 `json:"bad_debt_reserve"`
}

// UtilizationBps returns total_borrowed / total_deposits in basis points, 0
// if the pool has no deposits.
func (p Pool) UtilizationBps() uint64 {
	if p.TotalDeposits == 0 {
		return 0
	}
	return MulDivU64(p.TotalBorrowed, 10000, p.TotalDeposits)
}

// AvailableLiquidity is the portion of deposits not currently borrowed out.
func (p Pool) AvailableLiquidity() uint64 {
	if p.TotalBorrowed > p.TotalDeposits {
		return 0
	}
	return p.TotalDeposits - p.TotalBorrowed
}

// SharesForDeposit computes the shares minted for a deposit of amount,
// before any genesis MinimumLiquidity deduction.
func (p Pool) SharesForDeposit(amount uint64) uint64 {
	if p.TotalShares == 0 || p.TotalDeposits == 0 {
		return amount
	}
	return MulDivU64(amount, p.TotalShares, p.TotalDeposits)
}

// AssetsForShares computes the redemption amount for a given share count.
func (p Pool) AssetsForShares(shares uint64) uint64 {
	if p.TotalShares == 0 {
		return 0
	}
	return MulDivU64(shares, p.TotalDeposits, p.TotalShares)
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

// PoolParams are the admin-adjustable rate and risk knobs, distinct from the
// Pool's accounting state so they survive independently of deposit/borrow
// flow and can be reasoned about/printed on their own.
type PoolParams struct {
	Admin              string `json:"admin" yaml:"admin"`
	BaseRateBps        uint64 `json:"base_rate_bps" yaml:"base_rate_bps"`
	MultiplierBps      uint64 `json:"multiplier_bps" yaml:"multiplier_bps"`
	UtilizationCapBps  uint64 `json:"utilization_cap_bps" yaml:"utilization_cap_bps"`
	CollateralRatioBps uint64 `json:"collateral_ratio_bps" yaml:"collateral_ratio_bps"`
}

func DefaultPoolParams(admin string) PoolParams {
	return PoolParams{
		Admin:              admin,
		BaseRateBps:        200,   // 2%
		MultiplierBps:      2000,  // 20% of utilization
		UtilizationCapBps:  9000,  // 90%
		CollateralRatioBps: 15000, // 150%
	}
}

func (p PoolParams) Validate() error {
	if p.UtilizationCapBps == 0 || p.UtilizationCapBps > 10000 {
		return ErrInvalidPoolParams
	}
	if p.CollateralRatioBps < 10000 {
		return ErrInvalidPoolParams
	}
	return nil
}

// String renders the params as YAML, matching the teacher's Params.String()
// convention elsewhere in the module set.
func (p PoolParams) String() string {
	bz, err := yaml.Marshal(p)
	if err != nil {
		return ""
	}
	return string(bz)
}

// RateBps computes the post-increment utilization-indexed borrow rate: the
// rate is evaluated against total_borrowed *after* adding the candidate
// borrow amount, then frozen onto the loan for its lifetime.
func (p PoolParams) RateBps(pool Pool, additionalBorrow uint64) uint64 {
	postBorrowed := pool.TotalBorrowed + additionalBorrow
	utilizationBps := uint64(0)
	if pool.TotalDeposits > 0 {
		utilizationBps = MulDivU64(postBorrowed, 10000, pool.TotalDeposits)
	}
	return p.BaseRateBps + MulDivU64(utilizationBps, p.MultiplierBps, 10000)
}

// Loan is a single-borrow-per-address open position against the pool.
type Loan struct {
	LoanID           uint64 `json:"loan_id"`
	Borrower         string `json:"borrower"`
	Principal        uint64 `json:"principal"`
	CollateralDenom  string `json:"collateral_denom"`
	CollateralAmount uint64 `json:"collateral_amount"`
	RateBps          uint64 `json:"rate_bps"`
	OriginatedAt     int64  `json:"originated_at"`
}

// InterestDue computes simple interest accrued since origination, u128
// intermediate via math/big, mirroring the original checked_mul/checked_div
// chain.
func (l Loan) InterestDue(now int64) uint64 {
	elapsed := now - l.OriginatedAt
	if elapsed <= 0 {
		return 0
	}
	n := new(big.Int).Mul(new(big.Int).SetUint64(l.Principal), big.NewInt(int64(l.RateBps)))
	n.Mul(n, big.NewInt(elapsed))
	d := new(big.Int).Mul(big.NewInt(10000), big.NewInt(SecondsPerYear))
	n.Quo(n, d)
	return n.Uint64()
}
