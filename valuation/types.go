/*
Package valuation computes point-in-time values for bond-like investments.

PURPOSE:
  Given an Investment record and an "as of" instant, this package answers:
  - What is the investment worth right now?
  - How much interest has accrued so far?
  - Has the lock-up period ended, and what would a withdrawal pay out?

KEY CONCEPTS IN THIS FILE (types.go):
  - Investment: the record the engine reads (it never writes it back)
  - Status: explicit lifecycle enum (draft → pending → active → ...)
  - LockupPeriod: duration tier, which also fixes the APY
  - PaymentFrequency: compounding vs fixed monthly distribution

DESIGN PRINCIPLES:
  1. Purity: no I/O, no clocks, no globals - time is always a parameter
  2. Precision: decimal.Decimal for all money, cent rounding only at return
  3. Safety: malformed records degrade to principal-only results, never panic
  4. Explicitness: optional fields are pointers, statuses are an enum

SEE ALSO:
  - segment.go: calendar month segmentation
  - valuation.go: the accrual calculator
  - status.go, withdrawal.go: display classifier and settlement facade
*/
package valuation

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LIFECYCLE STATUS
// =============================================================================

type Status string

const (
	StatusDraft            Status = "draft"
	StatusPending          Status = "pending"
	StatusActive           Status = "active"
	StatusWithdrawalNotice Status = "withdrawal_notice"
	StatusWithdrawn        Status = "withdrawn"
	StatusRejected         Status = "rejected"
)

// Accrues reports whether interest accrual applies to this status.
// Draft, pending, and rejected investments hold principal only.
func (s Status) Accrues() bool {
	switch s {
	case StatusActive, StatusWithdrawalNotice, StatusWithdrawn:
		return true
	default:
		return false
	}
}

// =============================================================================
// LOCK-UP PERIOD - duration tier, fixes the APY
// =============================================================================

type LockupPeriod string

const (
	Lockup1Year LockupPeriod = "1-year"
	Lockup3Year LockupPeriod = "3-year"
)

var (
	apy1Year = decimal.NewFromFloat(0.08)
	apy3Year = decimal.NewFromFloat(0.10)
	twelve   = decimal.NewFromInt(12)
)

// Years returns the lock-up duration in calendar years.
func (p LockupPeriod) Years() int {
	if p == Lockup3Year {
		return 3
	}
	return 1
}

// APY returns the annual percentage yield for the tier.
// Unknown tiers fall back to the 1-year rate.
func (p LockupPeriod) APY() decimal.Decimal {
	if p == Lockup3Year {
		return apy3Year
	}
	return apy1Year
}

// MonthlyRate returns APY / 12.
func (p LockupPeriod) MonthlyRate() decimal.Decimal {
	return p.APY().Div(twelve)
}

// =============================================================================
// PAYMENT FREQUENCY
// =============================================================================

type PaymentFrequency string

const (
	// FrequencyCompounding folds each period's interest back into the balance.
	FrequencyCompounding PaymentFrequency = "compounding"

	// FrequencyMonthly pays a flat amount per month; principal never changes.
	FrequencyMonthly PaymentFrequency = "monthly"
)

// NoticeWindowDays is the fixed withdrawal notice window: once a withdrawal
// is requested the payout is due within 90 days of the notice date.
const NoticeWindowDays = 90

// =============================================================================
// INVESTMENT - the record the engine reads
// =============================================================================

// Investment is owned by the user aggregate upstream; the engine treats it
// as read-only input. Optional fields are nil until the lifecycle sets them.
type Investment struct {
	ID               string
	Amount           decimal.Decimal
	LockupPeriod     LockupPeriod
	PaymentFrequency PaymentFrequency
	Status           Status

	// ConfirmedAt marks the transition to active. Accrual starts the
	// following calendar day: the confirmation day itself never earns
	// interest, so a same-day confirm-and-view shows zero earnings.
	ConfirmedAt *time.Time

	// LockupEndDate is persisted once computed upstream. When nil it is
	// derived as ConfirmedAt + LockupPeriod calendar years.
	LockupEndDate *time.Time

	// Withdrawal bookkeeping, set when a withdrawal is requested.
	WithdrawalNoticeStartAt *time.Time
	PayoutDueBy             *time.Time

	// WithdrawnAt is the settlement instant for withdrawn investments.
	WithdrawnAt *time.Time

	// TotalEarnings is the frozen earnings snapshot taken at withdrawal.
	// Once set, valuations report it instead of recomputing from time.
	TotalEarnings *decimal.Decimal
}

// LockupEnd resolves the lock-up end instant: the persisted date when
// present, otherwise ConfirmedAt + LockupPeriod years (calendar arithmetic,
// so leap-year lengths come from the date library). Returns nil when the
// investment has no confirmation timestamp to anchor on.
func (inv *Investment) LockupEnd() *time.Time {
	if inv.LockupEndDate != nil {
		end := ToUTCStartOfDay(*inv.LockupEndDate)
		return &end
	}
	if inv.ConfirmedAt == nil {
		return nil
	}
	end := ToUTCStartOfDay(*inv.ConfirmedAt).AddDate(inv.LockupPeriod.Years(), 0, 0)
	return &end
}

// AccrualStart returns the first day that earns interest, or nil when the
// investment was never confirmed.
func (inv *Investment) AccrualStart() *time.Time {
	if inv.ConfirmedAt == nil {
		return nil
	}
	start := ToUTCStartOfDay(*inv.ConfirmedAt).AddDate(0, 0, 1)
	return &start
}

// MonthlyInterest returns the flat per-month distribution amount for
// monthly-payout investments (principal x monthly rate, cent-rounded),
// and zero for compounding investments.
func (inv *Investment) MonthlyInterest() decimal.Decimal {
	if inv.PaymentFrequency != FrequencyMonthly {
		return decimal.Zero
	}
	return inv.Amount.Mul(inv.LockupPeriod.MonthlyRate()).Round(2)
}
