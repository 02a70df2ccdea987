/*
valuation.go - The accrual calculator

PURPOSE:
  Computes what an investment is worth at an arbitrary instant. This is the
  single source of truth for "value at time T": the dashboard, the
  withdrawal projection, and the final settlement all come through here.

SHORT-CIRCUITS (in order):
  nil investment            -> all-zero result
  non-accruing status       -> principal only (draft, pending, rejected)
  missing ConfirmedAt       -> principal only (inconsistent upstream state)
  asOf before accrual start -> principal only, but lockup end and the flat
                               monthly interest amount are still reported

ACCRUAL MODES:
  compounding: fold over segments keeping a running balance. Full months
    earn balance * monthlyRate; partial months prorate the monthly rate to
    a daily rate FIRST (monthlyRate / daysInMonth * days) so a partial
    month implies the same daily rate as a full one. Each segment
    compounds once on its aggregate interest.

  monthly: principal never changes. Each full month is entitled to the
    flat amount, partial months to days/daysInMonth of it. The result is
    an accrual projection; reconciling against actually-paid distributions
    is the caller's concern (see portfolio.Reconcile).

ROUNDING:
  decimal arithmetic throughout, cent rounding applied once at the point
  of return. Intermediate steps are never rounded.

FAILURE SEMANTICS:
  No I/O and no error paths: a dashboard must never hard-fail on a
  malformed investment record, so every bad shape degrades to a
  principal-only, non-withdrawable result.
*/
package valuation

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RESULT
// =============================================================================

// Valuation is the computed state of one investment at one instant.
// Pure value type; the engine never persists it.
type Valuation struct {
	// CurrentValue is principal + earnings for compounding investments,
	// principal only for monthly-payout investments.
	CurrentValue decimal.Decimal

	// TotalEarnings is cumulative interest recognized as of the instant.
	TotalEarnings decimal.Decimal

	// MonthsElapsed is the fractional month count since accrual start.
	MonthsElapsed decimal.Decimal

	// IsWithdrawable is true once the as-of instant reaches the lock-up end.
	IsWithdrawable bool

	// LockupEndDate echoes the resolved lock-up end for display.
	LockupEndDate *time.Time

	// MonthlyInterestAmount is the flat per-month distribution for
	// monthly-payout investments; zero for compounding.
	MonthlyInterestAmount decimal.Decimal
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculate values an investment as of the given instant.
//
// The instant is compared against the lock-up end at full timestamp
// granularity (lock-up maturation is a precise boundary), while accrual
// itself works on UTC day boundaries.
func Calculate(inv *Investment, asOf time.Time) Valuation {
	if inv == nil {
		return Valuation{
			CurrentValue:          decimal.Zero,
			TotalEarnings:         decimal.Zero,
			MonthsElapsed:         decimal.Zero,
			MonthlyInterestAmount: decimal.Zero,
		}
	}

	if !inv.Status.Accrues() || inv.ConfirmedAt == nil {
		return principalOnly(inv)
	}

	if inv.Status == StatusWithdrawn {
		return frozen(inv, asOf)
	}

	return calculateLive(inv, asOf)
}

// CalculateAt is the ISO-timestamp entry point. An empty timestamp means
// "now" (callers holding a virtual clock should pass its reading instead);
// an unparseable one is a contract violation and returns ErrInvalidTimestamp.
func CalculateAt(inv *Investment, asOfISO string) (Valuation, error) {
	asOf, err := resolveInstant(asOfISO)
	if err != nil {
		return Valuation{}, err
	}
	return Calculate(inv, asOf), nil
}

func resolveInstant(iso string) (time.Time, error) {
	if iso == "" {
		return time.Now().UTC(), nil
	}
	return ParseTimestamp(iso)
}

// =============================================================================
// MAIN PATH
// =============================================================================

func calculateLive(inv *Investment, asOf time.Time) Valuation {
	confirmed := ToUTCStartOfDay(*inv.ConfirmedAt)
	accrualStart := confirmed.AddDate(0, 0, 1)
	current := ToUTCStartOfDay(asOf)

	lockupEnd := inv.LockupEnd()
	monthlyInterest := inv.MonthlyInterest()

	// Before accrual begins: principal only, but lockup end and the flat
	// monthly amount are still useful for projection displays.
	if current.Before(accrualStart) {
		return Valuation{
			CurrentValue:          inv.Amount.Round(2),
			TotalEarnings:         decimal.Zero,
			MonthsElapsed:         decimal.Zero,
			IsWithdrawable:        false,
			LockupEndDate:         lockupEnd,
			MonthlyInterestAmount: monthlyInterest,
		}
	}

	monthlyRate := inv.LockupPeriod.MonthlyRate()
	segments := BuildSegments(accrualStart, current)

	var currentValue, totalEarnings decimal.Decimal
	if inv.PaymentFrequency == FrequencyMonthly {
		currentValue, totalEarnings = accrueMonthly(inv.Amount, segments, monthlyRate)
	} else {
		currentValue, totalEarnings = accrueCompounding(inv.Amount, segments, monthlyRate)
	}

	return Valuation{
		CurrentValue:          currentValue.Round(2),
		TotalEarnings:         totalEarnings.Round(2),
		MonthsElapsed:         SegmentMonths(segments),
		IsWithdrawable:        withdrawable(asOf, lockupEnd),
		LockupEndDate:         lockupEnd,
		MonthlyInterestAmount: monthlyInterest,
	}
}

// accrueCompounding folds over the segments producing (balance, earnings).
// Each segment compounds once using its aggregate interest: full months at
// the monthly rate, partial months at the month's implied daily rate times
// elapsed days. The order of operations (rate divided by daysInMonth before
// multiplying by days) is load-bearing and must not be rearranged.
func accrueCompounding(principal decimal.Decimal, segments []Segment, monthlyRate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	balance := principal
	earnings := decimal.Zero

	for _, seg := range segments {
		var interest decimal.Decimal
		if seg.Kind == SegmentFull {
			interest = balance.Mul(monthlyRate)
		} else {
			interest = balance.Mul(monthlyRate).
				Div(decimal.NewFromInt(int64(seg.DaysInMonth))).
				Mul(decimal.NewFromInt(int64(seg.Days)))
		}
		balance = balance.Add(interest)
		earnings = earnings.Add(interest)
	}

	return balance, earnings
}

// accrueMonthly accumulates the flat monthly entitlement; principal is
// untouched because distributions are paid out, not added back.
func accrueMonthly(principal decimal.Decimal, segments []Segment, monthlyRate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	flat := principal.Mul(monthlyRate)
	earnings := decimal.Zero

	for _, seg := range segments {
		if seg.Kind == SegmentFull {
			earnings = earnings.Add(flat)
			continue
		}
		earnings = earnings.Add(flat.
			Mul(decimal.NewFromInt(int64(seg.Days))).
			Div(decimal.NewFromInt(int64(seg.DaysInMonth))))
	}

	return principal, earnings
}

// =============================================================================
// TERMINAL / DEGRADED RESULTS
// =============================================================================

// frozen serves withdrawn investments. Valuation stopped at settlement:
// the persisted earnings snapshot wins when present; otherwise the
// calculation is pinned at the recorded withdrawal instant.
func frozen(inv *Investment, asOf time.Time) Valuation {
	pin := asOf
	if inv.WithdrawnAt != nil {
		pin = *inv.WithdrawnAt
	}
	v := calculateLive(inv, pin)

	if inv.TotalEarnings != nil {
		v.TotalEarnings = inv.TotalEarnings.Round(2)
		if inv.PaymentFrequency == FrequencyMonthly {
			v.CurrentValue = inv.Amount.Round(2)
		} else {
			v.CurrentValue = inv.Amount.Add(*inv.TotalEarnings).Round(2)
		}
	}
	return v
}

func principalOnly(inv *Investment) Valuation {
	return Valuation{
		CurrentValue:          inv.Amount.Round(2),
		TotalEarnings:         decimal.Zero,
		MonthsElapsed:         decimal.Zero,
		IsWithdrawable:        false,
		LockupEndDate:         nil,
		MonthlyInterestAmount: decimal.Zero,
	}
}

// withdrawable compares the literal as-of instant against the lock-up end,
// not a day-normalized version: one millisecond before maturity is locked.
func withdrawable(asOf time.Time, lockupEnd *time.Time) bool {
	if lockupEnd == nil {
		return false
	}
	return !asOf.Before(*lockupEnd)
}
