/*
withdrawal.go - Withdrawal projection and final settlement

PURPOSE:
  Two read-only views used around a withdrawal:

  WithdrawalAmount: "what would I get if I withdrew now?" - shown before
    the investor requests anything. Pure projection; the caller owns the
    actual transition to withdrawal_notice and the 90-day notice
    bookkeeping (see portfolio.RequestWithdrawal).

  FinalWithdrawalPayout: the authoritative amount owed at settlement.
    Re-runs the accrual calculator pinned at the actual settlement
    instant, which may be later than the notice date, so every day up to
    and including the partial final month is captured. By construction it
    equals Calculate at the same instant - one source of truth.
*/
package valuation

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalProjection answers what a withdrawal would pay out today.
type WithdrawalProjection struct {
	CanWithdraw        bool
	WithdrawableAmount decimal.Decimal
	PrincipalAmount    decimal.Decimal
	EarningsAmount     decimal.Decimal
	LockupEndDate      *time.Time
}

// WithdrawalAmount projects withdrawal amounts from an already-computed
// valuation. Inside the lock-up window it carries principal only.
func WithdrawalAmount(inv *Investment, v Valuation) WithdrawalProjection {
	principal := decimal.Zero
	if inv != nil {
		principal = inv.Amount
	}

	if !v.IsWithdrawable {
		return WithdrawalProjection{
			CanWithdraw:        false,
			WithdrawableAmount: decimal.Zero,
			PrincipalAmount:    principal,
			EarningsAmount:     decimal.Zero,
			LockupEndDate:      v.LockupEndDate,
		}
	}

	return WithdrawalProjection{
		CanWithdraw:        true,
		WithdrawableAmount: v.CurrentValue,
		PrincipalAmount:    principal,
		EarningsAmount:     v.TotalEarnings,
		LockupEndDate:      v.LockupEndDate,
	}
}

// FinalPayout is the settlement amount the platform owes the investor.
type FinalPayout struct {
	FinalValue      decimal.Decimal
	TotalEarnings   decimal.Decimal
	PrincipalAmount decimal.Decimal
	WithdrawalDate  time.Time
	MonthsElapsed   decimal.Decimal
}

// FinalWithdrawalPayout computes the settlement value at the actual
// withdrawal instant, including the partial final month.
func FinalWithdrawalPayout(inv *Investment, withdrawalDate time.Time) FinalPayout {
	if inv == nil {
		return FinalPayout{
			FinalValue:      decimal.Zero,
			TotalEarnings:   decimal.Zero,
			PrincipalAmount: decimal.Zero,
			WithdrawalDate:  withdrawalDate,
		}
	}
	if inv.ConfirmedAt == nil {
		return FinalPayout{
			FinalValue:      inv.Amount.Round(2),
			TotalEarnings:   decimal.Zero,
			PrincipalAmount: inv.Amount.Round(2),
			WithdrawalDate:  withdrawalDate,
		}
	}

	v := Calculate(inv, withdrawalDate)
	return FinalPayout{
		FinalValue:      v.CurrentValue,
		TotalEarnings:   v.TotalEarnings,
		PrincipalAmount: inv.Amount.Round(2),
		WithdrawalDate:  withdrawalDate,
		MonthsElapsed:   v.MonthsElapsed,
	}
}

// FinalWithdrawalPayoutAt is the ISO-timestamp entry point; unlike the
// display paths an explicit settlement instant is required.
func FinalWithdrawalPayoutAt(inv *Investment, withdrawalISO string) (FinalPayout, error) {
	withdrawalDate, err := ParseTimestamp(withdrawalISO)
	if err != nil {
		return FinalPayout{}, err
	}
	return FinalWithdrawalPayout(inv, withdrawalDate), nil
}
