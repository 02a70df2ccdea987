package portfolio

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/investment-engine/valuation"
)

var (
	// ErrNotActive is returned when a withdrawal is requested for an
	// investment that is not in the active state.
	ErrNotActive = errors.New("investment must be active to withdraw")

	// ErrStillLocked is returned when the lock-up period has not ended.
	ErrStillLocked = errors.New("lockup period not ended")

	// ErrNoticeNotRunning is returned when completing or rejecting a
	// withdrawal for an investment that has no notice in flight.
	ErrNoticeNotRunning = errors.New("no withdrawal notice in progress")
)

// WithdrawalRecord is the bookkeeping row created when an investor requests
// a withdrawal. The requested amount is frozen at the notice-date value for
// settlement reference; the final payout is recomputed at settlement time.
type WithdrawalRecord struct {
	ID              string
	InvestmentID    string
	RequestedAmount decimal.Decimal
	RequestedAt     time.Time
	PayoutDueBy     time.Time
}

// =============================================================================
// WITHDRAWAL LIFECYCLE
// =============================================================================
// The valuation facade is a pure projection; the state transitions it leaves
// to "the caller" live here: notice start, the 90-day payout deadline,
// settlement, and rejection.

// RequestWithdrawal validates eligibility at the given instant and moves
// the investment into withdrawal_notice, stamping the notice start and the
// payout-due-by deadline.
func RequestWithdrawal(seq *Sequence, inv *valuation.Investment, asOf time.Time) (WithdrawalRecord, error) {
	if inv == nil || inv.Status != valuation.StatusActive {
		return WithdrawalRecord{}, ErrNotActive
	}

	v := valuation.Calculate(inv, asOf)
	if !v.IsWithdrawable {
		return WithdrawalRecord{}, ErrStillLocked
	}

	noticeStart := asOf
	dueBy := asOf.AddDate(0, 0, valuation.NoticeWindowDays)

	inv.Status = valuation.StatusWithdrawalNotice
	inv.WithdrawalNoticeStartAt = &noticeStart
	inv.PayoutDueBy = &dueBy

	return WithdrawalRecord{
		ID:              seq.WithdrawalID(),
		InvestmentID:    inv.ID,
		RequestedAmount: v.CurrentValue,
		RequestedAt:     noticeStart,
		PayoutDueBy:     dueBy,
	}, nil
}

// CompleteWithdrawal settles an in-notice investment at the given instant:
// computes the final payout, marks the investment withdrawn, and freezes
// the earnings snapshot so later valuations stop moving with time.
func CompleteWithdrawal(inv *valuation.Investment, settledAt time.Time) (valuation.FinalPayout, error) {
	if inv == nil || inv.Status != valuation.StatusWithdrawalNotice {
		return valuation.FinalPayout{}, ErrNoticeNotRunning
	}

	payout := valuation.FinalWithdrawalPayout(inv, settledAt)

	withdrawnAt := settledAt
	earnings := payout.TotalEarnings

	inv.Status = valuation.StatusWithdrawn
	inv.WithdrawnAt = &withdrawnAt
	inv.TotalEarnings = &earnings

	return payout, nil
}

// RejectWithdrawal cancels an in-flight notice and reverts the investment
// to active; accrual continues as if the request never happened.
func RejectWithdrawal(inv *valuation.Investment) error {
	if inv == nil || inv.Status != valuation.StatusWithdrawalNotice {
		return ErrNoticeNotRunning
	}

	inv.Status = valuation.StatusActive
	inv.WithdrawalNoticeStartAt = nil
	inv.PayoutDueBy = nil
	return nil
}
