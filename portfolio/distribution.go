/*
distribution.go - Monthly payout schedule and reconciliation

PURPOSE:
  Monthly-frequency investments pay a flat distribution at the end of every
  completed accrual month. Two concerns live here:

  MonthlyPayoutSchedule: projects the distribution rows a payout run should
    produce through a given instant (the admin payout queue).

  Reconcile: the engine's TotalEarnings for monthly investments is an
    accrual PROJECTION; the actually-paid distribution ledger can lag it
    (a delayed payout run). When both exist the ledger's paid sum is the
    number a dashboard should prefer - Reconcile makes that policy explicit
    instead of leaving each caller to pick.
*/
package portfolio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridian/investment-engine/valuation"
)

// =============================================================================
// DISTRIBUTION RECORDS
// =============================================================================

type DistributionStatus string

const (
	DistributionPending DistributionStatus = "pending"
	DistributionPaid    DistributionStatus = "paid"
	DistributionSkipped DistributionStatus = "skipped"
)

// Distribution is one monthly payout row for a monthly-frequency investment.
type Distribution struct {
	ID           string
	InvestmentID string
	Date         time.Time
	Amount       decimal.Decimal
	Status       DistributionStatus
}

// MonthlyPayoutSchedule projects the distributions owed through the given
// instant: one per completed accrual month, dated at the month's last day,
// each for the flat monthly amount. Returns nil for compounding investments
// and for anything not yet accruing.
func MonthlyPayoutSchedule(inv *valuation.Investment, through time.Time) []Distribution {
	if inv == nil || inv.PaymentFrequency != valuation.FrequencyMonthly {
		return nil
	}
	if !inv.Status.Accrues() || inv.ConfirmedAt == nil {
		return nil
	}

	// Settled investments stop distributing at the withdrawal instant.
	end := through
	if inv.WithdrawnAt != nil && inv.WithdrawnAt.Before(end) {
		end = *inv.WithdrawnAt
	}

	start := inv.AccrualStart()
	segments := valuation.BuildSegments(*start, valuation.ToUTCStartOfDay(end))
	flat := inv.MonthlyInterest()

	var schedule []Distribution
	for _, seg := range segments {
		if seg.Kind != valuation.SegmentFull {
			continue
		}
		schedule = append(schedule, Distribution{
			ID:           uuid.NewString(),
			InvestmentID: inv.ID,
			Date:         seg.End,
			Amount:       flat,
			Status:       DistributionPending,
		})
	}
	return schedule
}

// =============================================================================
// RECONCILIATION
// =============================================================================

// Reconciliation compares the engine's accrued projection against the paid
// distribution ledger for one investment.
type Reconciliation struct {
	InvestmentID string
	AsOf         time.Time

	// AccruedEarnings is the engine's time-based projection.
	AccruedEarnings decimal.Decimal

	// PaidTotal and PendingTotal sum the ledger by status.
	PaidTotal    decimal.Decimal
	PendingTotal decimal.Decimal

	// Outstanding is accrued minus paid: what a payout run still owes.
	Outstanding decimal.Decimal

	// Preferred is the figure a dashboard should display: the ledger's
	// paid sum when a ledger was supplied, the accrual projection
	// otherwise.
	Preferred     decimal.Decimal
	LedgerPresent bool
}

// Reconcile sums the supplied distribution ledger (entries for other
// investments are ignored) against the valuation at asOf.
func Reconcile(inv *valuation.Investment, ledger []Distribution, asOf time.Time) Reconciliation {
	v := valuation.Calculate(inv, asOf)

	rec := Reconciliation{
		AsOf:            asOf,
		AccruedEarnings: v.TotalEarnings,
		PaidTotal:       decimal.Zero,
		PendingTotal:    decimal.Zero,
		LedgerPresent:   ledger != nil,
	}
	if inv != nil {
		rec.InvestmentID = inv.ID
	}

	for _, dist := range ledger {
		if inv == nil || dist.InvestmentID != inv.ID {
			continue
		}
		switch dist.Status {
		case DistributionPaid:
			rec.PaidTotal = rec.PaidTotal.Add(dist.Amount)
		case DistributionPending:
			rec.PendingTotal = rec.PendingTotal.Add(dist.Amount)
		}
	}

	rec.Outstanding = rec.AccruedEarnings.Sub(rec.PaidTotal).Round(2)
	if rec.LedgerPresent {
		rec.Preferred = rec.PaidTotal.Round(2)
	} else {
		rec.Preferred = rec.AccruedEarnings
	}
	return rec
}
