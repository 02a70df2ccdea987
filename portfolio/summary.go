/*
Package portfolio is the caller-side layer around the valuation engine:
dashboard aggregation, withdrawal lifecycle bookkeeping, distribution
schedules, and paid-vs-accrued reconciliation.

The engine values ONE investment at ONE instant; this package holds the
rules for combining those values coherently - above all, that everything
in a single view is computed from a single as-of instant.
*/
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/investment-engine/valuation"
)

// =============================================================================
// PORTFOLIO SUMMARY
// =============================================================================

// Position pairs an investment with its valuation and display status, all
// computed at the summary's shared instant.
type Position struct {
	Investment *valuation.Investment
	Valuation  valuation.Valuation
	Status     valuation.StatusInfo
}

// Summary is the dashboard view of a whole portfolio at one instant.
type Summary struct {
	AsOf time.Time

	// Committed principal: everything except drafts, rejections, and
	// already-returned (withdrawn) investments.
	TotalPrincipal decimal.Decimal

	// Current value and lifetime earnings over the same positions.
	TotalValue    decimal.Decimal
	TotalEarnings decimal.Decimal

	ActiveCount       int
	WithdrawableCount int

	Positions []Position
}

// Summarize values every investment at the single shared instant. Callers
// holding a virtual clock must snapshot it once and pass that reading; the
// totals and the per-position breakdown are only coherent because every
// number below comes from the same asOf.
func Summarize(investments []*valuation.Investment, asOf time.Time) Summary {
	s := Summary{
		AsOf:           asOf,
		TotalPrincipal: decimal.Zero,
		TotalValue:     decimal.Zero,
		TotalEarnings:  decimal.Zero,
	}

	for _, inv := range investments {
		if inv == nil {
			continue
		}
		v := valuation.Calculate(inv, asOf)
		info := valuation.ClassifyStatus(inv, asOf)
		s.Positions = append(s.Positions, Position{Investment: inv, Valuation: v, Status: info})

		switch inv.Status {
		case valuation.StatusDraft, valuation.StatusRejected, valuation.StatusWithdrawn:
			// Not committed money (or already returned): listed, not totalled.
		default:
			s.TotalPrincipal = s.TotalPrincipal.Add(inv.Amount)
			s.TotalValue = s.TotalValue.Add(v.CurrentValue)
			s.TotalEarnings = s.TotalEarnings.Add(v.TotalEarnings)
		}

		if inv.Status == valuation.StatusActive {
			s.ActiveCount++
			if v.IsWithdrawable {
				s.WithdrawableCount++
			}
		}
	}

	s.TotalPrincipal = s.TotalPrincipal.Round(2)
	s.TotalValue = s.TotalValue.Round(2)
	s.TotalEarnings = s.TotalEarnings.Round(2)
	return s
}
