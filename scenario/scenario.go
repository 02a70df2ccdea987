/*
Package scenario provides pre-built investor fixtures for demos and tests.

Each scenario seeds a small portfolio with deterministic confirmation dates
plus a suggested instant to pin the virtual clock at, so a demo renders the
same numbers every run. Scenarios are pure data - no database, no clock
reads - which is also what makes them usable from tests.

ADDING A SCENARIO:
 1. Add an entry to the catalog with ID, name, description
 2. Write a build function returning the Fixture
 3. Add its case to Load
*/
package scenario

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/investment-engine/portfolio"
	"github.com/meridian/investment-engine/valuation"
)

// ErrUnknownScenario is returned by Load for an ID not in the catalog.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario describes one catalog entry.
type Scenario struct {
	ID          string
	Name        string
	Description string
}

// Fixture is a loaded scenario: the investments plus the instant the
// virtual clock should be pinned at.
type Fixture struct {
	Scenario    Scenario
	Investments []*valuation.Investment

	// AsOf is the suggested clock pin; demos may override it.
	AsOf time.Time
}

var catalog = []Scenario{
	{ID: "new-investor", Name: "New Investor", Description: "Single compounding 3-year investment, one month in"},
	{ID: "monthly-income", Name: "Monthly Income", Description: "Monthly-payout 1-year investment, mid-term"},
	{ID: "matured", Name: "Matured", Description: "1-year investment past its lock-up, available for withdrawal"},
	{ID: "withdrawal-flow", Name: "Withdrawal Flow", Description: "One notice in flight, one settled with frozen earnings"},
	{ID: "mixed-portfolio", Name: "Mixed Portfolio", Description: "Every lifecycle state side by side"},
}

// List returns the scenario catalog.
func List() []Scenario {
	out := make([]Scenario, len(catalog))
	copy(out, catalog)
	return out
}

// Load builds the fixture for a scenario ID.
func Load(id string) (*Fixture, error) {
	var build func() *Fixture
	switch id {
	case "new-investor":
		build = newInvestor
	case "monthly-income":
		build = monthlyIncome
	case "matured":
		build = matured
	case "withdrawal-flow":
		build = withdrawalFlow
	case "mixed-portfolio":
		build = mixedPortfolio
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}

	f := build()
	for _, s := range catalog {
		if s.ID == id {
			f.Scenario = s
			break
		}
	}
	return f, nil
}

// =============================================================================
// BUILDERS
// =============================================================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func active(seq *portfolio.Sequence, amount int64, lockup valuation.LockupPeriod, freq valuation.PaymentFrequency, confirmed time.Time) *valuation.Investment {
	return &valuation.Investment{
		ID:               seq.InvestmentID(),
		Amount:           decimal.NewFromInt(amount),
		LockupPeriod:     lockup,
		PaymentFrequency: freq,
		Status:           valuation.StatusActive,
		ConfirmedAt:      &confirmed,
	}
}

func newInvestor() *Fixture {
	seq := portfolio.NewSequence()
	return &Fixture{
		Investments: []*valuation.Investment{
			active(seq, 10000, valuation.Lockup3Year, valuation.FrequencyCompounding, date(2024, time.January, 1)),
		},
		AsOf: date(2024, time.February, 1),
	}
}

func monthlyIncome() *Fixture {
	seq := portfolio.NewSequence()
	return &Fixture{
		Investments: []*valuation.Investment{
			active(seq, 25000, valuation.Lockup1Year, valuation.FrequencyMonthly, date(2024, time.March, 15)),
		},
		AsOf: date(2024, time.September, 1),
	}
}

func matured() *Fixture {
	seq := portfolio.NewSequence()
	return &Fixture{
		Investments: []*valuation.Investment{
			active(seq, 50000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2023, time.January, 1)),
		},
		AsOf: date(2024, time.June, 1),
	}
}

func withdrawalFlow() *Fixture {
	seq := portfolio.NewSequence()
	asOf := date(2024, time.August, 1)

	// Notice in flight: matured 1-year investment, notice filed at lock-up end.
	inNotice := active(seq, 20000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2023, time.May, 10))
	noticeStart := date(2024, time.June, 1)
	dueBy := noticeStart.AddDate(0, 0, valuation.NoticeWindowDays)
	inNotice.Status = valuation.StatusWithdrawalNotice
	inNotice.WithdrawalNoticeStartAt = &noticeStart
	inNotice.PayoutDueBy = &dueBy

	// Already settled: earnings frozen at the withdrawal instant.
	settled := active(seq, 15000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2022, time.March, 1))
	withdrawnAt := date(2023, time.April, 15)
	frozenEarnings := decimal.NewFromFloat(1379.81)
	settled.Status = valuation.StatusWithdrawn
	settled.WithdrawnAt = &withdrawnAt
	settled.TotalEarnings = &frozenEarnings

	return &Fixture{
		Investments: []*valuation.Investment{inNotice, settled},
		AsOf:        asOf,
	}
}

func mixedPortfolio() *Fixture {
	seq := portfolio.NewSequence()
	asOf := date(2024, time.October, 1)

	draft := &valuation.Investment{
		ID:               seq.InvestmentID(),
		Amount:           decimal.NewFromInt(5000),
		LockupPeriod:     valuation.Lockup1Year,
		PaymentFrequency: valuation.FrequencyCompounding,
		Status:           valuation.StatusDraft,
	}
	pending := &valuation.Investment{
		ID:               seq.InvestmentID(),
		Amount:           decimal.NewFromInt(7500),
		LockupPeriod:     valuation.Lockup3Year,
		PaymentFrequency: valuation.FrequencyMonthly,
		Status:           valuation.StatusPending,
	}

	compounding := active(seq, 10000, valuation.Lockup3Year, valuation.FrequencyCompounding, date(2024, time.January, 1))
	income := active(seq, 30000, valuation.Lockup1Year, valuation.FrequencyMonthly, date(2024, time.February, 20))

	settled := active(seq, 12000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2022, time.June, 1))
	withdrawnAt := date(2023, time.July, 1)
	frozenEarnings := decimal.NewFromFloat(1042.3)
	settled.Status = valuation.StatusWithdrawn
	settled.WithdrawnAt = &withdrawnAt
	settled.TotalEarnings = &frozenEarnings

	return &Fixture{
		Investments: []*valuation.Investment{draft, pending, compounding, income, settled},
		AsOf:        asOf,
	}
}
