package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/investment-engine/portfolio"
	"github.com/meridian/investment-engine/scenario"
	"github.com/meridian/investment-engine/valuation"
)

func TestList_CatalogIsStable(t *testing.T) {
	list := scenario.List()
	require.NotEmpty(t, list)

	// Returned slice is a copy; mutating it must not poison the catalog.
	list[0].Name = "mutated"
	assert.NotEqual(t, "mutated", scenario.List()[0].Name)
}

func TestLoad_EveryCatalogEntryBuilds(t *testing.T) {
	for _, s := range scenario.List() {
		f, err := scenario.Load(s.ID)
		require.NoError(t, err, "scenario %s", s.ID)

		assert.Equal(t, s.ID, f.Scenario.ID)
		assert.Equal(t, s.Name, f.Scenario.Name)
		assert.NotEmpty(t, f.Investments, "scenario %s", s.ID)
		assert.False(t, f.AsOf.IsZero(), "scenario %s", s.ID)

		// Every fixture must summarize cleanly at its suggested instant.
		summary := portfolio.Summarize(f.Investments, f.AsOf)
		assert.Len(t, summary.Positions, len(f.Investments), "scenario %s", s.ID)
	}
}

func TestLoad_UnknownID(t *testing.T) {
	_, err := scenario.Load("does-not-exist")
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)
}

func TestLoad_FixturesAreIndependent(t *testing.T) {
	// Two loads of the same scenario must not share investment pointers: a
	// demo that mutates one (e.g. completes a withdrawal) must not leak
	// into the next load.
	first, err := scenario.Load("matured")
	require.NoError(t, err)
	second, err := scenario.Load("matured")
	require.NoError(t, err)

	first.Investments[0].Status = valuation.StatusWithdrawn
	assert.Equal(t, valuation.StatusActive, second.Investments[0].Status)
}

func TestLoad_MaturedIsWithdrawable(t *testing.T) {
	f, err := scenario.Load("matured")
	require.NoError(t, err)

	v := valuation.Calculate(f.Investments[0], f.AsOf)
	assert.True(t, v.IsWithdrawable)
	assert.True(t, v.TotalEarnings.IsPositive())
}

func TestLoad_WithdrawalFlowStates(t *testing.T) {
	f, err := scenario.Load("withdrawal-flow")
	require.NoError(t, err)
	require.Len(t, f.Investments, 2)

	inNotice, settled := f.Investments[0], f.Investments[1]

	assert.Equal(t, valuation.StatusWithdrawalNotice, inNotice.Status)
	require.NotNil(t, inNotice.PayoutDueBy)
	assert.Equal(t, inNotice.WithdrawalNoticeStartAt.AddDate(0, 0, 90), *inNotice.PayoutDueBy)

	// The settled position renders its frozen snapshot regardless of asOf.
	v := valuation.Calculate(settled, f.AsOf)
	later := valuation.Calculate(settled, f.AsOf.AddDate(2, 0, 0))
	assert.True(t, v.CurrentValue.Equal(later.CurrentValue))
	require.NotNil(t, settled.TotalEarnings)
	assert.True(t, v.TotalEarnings.Equal(settled.TotalEarnings.Round(2)))
}

func TestLoad_MixedPortfolioCoversLifecycle(t *testing.T) {
	f, err := scenario.Load("mixed-portfolio")
	require.NoError(t, err)

	seen := make(map[valuation.Status]bool)
	for _, inv := range f.Investments {
		seen[inv.Status] = true
	}
	for _, status := range []valuation.Status{
		valuation.StatusDraft,
		valuation.StatusPending,
		valuation.StatusActive,
		valuation.StatusWithdrawn,
	} {
		assert.True(t, seen[status], "missing status %s", status)
	}
}
