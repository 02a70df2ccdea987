package valuation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/investment-engine/valuation"
)

func TestClassifyStatus_LifecycleLabels(t *testing.T) {
	asOf := date(2024, time.June, 1)

	cases := []struct {
		status   valuation.Status
		label    string
		isActive bool
		isLocked bool
	}{
		{valuation.StatusDraft, "Draft", false, false},
		{valuation.StatusPending, "Pending", false, true},
		{valuation.StatusWithdrawalNotice, "Withdrawal Processing", false, true},
		{valuation.StatusWithdrawn, "Withdrawn", false, false},
		{valuation.Status("garbage"), "Processing", false, false},
	}

	for _, tc := range cases {
		inv := investment(10000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2024, time.January, 1))
		inv.Status = tc.status

		info := valuation.ClassifyStatus(inv, asOf)

		assert.Equal(t, tc.label, info.Label, "status %s", tc.status)
		assert.Equal(t, tc.isActive, info.IsActive, "status %s", tc.status)
		assert.Equal(t, tc.isLocked, info.IsLocked, "status %s", tc.status)
	}
}

func TestClassifyStatus_ActiveInsideLockup(t *testing.T) {
	// GIVEN: active investment still inside its lock-up window
	// THEN: labeled Locked, active, locked, with the lock-up end echoed
	inv := investment(10000, valuation.Lockup3Year, valuation.FrequencyCompounding, date(2024, time.January, 1))

	info := valuation.ClassifyStatus(inv, date(2025, time.January, 1))

	assert.Equal(t, "Locked", info.Label)
	assert.True(t, info.IsActive)
	assert.True(t, info.IsLocked)
	require.NotNil(t, info.LockupEndDate)
	assert.Equal(t, date(2027, time.January, 1), *info.LockupEndDate)
}

func TestClassifyStatus_ActivePastLockup(t *testing.T) {
	inv := investment(10000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2023, time.January, 1))

	info := valuation.ClassifyStatus(inv, date(2024, time.June, 1))

	assert.Equal(t, "Available for Withdrawal", info.Label)
	assert.True(t, info.IsActive)
	assert.False(t, info.IsLocked)
}

func TestClassifyStatus_NilInvestment(t *testing.T) {
	info := valuation.ClassifyStatus(nil, date(2024, time.June, 1))
	assert.Equal(t, "Processing", info.Label)
	assert.False(t, info.IsActive)
}

func TestClassifyStatusAt_InvalidTimestamp(t *testing.T) {
	inv := investment(10000, valuation.Lockup1Year, valuation.FrequencyCompounding, date(2023, time.January, 1))

	_, err := valuation.ClassifyStatusAt(inv, "2024-13-45")
	assert.ErrorIs(t, err, valuation.ErrInvalidTimestamp)
}
