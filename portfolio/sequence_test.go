package portfolio_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian/investment-engine/portfolio"
)

func TestSequence_SeededRangesPerKind(t *testing.T) {
	seq := portfolio.NewSequence()

	assert.Equal(t, "USR-1001", seq.UserID())
	assert.Equal(t, "USR-1002", seq.UserID())
	assert.Equal(t, "INV-10001", seq.InvestmentID())
	assert.Equal(t, "WD-10001", seq.WithdrawalID())
	assert.Equal(t, "TXN-100001", seq.TransactionID())

	// Kinds count independently.
	assert.Equal(t, "INV-10002", seq.InvestmentID())
	assert.Equal(t, "WD-10002", seq.WithdrawalID())
}

func TestSequence_ConcurrentIssuesAreUnique(t *testing.T) {
	seq := portfolio.NewSequence()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.InvestmentID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
