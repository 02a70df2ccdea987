package portfolio

import (
	"fmt"
	"sync"
)

// Sequence issues human-readable sequential IDs per record kind
// (USR-1001, INV-10001, WD-10001, TXN-100001). Safe for concurrent use.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int
}

// Seed values keep each kind in a visually distinct range.
var sequenceSeeds = map[string]int{
	"user":        1000,
	"investment":  10000,
	"withdrawal":  10000,
	"transaction": 100000,
}

func NewSequence() *Sequence {
	return &Sequence{counters: make(map[string]int)}
}

func (s *Sequence) next(kind, prefix string, pad int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counters[kind]; !ok {
		s.counters[kind] = sequenceSeeds[kind]
	}
	s.counters[kind]++
	return fmt.Sprintf("%s%0*d", prefix, pad, s.counters[kind])
}

func (s *Sequence) UserID() string        { return s.next("user", "USR-", 4) }
func (s *Sequence) InvestmentID() string  { return s.next("investment", "INV-", 5) }
func (s *Sequence) WithdrawalID() string  { return s.next("withdrawal", "WD-", 5) }
func (s *Sequence) TransactionID() string { return s.next("transaction", "TXN-", 6) }
