/*
Package clock provides the admin-controlled virtual clock ("time machine").

PURPOSE:
  The whole platform is replayable against arbitrary instants: an admin can
  pin "now" to any past or future timestamp and every valuation follows.
  The valuation engine itself stays pure - it only ever sees a time.Time
  parameter - so this package is where the process-wide mutable state lives.

SNAPSHOT RULE:
  Two reads of a virtual clock may legitimately disagree (an admin can move
  it between them). Callers must read Now() ONCE per request and pass that
  same instant to every calculation in the request; a portfolio summary and
  its per-investment breakdown must never mix clock readings.

SEE ALSO:
  - valuation: consumes the snapshotted instant
  - cmd/simulator: pins the clock from a flag before rendering
*/
package clock

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meridian/investment-engine/valuation"
)

// Clock yields the current application time. Production call sites should
// hold a Clock rather than calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// SystemClock follows wall-clock time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// =============================================================================
// VIRTUAL CLOCK
// =============================================================================

// VirtualClock follows wall-clock time until an admin pins an override.
// Safe for concurrent use.
type VirtualClock struct {
	mu       sync.RWMutex
	override *time.Time
	logger   *zap.Logger
}

// NewVirtualClock creates an unpinned clock. A nil logger is replaced with
// a no-op logger.
func NewVirtualClock(logger *zap.Logger) *VirtualClock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VirtualClock{logger: logger}
}

// Now returns the override when pinned, wall-clock UTC otherwise.
func (c *VirtualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return *c.override
	}
	return time.Now().UTC()
}

// Set pins application time to the given instant.
func (c *VirtualClock) Set(t time.Time) {
	u := t.UTC()
	c.mu.Lock()
	c.override = &u
	c.mu.Unlock()
	c.logger.Info("app time pinned", zap.Time("app_time", u))
}

// SetISO pins application time from an ISO-8601 timestamp. Invalid input
// returns valuation.ErrInvalidTimestamp and leaves the clock untouched.
func (c *VirtualClock) SetISO(value string) error {
	t, err := valuation.ParseTimestamp(value)
	if err != nil {
		return err
	}
	c.Set(t)
	return nil
}

// Reset removes the override; the clock follows wall-clock time again.
func (c *VirtualClock) Reset() {
	c.mu.Lock()
	c.override = nil
	c.mu.Unlock()
	c.logger.Info("app time reset to real time")
}

// =============================================================================
// STATUS
// =============================================================================

// Status reports the clock state for admin display.
type Status struct {
	AppTime    time.Time
	RealTime   time.Time
	Overridden bool
}

func (c *VirtualClock) Status() Status {
	real := time.Now().UTC()
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.override != nil {
		return Status{AppTime: *c.override, RealTime: real, Overridden: true}
	}
	return Status{AppTime: real, RealTime: real, Overridden: false}
}
