// Package shared holds small collaborators used across the editor: the clock,
// id generators and the system clipboard.
package shared

import (
	"fmt"
	"sync"
	"time"
)

// Clock provides the current time. Use RealClock in production and
// FixedClock in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock is a manually advanced clock.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock returns a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// Now returns the stored time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// FormatRelativeTime returns a human-friendly relative timestamp using clock.
// Examples: "now", "5m ago", "3h ago", "2d ago", "1w ago", "3mo ago", "1y ago"
func FormatRelativeTime(t time.Time, clock Clock) string {
	return FormatRelativeTimeFrom(t, clock.Now())
}

// FormatRelativeTimeFrom returns a relative timestamp measured from now.
func FormatRelativeTimeFrom(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 4*7*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
