// Package clock implements the wall-clock lockout for the party. Once the
// configured deadline passes, every participant's picks are frozen for the
// rest of the night regardless of their individual lock state.
package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// PastDeadline reports whether now is at or after the deadline.
func PastDeadline(now, deadline time.Time) bool {
	return !now.Before(deadline)
}

// Remaining returns the time left until the deadline, clamped at zero.
func Remaining(now, deadline time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Lockout tracks whether the deadline has passed. The latch only moves from
// open to locked; a clock that later reads before the deadline (NTP step,
// clock skew) never reopens it.
type Lockout struct {
	deadline time.Time
	clock    clockwork.Clock

	mu      sync.Mutex
	latched bool
}

// NewLockout creates a lockout for the given deadline using the real clock.
func NewLockout(deadline time.Time) *Lockout {
	return NewLockoutWithClock(deadline, clockwork.NewRealClock())
}

// NewLockoutWithClock creates a lockout with an injectable clock for tests.
func NewLockoutWithClock(deadline time.Time, clk clockwork.Clock) *Lockout {
	return &Lockout{deadline: deadline, clock: clk}
}

// Deadline returns the configured deadline.
func (l *Lockout) Deadline() time.Time {
	return l.deadline
}

// Locked checks the clock against the deadline and returns whether the
// lockout is in effect. The first passing check latches it permanently.
func (l *Lockout) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.latched {
		return true
	}
	if PastDeadline(l.clock.Now(), l.deadline) {
		l.latched = true
	}
	return l.latched
}

// Remaining returns the time left before the lockout, zero once latched.
func (l *Lockout) Remaining() time.Duration {
	if l.Locked() {
		return 0
	}
	return Remaining(l.clock.Now(), l.deadline)
}
