package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestPastDeadline(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before", deadline.Add(-time.Minute), false},
		{"exactly at", deadline, true},
		{"after", deadline.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PastDeadline(tt.now, deadline); got != tt.want {
				t.Errorf("PastDeadline() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)

	if got := Remaining(deadline.Add(-90*time.Second), deadline); got != 90*time.Second {
		t.Errorf("Remaining() = %v, want 90s", got)
	}
	if got := Remaining(deadline.Add(time.Hour), deadline); got != 0 {
		t.Errorf("Remaining() after deadline = %v, want 0", got)
	}
}

func TestLockoutLatches(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	clk := clockwork.NewFakeClockAt(deadline.Add(-time.Minute))
	l := NewLockoutWithClock(deadline, clk)

	if l.Locked() {
		t.Fatal("Locked() = true before deadline")
	}
	if l.Remaining() != time.Minute {
		t.Errorf("Remaining() = %v, want 1m", l.Remaining())
	}

	clk.Advance(2 * time.Minute)
	if !l.Locked() {
		t.Fatal("Locked() = false after deadline")
	}
	if l.Remaining() != 0 {
		t.Errorf("Remaining() = %v after lockout, want 0", l.Remaining())
	}
}

func TestLockoutNeverReopens(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	clk := clockwork.NewFakeClockAt(deadline.Add(time.Second))
	l := NewLockoutWithClock(deadline, clk)

	if !l.Locked() {
		t.Fatal("Locked() = false after deadline")
	}

	// A clock stepping backwards must not unlock the night.
	clk2 := clockwork.NewFakeClockAt(deadline.Add(-time.Hour))
	l.clock = clk2
	if !l.Locked() {
		t.Error("Locked() reopened after clock moved backwards")
	}
}
