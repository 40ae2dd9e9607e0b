package id

import (
	"testing"
	"time"
)

type stuckClock struct {
	now time.Time
}

func (c *stuckClock) Now() time.Time { return c.now }

func TestNextIsStrictlyIncreasingWithinOneMillisecond(t *testing.T) {
	t.Parallel()
	clk := &stuckClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	gen := NewTimeMillis(clk)

	base := clk.now.UnixMilli()
	first := gen.Next()
	if first != base {
		t.Fatalf("first id must be the wall clock, got %d want %d", first, base)
	}

	prev := first
	for i := 0; i < 10; i++ {
		next := gen.Next()
		if next <= prev {
			t.Fatalf("ids must strictly increase, got %d after %d", next, prev)
		}
		prev = next
	}
}

func TestNextFollowsAdvancingClock(t *testing.T) {
	t.Parallel()
	clk := &stuckClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	gen := NewTimeMillis(clk)

	first := gen.Next()
	clk.now = clk.now.Add(5 * time.Millisecond)
	second := gen.Next()
	if second != first+5 {
		t.Fatalf("advancing clock must drive the id, got %d want %d", second, first+5)
	}
}

func TestNextSurvivesClockGoingBackwards(t *testing.T) {
	t.Parallel()
	clk := &stuckClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	gen := NewTimeMillis(clk)

	first := gen.Next()
	clk.now = clk.now.Add(-time.Second)
	second := gen.Next()
	if second != first+1 {
		t.Fatalf("backwards clock must still yield the next id, got %d after %d", second, first)
	}
}
