package id

import "studyplan/internal/platform/clock"

// Generator creates numeric identifiers for records.
type Generator interface {
	Next() int64
}

// TimeMillis derives ids from the wall clock in milliseconds. Two records
// created within the same millisecond still get distinct, increasing ids.
// This is not a distributed identifier; exactly one process mutates the
// planner's store at a time.
type TimeMillis struct {
	clk  clock.Clock
	last int64
}

func NewTimeMillis(clk clock.Clock) *TimeMillis {
	return &TimeMillis{clk: clk}
}

func (g *TimeMillis) Next() int64 {
	now := g.clk.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return now
}
