// Package turntimer tracks how long each participant of a tabletop game
// spends on their turns.
package turntimer

import (
	"container/heap"
	"slices"
	"time"
)

// DefaultMinTurn is the shortest turn that still counts toward statistics.
// Shorter turns are treated as a quick press to skip ahead.
const DefaultMinTurn = 700 * time.Millisecond

// durationHeap is a max-heap of completed turn durations.
type durationHeap []time.Duration

func (h durationHeap) Len() int           { return len(h) }
func (h durationHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h durationHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *durationHeap) Push(x any) { *h = append(*h, x.(time.Duration)) }

func (h *durationHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TurnStats holds the in-progress turn and the completed turns of one participant.
type TurnStats struct {
	current   time.Duration
	completed durationHeap
}

// Tick adds elapsed time to the in-progress turn.
func (s *TurnStats) Tick(elapsed time.Duration) {
	s.current += elapsed
}

// EndTurn finalizes the in-progress turn. The turn is recorded only if it
// lasted at least minTurn; the in-progress duration is reset either way.
func (s *TurnStats) EndTurn(minTurn time.Duration) {
	if s.current >= minTurn {
		heap.Push(&s.completed, s.current)
	}
	s.current = 0
}

// Current returns the in-progress turn duration.
func (s *TurnStats) Current() time.Duration {
	return s.current
}

// Completed returns the number of recorded turns.
func (s *TurnStats) Completed() int {
	return len(s.completed)
}

// NumTurns counts recorded turns plus the in-progress one when it is non-zero.
func (s *TurnStats) NumTurns() int {
	n := len(s.completed)
	if s.current > 0 {
		n++
	}
	return n
}

// MaxTurn returns the longest turn, including the in-progress one.
func (s *TurnStats) MaxTurn() (time.Duration, bool) {
	var (
		best time.Duration
		ok   bool
	)
	if len(s.completed) > 0 {
		best, ok = s.completed[0], true
	}
	if s.current > 0 && (!ok || s.current > best) {
		best, ok = s.current, true
	}
	return best, ok
}

// MedianTurn returns the median turn, including the in-progress one.
// Even counts average the two middle values. The receiver is not modified.
func (s *TurnStats) MedianTurn() (time.Duration, bool) {
	turns := make([]time.Duration, 0, len(s.completed)+1)
	turns = append(turns, s.completed...)
	if s.current > 0 {
		turns = append(turns, s.current)
	}
	if len(turns) == 0 {
		return 0, false
	}
	slices.Sort(turns)

	mid := len(turns) / 2
	if len(turns)%2 == 0 {
		return (turns[mid-1] + turns[mid]) / 2, true
	}
	return turns[mid], true
}
