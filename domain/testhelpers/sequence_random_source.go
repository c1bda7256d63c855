package testhelpers

import (
	"errors"
	"sync"
)

// ErrSequenceExhausted is returned once every queued draw has been handed out
var ErrSequenceExhausted = errors.New("no more queued draws")

// SequenceRandomSource replays fixed draws in order, ignoring the requested range
type SequenceRandomSource struct {
	mu    sync.Mutex
	draws [][]int
	calls int
}

// NewSequenceRandomSource queues the given draws
func NewSequenceRandomSource(draws ...[]int) *SequenceRandomSource {
	return &SequenceRandomSource{draws: draws}
}

func (s *SequenceRandomSource) PickUniqueNumbersInRange(min, max, count int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calls >= len(s.draws) {
		return nil, ErrSequenceExhausted
	}
	draw := make([]int, len(s.draws[s.calls]))
	copy(draw, s.draws[s.calls])
	s.calls++
	return draw, nil
}

// Calls returns how many draws have been handed out
func (s *SequenceRandomSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
