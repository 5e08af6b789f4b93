package services

import "sync"

// IDSequence issues record ids for one process. Each id is strictly greater
// than every id issued before and every id already present in the target
// collection, so a removed id is never handed out again.
type IDSequence struct {
	mu   sync.Mutex
	last int64
}

// NewIDSequence creates a sequence whose first id is above start.
func NewIDSequence(start int64) *IDSequence {
	return &IDSequence{last: start}
}

// Next returns a fresh id above both the last issued id and max(existing).
func (s *IDSequence) Next(existing []int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	floor := s.last
	for _, id := range existing {
		if id > floor {
			floor = id
		}
	}
	s.last = floor + 1
	return s.last
}
