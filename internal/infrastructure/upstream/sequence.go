package upstream

import (
	"sync"
)

// Sequencer issues monotonically increasing request tokens per UI region so
// a slow response that arrives after a newer request for the same region can
// be detected and discarded instead of overwriting fresher state.
type Sequencer struct {
	mu      sync.Mutex
	regions map[string]uint64
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{regions: make(map[string]uint64)}
}

// Next registers a new request for the region and returns its token.
func (s *Sequencer) Next(region string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[region]++
	return s.regions[region]
}

// IsCurrent reports whether the token still names the latest request for
// the region. A false return means the response it guards is stale.
func (s *Sequencer) IsCurrent(region string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regions[region] == token
}
