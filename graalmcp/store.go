package graalmcp

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/graalign/graalign/domain"
)

// resultStore keeps completed align_pdgs runs in memory so describe_alignment
// can summarize one without re-running the alignment.
type resultStore struct {
	mu      sync.Mutex
	counter uint64
	runs    map[string]*domain.AlignResponse
}

func newResultStore() *resultStore {
	return &resultStore{runs: make(map[string]*domain.AlignResponse)}
}

func (s *resultStore) put(resp *domain.AlignResponse) string {
	id := fmt.Sprintf("run-%d", atomic.AddUint64(&s.counter, 1))
	s.mu.Lock()
	s.runs[id] = resp
	s.mu.Unlock()
	return id
}

func (s *resultStore) get(id string) (*domain.AlignResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.runs[id]
	return resp, ok
}
