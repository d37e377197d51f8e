package results

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps results in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	keep    int
	byID    map[string]Result
	recent  []string // newest first
	fastest []Result
}

// NewMemoryStore keeps at most keep entries in each list; keep <= 0 means unbounded.
func NewMemoryStore(keep int) *MemoryStore {
	return &MemoryStore{
		keep: keep,
		byID: make(map[string]Result),
	}
}

func (s *MemoryStore) Save(_ context.Context, r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[r.ID] = r
	s.recent = append([]string{r.ID}, s.recent...)
	if s.keep > 0 && len(s.recent) > s.keep {
		s.recent = s.recent[:s.keep]
	}

	if r.Won() {
		s.fastest = append(s.fastest, r)
		sort.SliceStable(s.fastest, func(i, j int) bool {
			if s.fastest[i].Duration != s.fastest[j].Duration {
				return s.fastest[i].Duration < s.fastest[j].Duration
			}
			return s.fastest[i].ID < s.fastest[j].ID
		})
		if s.keep > 0 && len(s.fastest) > s.keep {
			s.fastest = s.fastest[:s.keep]
		}
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return Result{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) Fastest(_ context.Context, n int) ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n = clamp(n, len(s.fastest))
	out := make([]Result, n)
	copy(out, s.fastest[:n])
	return out, nil
}

func (s *MemoryStore) Recent(_ context.Context, n int) ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n = clamp(n, len(s.recent))
	out := make([]Result, 0, n)
	for _, id := range s.recent[:n] {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
