package history

import (
	"context"
	"sync"
	"time"
)

// DefaultCapacity is the retention bound of the in-memory store.
const DefaultCapacity = 100

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the newest entries in process memory, evicting the
// oldest once capacity is reached. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []Entry // oldest first
	capacity int
	now      func() time.Time
}

// MemoryOption mutates memory store construction.
type MemoryOption func(*MemoryStore)

// WithCapacity bounds retention. Non-positive values keep DefaultCapacity.
func WithCapacity(n int) MemoryOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithNow replaces the timestamp source used to stamp entries.
func WithNow(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore builds an empty store with DefaultCapacity.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Record implements Store.
func (s *MemoryStore) Record(ctx context.Context, e Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e = Stamp(e, s.now())
	s.entries = append(s.entries, e)
	if over := len(s.entries) - s.capacity; over > 0 {
		s.entries = s.entries[over:]
	}
	return e, nil
}

// Recent implements Store.
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := limit
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Stats implements Store.
func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{TotalScans: len(s.entries)}
	for _, e := range s.entries {
		if e.Verdict == VerdictPhishing {
			stats.PhishingDetected++
		}
	}
	return stats, nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}
