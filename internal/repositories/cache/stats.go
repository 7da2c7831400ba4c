package cache

import (
	"sync"
	"sync/atomic"

	keys "storeadmin/internal/utils/cache"
)

type counter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats counts cache hits and misses per query op.
type Stats struct {
	mu  sync.RWMutex
	ops map[keys.QueryOp]*counter
}

func NewStats() *Stats {
	return &Stats{ops: make(map[keys.QueryOp]*counter)}
}

func (s *Stats) Hit(key string) {
	s.counter(keys.OpOf(key)).hits.Add(1)
}

func (s *Stats) Miss(key string) {
	s.counter(keys.OpOf(key)).misses.Add(1)
}

func (s *Stats) counter(op keys.QueryOp) *counter {
	s.mu.RLock()
	c, ok := s.ops[op]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.ops[op]; !ok {
		c = &counter{}
		s.ops[op] = c
	}
	return c
}

// OpStats is a snapshot of one op's counters.
type OpStats struct {
	Hits   int64   `json:"hits"`
	Misses int64   `json:"misses"`
	Ratio  float64 `json:"ratio"`
}

// Snapshot returns the counters per op plus a "total" entry.
func (s *Stats) Snapshot() map[string]OpStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]OpStats, len(s.ops)+1)
	var hits, misses int64
	for op, c := range s.ops {
		h, m := c.hits.Load(), c.misses.Load()
		hits += h
		misses += m
		name := string(op)
		if name == "" {
			name = "other"
		}
		out[name] = OpStats{Hits: h, Misses: m, Ratio: ratio(h, m)}
	}
	out["total"] = OpStats{Hits: hits, Misses: misses, Ratio: ratio(hits, misses)}
	return out
}

func ratio(hits, misses int64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses) * 100
}
