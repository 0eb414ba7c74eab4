package flog

import "sync/atomic"

// Counters use atomics so Stats() may be sampled from a monitoring
// goroutine while the single logging caller is active.
type stats struct {
	lines       atomic.Uint64
	bytes       atomic.Uint64
	truncated   atomic.Uint64
	writeErrors atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Lines       uint64
	Bytes       uint64
	Truncated   uint64
	WriteErrors uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lines:       s.lines.Load(),
		Bytes:       s.bytes.Load(),
		Truncated:   s.truncated.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}

func (s *stats) reset() {
	s.lines.Store(0)
	s.bytes.Store(0)
	s.truncated.Store(0)
	s.writeErrors.Store(0)
}
