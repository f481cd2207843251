// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import "sync"

const defaultCapacity = 1024

// Memory buffers records in a bounded ring, oldest dropped first. It is the
// in-memory buffer collaborator and doubles as a test double.
type Memory struct {
	threshold
	mu   sync.Mutex
	cap  int
	recs []Record
}

// NewMemory builds a memory sink. Recognized options: WithLevel,
// WithCapacity (default 1024).
func NewMemory(opts ...Option) *Memory {
	o := newOptions(opts)
	c := o.capacity
	if c <= 0 {
		c = defaultCapacity
	}
	m := &Memory{cap: c}
	m.SetLevel(o.level)
	return m
}

// Log retains the record, evicting the oldest once the capacity is reached.
func (m *Memory) Log(rec Record) error {
	if !m.enabled(rec.Level) {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.recs) == m.cap {
		copy(m.recs, m.recs[1:])
		m.recs = m.recs[:m.cap-1]
	}
	m.recs = append(m.recs, rec)
	return nil
}

// Records returns a snapshot of the buffered records, oldest first.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.recs))
	copy(out, m.recs)
	return out
}

// Len returns the number of buffered records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.recs)
}

// Reset discards all buffered records.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = nil
}

// Close is a no-op; buffered records stay readable after Close.
func (*Memory) Close() error {
	return nil
}
