// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// wireRecord is the structured form of a Record, shared by the JSON-file
// sink and the collector's websocket transport.
type wireRecord struct {
	Time     string         `json:"time"`
	Level    string         `json:"level"`
	Facility string         `json:"facility,omitempty"`
	Message  string         `json:"msg"`
	Meta     map[string]any `json:"meta,omitempty"`
}

func encodeRecord(rec Record) wireRecord {
	return wireRecord{
		Time:     rec.Time.Format(time.RFC3339),
		Level:    rec.Level.String(),
		Facility: rec.Facility,
		Message:  rec.Message(),
		Meta:     rec.Meta,
	}
}

// JSONFile appends one JSON object per line to a log file.
type JSONFile struct {
	threshold
	mu     sync.Mutex
	f      *os.File
	enc    *json.Encoder
	closed bool
}

// NewJSONFile opens path for appending, with the same path resolution as
// NewFile. Recognized options: WithLevel.
func NewJSONFile(path string, opts ...Option) (*JSONFile, error) {
	o := newOptions(opts)
	p, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("sink: resolve %q: %w", path, err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %q: %w", p, err)
	}
	s := &JSONFile{f: f, enc: json.NewEncoder(f)}
	s.SetLevel(o.level)
	return s, nil
}

// Log appends the record as one JSON line.
func (s *JSONFile) Log(rec Record) error {
	if !s.enabled(rec.Level) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return os.ErrClosed
	}
	return s.enc.Encode(encodeRecord(rec))
}

// Close closes the underlying file. A second Close is a no-op.
func (s *JSONFile) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}

// Name returns the path of the underlying file.
func (s *JSONFile) Name() string {
	return s.f.Name()
}
