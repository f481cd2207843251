// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
)

// File appends plain-text lines to a log file.
type File struct {
	threshold
	mu     sync.Mutex
	f      *os.File
	closed bool
}

// NewFile opens path for appending, creating it if needed. A bare file name
// without a directory separator is placed under the XDG state directory
// (state, not config: log output is runtime data). Recognized options:
// WithLevel.
func NewFile(path string, opts ...Option) (*File, error) {
	o := newOptions(opts)
	p, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("sink: resolve %q: %w", path, err)
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %q: %w", p, err)
	}
	s := &File{f: f}
	s.SetLevel(o.level)
	return s, nil
}

// resolvePath expands a bare file name into the XDG state dir; anything with
// a separator is used verbatim.
func resolvePath(path string) (string, error) {
	if strings.ContainsRune(path, os.PathSeparator) {
		return path, nil
	}
	return xdg.StateFile(filepath.Join("faro", path))
}

// Log appends one line: RFC 3339 time, level tag, optional [facility],
// message and sorted key=value metadata.
func (s *File) Log(rec Record) error {
	if !s.enabled(rec.Level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(rec.Time.Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(rec.Level.String())
	if rec.Facility != "" {
		b.WriteString(" [")
		b.WriteString(rec.Facility)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(rec.Message())
	for _, k := range metaKeys(rec.Meta) {
		fmt.Fprintf(&b, " %s=%v", k, rec.Meta[k])
	}
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return os.ErrClosed
	}
	_, err := s.f.WriteString(b.String())
	return err
}

// Close closes the underlying file. A second Close is a no-op.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}

// Name returns the path of the underlying file.
func (s *File) Name() string {
	return s.f.Name()
}
