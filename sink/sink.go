// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks Sink

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/farolog/faro/severity"
)

// Record is one dispatched log message. Records are constructed per call and
// never retained by the dispatcher; a sink that needs to keep one must copy
// what it needs.
type Record struct {
	Level severity.Level

	// Facility is the emitting facility's name, or empty when the message
	// was logged through the dispatcher directly.
	Facility string

	Args []any
	Meta map[string]any
	Time time.Time
}

// Message renders Args separated by spaces, the way fmt.Println would,
// without the trailing newline.
func (r Record) Message() string {
	return strings.TrimSuffix(fmt.Sprintln(r.Args...), "\n")
}

// Sink is the capability set every log destination implements.
//
// Log performs the side-effecting write. Close releases held resources;
// sinks tolerate a second Close but callers should not rely on it being a
// no-op. SetLevel and Level manage the sink-local threshold, which the sink
// itself honors inside Log.
type Sink interface {
	Log(rec Record) error
	Close() error
	SetLevel(l severity.Level)
	Level() severity.Level
}

// threshold is the sink-local severity gate shared by the implementations in
// this package. Reads and writes are atomic so Log never contends with
// SetLevel.
type threshold struct {
	level atomic.Int32
}

func (t *threshold) SetLevel(l severity.Level) {
	t.level.Store(int32(l))
}

func (t *threshold) Level() severity.Level {
	return severity.Level(t.level.Load())
}

func (t *threshold) enabled(l severity.Level) bool {
	return l >= t.Level()
}

// Compile-time checks: every stock sink satisfies the contract.
var (
	_ Sink = (*Console)(nil)
	_ Sink = (*File)(nil)
	_ Sink = (*JSONFile)(nil)
	_ Sink = (*Memory)(nil)
	_ Sink = (*Collector)(nil)
	_ Sink = (*Zap)(nil)
	_ Sink = (*Metrics)(nil)
)

// metaKeys returns meta's keys sorted, for deterministic rendering.
func metaKeys(meta map[string]any) []string {
	if len(meta) == 0 {
		return nil
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
