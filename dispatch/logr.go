// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"github.com/go-logr/logr"

	"github.com/farolog/faro/severity"
)

// Logr returns a logr.Logger that emits through the dispatcher under the
// given facility name, so logr-speaking libraries can log through the
// facade. V-levels above zero map to DEBUG, V(0) to INFO, Error to ERROR.
func (d *Dispatcher) Logr(name string) logr.Logger {
	d.Facility(name)
	return logr.New(&logrSink{d: d, name: name})
}

// logrSink adapts the dispatcher to logr.LogSink. Values bound with
// WithValues become record metadata; WithName extends the facility name
// with a "/" separator.
type logrSink struct {
	d    *Dispatcher
	name string
	kv   []any
}

var _ logr.LogSink = (*logrSink)(nil)

func (*logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(level int) bool {
	return logrLevel(level) >= s.d.Level()
}

func (s *logrSink) Info(level int, msg string, kv ...any) {
	s.d.Log(logrLevel(level), s.name, []any{msg}, s.meta(kv, nil))
}

func (s *logrSink) Error(err error, msg string, kv ...any) {
	s.d.Log(severity.Error, s.name, []any{msg}, s.meta(kv, err))
}

func (s *logrSink) WithValues(kv ...any) logr.LogSink {
	ns := *s
	ns.kv = append(append([]any{}, s.kv...), kv...)
	return &ns
}

func (s *logrSink) WithName(name string) logr.LogSink {
	ns := *s
	if ns.name != "" {
		ns.name += "/" + name
	} else {
		ns.name = name
	}
	ns.d.Facility(ns.name)
	return &ns
}

func logrLevel(v int) severity.Level {
	if v > 0 {
		return severity.Debug
	}
	return severity.Info
}

// meta folds bound and per-call key/value pairs into record metadata. A
// trailing key without a value is dropped.
func (s *logrSink) meta(kv []any, err error) map[string]any {
	n := len(s.kv) + len(kv)
	if n == 0 && err == nil {
		return nil
	}
	meta := make(map[string]any, n/2+1)
	for _, pairs := range [][]any{s.kv, kv} {
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				continue
			}
			meta[key] = pairs[i+1]
		}
	}
	if err != nil {
		meta["error"] = err.Error()
	}
	return meta
}
