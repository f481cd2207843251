// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/farolog/faro/filter"
	"github.com/farolog/faro/severity"
	"github.com/farolog/faro/sink"
)

// Dispatcher owns the sink registry, the facility registry, the global
// minimum level and the active filter set. One RWMutex guards all of them:
// mutators take the write lock, Log takes the read lock and fans out on a
// snapshot so sink I/O never runs under the lock.
type Dispatcher struct {
	mu            sync.RWMutex
	level         severity.Level
	filters       *filter.Set
	sinks         map[string]sink.Sink
	sinkOrder     []string
	facilities    map[string]*Facility
	facilityOrder []string
	onSinkError   func(id string, err error)
}

// New returns a dispatcher with no sinks and an empty filter set. The
// initial minimum level is DEBUG: the global gate passes everything until
// raised, leaving thresholds to the individual sinks.
func New() *Dispatcher {
	return &Dispatcher{
		level:      severity.Debug,
		sinks:      make(map[string]sink.Sink),
		facilities: make(map[string]*Facility),
	}
}

// SetLevel sets the global minimum severity.
func (d *Dispatcher) SetLevel(l severity.Level) {
	d.mu.Lock()
	d.level = l
	d.mu.Unlock()
}

// Level returns the global minimum severity.
func (d *Dispatcher) Level() severity.Level {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.level
}

// SetFilters parses expr and atomically replaces the active filter set. On
// parse failure the previous set stays installed and the returned error is a
// *filter.SyntaxError naming the offending token.
func (d *Dispatcher) SetFilters(expr string) error {
	set, err := filter.Parse(expr)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.filters = set
	d.mu.Unlock()
	return nil
}

// Filters returns the active rules in source order.
func (d *Dispatcher) Filters() []filter.Rule {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.filters.Rules()
}

// RegisterSink registers s under id. A later registration under the same id
// replaces the earlier sink but keeps the id's original position in the
// fan-out order.
func (d *Dispatcher) RegisterSink(id string, s sink.Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.sinks[id]; !exists {
		d.sinkOrder = append(d.sinkOrder, id)
	}
	d.sinks[id] = s
}

// Sink returns the sink registered under id, if any. Absence is not an
// error.
func (d *Dispatcher) Sink(id string) (sink.Sink, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.sinks[id]
	return s, ok
}

// Sinks returns all registered sinks in registration order.
func (d *Dispatcher) Sinks() []sink.Sink {
	_, sinks := d.snapshot()
	return sinks
}

// SinkIDs returns the registered ids in registration order.
func (d *Dispatcher) SinkIDs() []string {
	ids, _ := d.snapshot()
	return ids
}

// Facility returns the handle registered under name, creating it on first
// request. Repeated calls with the same name return the same handle;
// registration does not consult the filter.
func (d *Dispatcher) Facility(name string) *Facility {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f, ok := d.facilities[name]; ok {
		return f
	}
	f := &Facility{name: name, d: d}
	d.facilities[name] = f
	d.facilityOrder = append(d.facilityOrder, name)
	return f
}

// FilteredFacilities returns, in registration order, the names of the
// registered facilities the currently active filter set lets through.
func (d *Dispatcher) FilteredFacilities() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := []string{}
	for _, name := range d.facilityOrder {
		if d.filters.Match(name) {
			out = append(out, name)
		}
	}
	return out
}

// OnSinkError installs a diagnostic callback for sink failures during
// fan-out. Errors returned by a sink's Log, and panics converted to errors,
// are reported with the sink's id. A nil callback silences diagnostics,
// which is the default.
func (d *Dispatcher) OnSinkError(fn func(id string, err error)) {
	d.mu.Lock()
	d.onSinkError = fn
	d.mu.Unlock()
}

// Log is the dispatch primitive. An empty facility means the message is not
// facility-scoped and skips the filter gate. Below-threshold and
// filtered-out calls are silent no-ops. Once the gates pass, every sink is
// invoked in registration order; one sink's failure never skips another.
func (d *Dispatcher) Log(level severity.Level, facility string, args []any, meta map[string]any) {
	d.mu.RLock()
	if level < d.level {
		d.mu.RUnlock()
		return
	}
	if facility != "" && !d.filters.Match(facility) {
		d.mu.RUnlock()
		return
	}
	ids := make([]string, len(d.sinkOrder))
	copy(ids, d.sinkOrder)
	sinks := make([]sink.Sink, len(ids))
	for i, id := range ids {
		sinks[i] = d.sinks[id]
	}
	onErr := d.onSinkError
	d.mu.RUnlock()

	rec := sink.Record{
		Level:    level,
		Facility: facility,
		Args:     args,
		Meta:     meta,
		Time:     time.Now(),
	}
	for i, s := range sinks {
		if err := deliver(s, rec); err != nil && onErr != nil {
			onErr(ids[i], err)
		}
	}
}

// deliver isolates one sink invocation, converting a panic into an error so
// a broken sink cannot abort the fan-out.
func deliver(s sink.Sink, rec sink.Record) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("sink panicked: %v", v)
		}
	}()
	return s.Log(rec)
}

// Close closes every registered sink in registration order and joins their
// errors. A second Close closes the sinks a second time; the sinks in this
// module tolerate that, but the contract does not promise idempotence.
func (d *Dispatcher) Close() error {
	ids, sinks := d.snapshot()
	var errs []error
	for i, s := range sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", ids[i], err))
		}
	}
	return errors.Join(errs...)
}

// snapshot copies the sink registry in registration order.
func (d *Dispatcher) snapshot() ([]string, []sink.Sink) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, len(d.sinkOrder))
	copy(ids, d.sinkOrder)
	sinks := make([]sink.Sink, len(ids))
	for i, id := range ids {
		sinks[i] = d.sinks[id]
	}
	return ids, sinks
}

// Debug logs at DEBUG with no facility attached.
func (d *Dispatcher) Debug(args ...any) { d.Log(severity.Debug, "", args, nil) }

// Info logs at INFO with no facility attached.
func (d *Dispatcher) Info(args ...any) { d.Log(severity.Info, "", args, nil) }

// Notice logs at NOTICE with no facility attached.
func (d *Dispatcher) Notice(args ...any) { d.Log(severity.Notice, "", args, nil) }

// Warn logs at WARN with no facility attached.
func (d *Dispatcher) Warn(args ...any) { d.Log(severity.Warn, "", args, nil) }

// Error logs at ERROR with no facility attached.
func (d *Dispatcher) Error(args ...any) { d.Log(severity.Error, "", args, nil) }

// Crit logs at CRIT with no facility attached.
func (d *Dispatcher) Crit(args ...any) { d.Log(severity.Critical, "", args, nil) }

// Alert logs at ALERT with no facility attached.
func (d *Dispatcher) Alert(args ...any) { d.Log(severity.Alert, "", args, nil) }

// Emerg logs at EMERG with no facility attached.
func (d *Dispatcher) Emerg(args ...any) { d.Log(severity.Emergency, "", args, nil) }

// Panic logs at EMERG. It is an alias kept for callers porting from facades
// that name the top severity "panic"; it does not panic.
func (d *Dispatcher) Panic(args ...any) { d.Log(severity.Emergency, "", args, nil) }
