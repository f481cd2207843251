// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import "github.com/farolog/faro/severity"

// Facility is a named, lightweight handle bound to one facility name. It
// holds only the name and a non-owning back-reference to the dispatcher;
// the dispatcher owns the handle through its registry and hands out the
// same one for the same name.
type Facility struct {
	name string
	d    *Dispatcher
}

// Name returns the facility's name.
func (f *Facility) Name() string {
	return f.name
}

// Log forwards to the owning dispatcher with this facility's name attached.
// Whether the message passes the facility filter is decided at this call,
// against the filter set active now.
func (f *Facility) Log(level severity.Level, args ...any) {
	f.d.Log(level, f.name, args, nil)
}

// LogWith is Log with metadata attached to the record.
func (f *Facility) LogWith(level severity.Level, meta map[string]any, args ...any) {
	f.d.Log(level, f.name, args, meta)
}

// Debug logs at DEBUG under this facility.
func (f *Facility) Debug(args ...any) { f.d.Log(severity.Debug, f.name, args, nil) }

// Info logs at INFO under this facility.
func (f *Facility) Info(args ...any) { f.d.Log(severity.Info, f.name, args, nil) }

// Notice logs at NOTICE under this facility.
func (f *Facility) Notice(args ...any) { f.d.Log(severity.Notice, f.name, args, nil) }

// Warn logs at WARN under this facility.
func (f *Facility) Warn(args ...any) { f.d.Log(severity.Warn, f.name, args, nil) }

// Error logs at ERROR under this facility.
func (f *Facility) Error(args ...any) { f.d.Log(severity.Error, f.name, args, nil) }

// Crit logs at CRIT under this facility.
func (f *Facility) Crit(args ...any) { f.d.Log(severity.Critical, f.name, args, nil) }

// Alert logs at ALERT under this facility.
func (f *Facility) Alert(args ...any) { f.d.Log(severity.Alert, f.name, args, nil) }

// Emerg logs at EMERG under this facility.
func (f *Facility) Emerg(args ...any) { f.d.Log(severity.Emergency, f.name, args, nil) }

// Panic logs at EMERG under this facility; like the dispatcher's Panic, it
// does not panic.
func (f *Facility) Panic(args ...any) { f.d.Log(severity.Emergency, f.name, args, nil) }
