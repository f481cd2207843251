// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import "github.com/farolog/faro/sink"

// Conventional registry ids used by the attach helpers.
const (
	// ConsoleID is the id AttachConsole registers under.
	ConsoleID = "console"
	// CollectorID is the id AttachCollector registers under.
	CollectorID = "collector"
)

// AttachConsole builds a console sink and registers it under ConsoleID.
func (d *Dispatcher) AttachConsole(opts ...sink.Option) *sink.Console {
	c := sink.NewConsole(opts...)
	d.RegisterSink(ConsoleID, c)
	return c
}

// AttachFile builds a plain-file sink for path and registers it under the
// path itself, so each file is attached at most once.
func (d *Dispatcher) AttachFile(path string, opts ...sink.Option) (*sink.File, error) {
	f, err := sink.NewFile(path, opts...)
	if err != nil {
		return nil, err
	}
	d.RegisterSink(path, f)
	return f, nil
}

// AttachJSONFile builds a structured-file sink for path and registers it
// under the path itself.
func (d *Dispatcher) AttachJSONFile(path string, opts ...sink.Option) (*sink.JSONFile, error) {
	f, err := sink.NewJSONFile(path, opts...)
	if err != nil {
		return nil, err
	}
	d.RegisterSink(path, f)
	return f, nil
}

// AttachCollector builds a remote-collector sink and registers it under
// CollectorID.
func (d *Dispatcher) AttachCollector(opts ...sink.Option) (*sink.Collector, error) {
	c, err := sink.NewCollector(opts...)
	if err != nil {
		return nil, err
	}
	d.RegisterSink(CollectorID, c)
	return c, nil
}
