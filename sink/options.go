// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"io"

	"github.com/farolog/faro/severity"
)

// Option configures a sink constructor. The vocabulary is shared across all
// sinks; a sink applies the options it recognizes and ignores the rest.
type Option func(*options)

type options struct {
	level    severity.Level
	colorize bool
	writer   io.Writer
	capacity int
	address  string
	url      string
	origin   string
}

func newOptions(opts []Option) options {
	o := options{level: severity.Debug}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLevel sets the sink-local minimum severity. The default is
// [severity.Debug]: everything the dispatcher delivers is written.
func WithLevel(l severity.Level) Option {
	return func(o *options) { o.level = l }
}

// WithColor enables ANSI colorization of the level tag. Recognized by the
// console sink.
func WithColor(on bool) Option {
	return func(o *options) { o.colorize = on }
}

// WithWriter overrides the destination writer. Recognized by the console
// sink; the default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithCapacity bounds the number of retained records. Recognized by the
// memory sink.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithAddress sets the collector's UDP host:port. Recognized by the
// collector sink; the default is 127.0.0.1:514.
func WithAddress(addr string) Option {
	return func(o *options) { o.address = addr }
}

// WithWebsocketURL switches the collector to a websocket stream at url.
// Recognized by the collector sink.
func WithWebsocketURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithOrigin sets the websocket handshake origin. Recognized by the
// collector sink; the default is http://localhost/.
func WithOrigin(origin string) Option {
	return func(o *options) { o.origin = origin }
}
