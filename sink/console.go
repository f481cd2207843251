// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/farolog/faro/severity"
)

// Console writes human-readable lines to a terminal. With colorization on,
// the level tag gets an ANSI color keyed to its severity.
type Console struct {
	threshold
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// ANSI SGR codes per severity, same palette zap uses for its console
// encoder, extended to the syslog-only levels.
var consoleColors = map[severity.Level]string{
	severity.Debug:     "35",   // magenta
	severity.Info:      "34",   // blue
	severity.Notice:    "36",   // cyan
	severity.Warn:      "33",   // yellow
	severity.Error:     "31",   // red
	severity.Critical:  "31",   // red
	severity.Alert:     "1;31", // bold red
	severity.Emergency: "1;31", // bold red
}

// NewConsole builds a console sink. Recognized options: WithLevel,
// WithColor, WithWriter.
func NewConsole(opts ...Option) *Console {
	o := newOptions(opts)
	w := o.writer
	if w == nil {
		w = os.Stderr
	}
	c := &Console{w: w, color: o.colorize}
	c.SetLevel(o.level)
	return c
}

// Log writes one line: time, level tag, optional [facility], message and
// sorted key=value metadata.
func (c *Console) Log(rec Record) error {
	if !c.enabled(rec.Level) {
		return nil
	}

	tag := rec.Level.String()
	if c.color {
		if code, ok := consoleColors[rec.Level]; ok {
			tag = "\x1b[" + code + "m" + tag + "\x1b[0m"
		}
	}

	var b strings.Builder
	b.WriteString(rec.Time.Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(tag)
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

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, b.String())
	return err
}

// Close is a no-op; the console sink does not own its writer.
func (*Console) Close() error {
	return nil
}
