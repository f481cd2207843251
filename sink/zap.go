// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/farolog/faro/severity"
)

// Zap forwards records to a caller-owned zap logger, so the facade can drain
// into an existing zap pipeline. The facility rides as a "facility" field.
type Zap struct {
	threshold
	l *zap.Logger
}

// NewZap builds a zap bridge sink around l. Recognized options: WithLevel.
func NewZap(l *zap.Logger, opts ...Option) *Zap {
	o := newOptions(opts)
	z := &Zap{l: l}
	z.SetLevel(o.level)
	return z
}

// zapLevel maps the severity ladder onto zapcore's. zap's panic and fatal
// levels terminate the process when logged, so everything at CRITICAL and
// above maps to zap ERROR; the original severity is preserved in a field.
func zapLevel(l severity.Level) zapcore.Level {
	switch l {
	case severity.Debug:
		return zapcore.DebugLevel
	case severity.Info, severity.Notice:
		return zapcore.InfoLevel
	case severity.Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Log emits the record through the wrapped logger.
func (z *Zap) Log(rec Record) error {
	if !z.enabled(rec.Level) {
		return nil
	}
	fields := make([]zap.Field, 0, len(rec.Meta)+2)
	fields = append(fields, zap.String("severity", rec.Level.String()))
	if rec.Facility != "" {
		fields = append(fields, zap.String("facility", rec.Facility))
	}
	for _, k := range metaKeys(rec.Meta) {
		fields = append(fields, zap.Any(k, rec.Meta[k]))
	}
	z.l.Log(zapLevel(rec.Level), rec.Message(), fields...)
	return nil
}

// Close flushes the wrapped logger.
func (z *Zap) Close() error {
	return z.l.Sync()
}
