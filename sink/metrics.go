// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts dispatched records by severity and facility. It writes
// nothing anywhere; it exists so operators get a cheap volume signal from
// whatever scrapes the supplied registerer.
type Metrics struct {
	threshold
	records *prometheus.CounterVec
}

// NewMetrics builds a metrics sink and registers its counter with reg.
// Recognized options: WithLevel.
func NewMetrics(reg prometheus.Registerer, opts ...Option) (*Metrics, error) {
	o := newOptions(opts)
	m := &Metrics{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faro",
			Name:      "records_total",
			Help:      "Log records dispatched, by severity and facility.",
		}, []string{"level", "facility"}),
	}
	m.SetLevel(o.level)
	if reg != nil {
		if err := reg.Register(m.records); err != nil {
			return nil, fmt.Errorf("sink: register metrics: %w", err)
		}
	}
	return m, nil
}

// Log increments the counter for the record's severity and facility.
func (m *Metrics) Log(rec Record) error {
	if !m.enabled(rec.Level) {
		return nil
	}
	m.records.WithLabelValues(strings.ToLower(rec.Level.String()), rec.Facility).Inc()
	return nil
}

// Close is a no-op; counters stay scrapeable.
func (*Metrics) Close() error {
	return nil
}
