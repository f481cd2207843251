// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farolog/faro/severity"
)

func TestMetricsCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Log(Record{Level: severity.Info, Facility: "store"}))
	require.NoError(t, m.Log(Record{Level: severity.Info, Facility: "store"}))
	require.NoError(t, m.Log(Record{Level: severity.Error, Facility: ""}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.records.WithLabelValues("info", "store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.records.WithLabelValues("error", "")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.records.WithLabelValues("warn", "store")))
}

func TestMetricsLevelGate(t *testing.T) {
	t.Parallel()

	m, err := NewMetrics(prometheus.NewRegistry(), WithLevel(severity.Warn))
	require.NoError(t, err)

	require.NoError(t, m.Log(Record{Level: severity.Debug, Facility: "store"}))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.records.WithLabelValues("debug", "store")))
}

func TestMetricsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err, "same counter cannot be registered twice")
}

func TestMetricsNilRegisterer(t *testing.T) {
	t.Parallel()

	m, err := NewMetrics(nil)
	require.NoError(t, err)
	require.NoError(t, m.Log(Record{Level: severity.Info}))
}
