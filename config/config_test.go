// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farolog/faro/config"
	"github.com/farolog/faro/dispatch"
	"github.com/farolog/faro/severity"
	"github.com/farolog/faro/sink"
)

// mapReader is a config.Reader backed by a map.
type mapReader map[string]string

func (m mapReader) Getenv(key string) string {
	return m[key]
}

func TestParseAndApply(t *testing.T) {
	t.Parallel()

	doc, err := config.Parse([]byte(`
level: warn
filters: "store,-^debug"
sinks:
  buffer:
    type: memory
    capacity: 16
  console:
    type: console
    colorize: true
    level: error
`))
	require.NoError(t, err)

	d := dispatch.New()
	require.NoError(t, doc.Apply(d, mapReader{}))

	assert.Equal(t, severity.Warn, d.Level())
	rules := d.Filters()
	require.Len(t, rules, 2)
	assert.Equal(t, "store", rules[0].Pattern.String())
	assert.True(t, rules[1].Negate)

	assert.Equal(t, []string{"buffer", "console"}, d.SinkIDs(),
		"sinks register in lexicographic key order")

	buf, ok := d.Sink("buffer")
	require.True(t, ok)
	_, isMemory := buf.(*sink.Memory)
	assert.True(t, isMemory)

	c, ok := d.Sink("console")
	require.True(t, ok)
	assert.Equal(t, severity.Error, c.Level())
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	doc, err := config.Parse([]byte(`
level: info
rotation: daily
sinks:
  buffer:
    type: memory
    shiny: true
`))
	require.NoError(t, err, "unrecognized options are ignored, not rejected")
	require.NoError(t, doc.Apply(dispatch.New(), mapReader{}))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Parallel()

	doc, err := config.Parse([]byte("level: debug\nfilters: store\n"))
	require.NoError(t, err)

	d := dispatch.New()
	env := mapReader{
		config.EnvLevel:   "crit",
		config.EnvFilters: "-^debug",
	}
	require.NoError(t, doc.Apply(d, env))

	assert.Equal(t, severity.Critical, d.Level())
	rules := d.Filters()
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Negate)
	assert.Equal(t, "^debug", rules[0].Pattern.String())
}

func TestApplyFileSinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := &config.Document{
		Sinks: map[string]config.SinkBlock{
			"plain": {Type: "file", Path: filepath.Join(dir, "app.log")},
			"json":  {Type: "json", Path: filepath.Join(dir, "app.jsonl")},
		},
	}

	d := dispatch.New()
	require.NoError(t, doc.Apply(d, mapReader{}))
	defer d.Close()

	_, ok := d.Sink("plain")
	assert.True(t, ok)
	_, ok = d.Sink("json")
	assert.True(t, ok)
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"bad level", "level: loud\n"},
		{"bad filter", "filters: '['\n"},
		{"unknown sink type", "sinks:\n  x:\n    type: carrier-pigeon\n"},
		{"file sink without path", "sinks:\n  x:\n    type: file\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := config.Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Error(t, doc.Apply(dispatch.New(), mapReader{}))
		})
	}
}

func TestApplyBadFilterKeepsDispatcherState(t *testing.T) {
	t.Parallel()

	d := dispatch.New()
	require.NoError(t, d.SetFilters("keep"))

	doc, err := config.Parse([]byte("filters: '['\n"))
	require.NoError(t, err)
	require.Error(t, doc.Apply(d, mapReader{}))

	rules := d.Filters()
	require.Len(t, rules, 1)
	assert.Equal(t, "keep", rules[0].Pattern.String())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "faro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: notice\n"), 0o600))

	doc, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "notice", doc.Level)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOSReader(t *testing.T) {
	t.Setenv("FARO_TEST_VALUE", "x")
	r := &config.OSReader{}
	assert.Equal(t, "x", r.Getenv("FARO_TEST_VALUE"))
	assert.Empty(t, r.Getenv("FARO_TEST_VALUE_ABSENT"))
}
