// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/farolog/faro/dispatch"
	"github.com/farolog/faro/severity"
	"github.com/farolog/faro/sink"
)

// Environment variables recognized by Apply.
const (
	// EnvLevel overrides the document's level.
	EnvLevel = "FARO_LEVEL"
	// EnvFilters overrides the document's filter expression.
	EnvFilters = "FARO_FILTERS"
)

// defaultDocument is the config file looked up under the XDG config dirs
// when Load is given an empty path.
var defaultDocument = filepath.Join("faro", "faro.yaml")

// Document is the YAML shape of a dispatcher configuration.
type Document struct {
	Level   string               `yaml:"level"`
	Filters string               `yaml:"filters"`
	Sinks   map[string]SinkBlock `yaml:"sinks"`
}

// SinkBlock configures one sink. Type selects the implementation; the other
// fields are per-type options, and a sink ignores the ones it does not
// recognize.
type SinkBlock struct {
	Type     string `yaml:"type"`
	Level    string `yaml:"level"`
	Path     string `yaml:"path"`
	Colorize bool   `yaml:"colorize"`
	Address  string `yaml:"address"`
	URL      string `yaml:"url"`
	Capacity int    `yaml:"capacity"`
}

// Parse decodes a YAML document. Unknown keys are ignored.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &doc, nil
}

// Load reads the document at path. With an empty path it searches the XDG
// config directories for faro/faro.yaml and returns an empty document when
// none exists.
func Load(path string) (*Document, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(defaultDocument)
		if err != nil {
			return &Document{}, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Apply configures d from the document plus environment overrides. Sinks are
// registered under their document keys, in lexicographic key order so the
// fan-out order is deterministic. A nil env reads the process environment.
func (doc *Document) Apply(d *dispatch.Dispatcher, env Reader) error {
	if env == nil {
		env = &OSReader{}
	}

	level := doc.Level
	if v := env.Getenv(EnvLevel); v != "" {
		level = v
	}
	if level != "" {
		l, err := severity.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("config: level: %w", err)
		}
		d.SetLevel(l)
	}

	filters := doc.Filters
	if v := env.Getenv(EnvFilters); v != "" {
		filters = v
	}
	if filters != "" {
		if err := d.SetFilters(filters); err != nil {
			return fmt.Errorf("config: filters: %w", err)
		}
	}

	ids := make([]string, 0, len(doc.Sinks))
	for id := range doc.Sinks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s, err := buildSink(doc.Sinks[id])
		if err != nil {
			return fmt.Errorf("config: sink %q: %w", id, err)
		}
		d.RegisterSink(id, s)
	}
	return nil
}

// buildSink constructs the sink a block describes.
func buildSink(b SinkBlock) (sink.Sink, error) {
	var opts []sink.Option
	if b.Level != "" {
		l, err := severity.ParseLevel(b.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sink.WithLevel(l))
	}

	switch b.Type {
	case "console", "":
		return sink.NewConsole(append(opts, sink.WithColor(b.Colorize))...), nil
	case "file":
		if b.Path == "" {
			return nil, fmt.Errorf("file sink needs a path")
		}
		return sink.NewFile(b.Path, opts...)
	case "json":
		if b.Path == "" {
			return nil, fmt.Errorf("json sink needs a path")
		}
		return sink.NewJSONFile(b.Path, opts...)
	case "collector":
		if b.URL != "" {
			opts = append(opts, sink.WithWebsocketURL(b.URL))
		}
		if b.Address != "" {
			opts = append(opts, sink.WithAddress(b.Address))
		}
		return sink.NewCollector(opts...)
	case "memory":
		if b.Capacity > 0 {
			opts = append(opts, sink.WithCapacity(b.Capacity))
		}
		return sink.NewMemory(opts...), nil
	}
	return nil, fmt.Errorf("unknown sink type %q", b.Type)
}
