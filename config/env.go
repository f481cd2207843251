// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "os"

// Reader defines an interface for environment variable access, so tests can
// inject values without mutating the process environment.
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}
