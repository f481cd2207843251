// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import "fmt"

// SyntaxError reports a filter-expression token whose pattern failed to
// compile. Token carries the full source token, including any leading "-".
type SyntaxError struct {
	Token string
	Err   error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("filter: invalid pattern %q: %v", e.Token, e.Err)
}

// Unwrap returns the underlying regexp error for errors.Is and errors.As.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
