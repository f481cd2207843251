// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package filter compiles facility filter expressions and evaluates facility
names against them.

# Grammar

An expression is a comma-separated list of tokens. Each token is a regular
expression, optionally prefixed with "-" to negate it:

	"store,cache"     // names must match both "store" and "cache"
	"-^debug"         // drop names starting with "debug"
	"-^A,.o+,..h+"    // mixed polarity

The pattern text after the optional "-" is compiled verbatim with [regexp],
so anchors, classes and repetition all work. Patterns and names are matched
as UTF-8; multi-byte characters are never split.

# Evaluation

A name passes a set when

  - every positive rule matches it (when at least one positive rule exists), and
  - no negative rule matches it.

Matching is search-style: a pattern matches anywhere in the name unless it
anchors itself with ^ or $. With no positive rules the first condition holds
vacuously, and the empty expression compiles to the empty set, which lets
every name through. Rule order never changes the outcome; it is only
preserved for introspection via [Set.Rules].

# Errors

A token that fails to compile aborts the whole parse with a [*SyntaxError]
naming the token, so callers can replace a filter set atomically and keep
the previous one on failure.
*/
package filter
