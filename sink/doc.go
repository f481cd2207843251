// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package sink defines the capability contract log destinations implement for
the faro dispatcher, and ships the stock implementations: console, plain
file, JSON file, in-memory buffer, remote collector, a zap bridge and a
prometheus counter.

Every sink carries its own minimum severity, independent of the dispatcher's
global gate; the dispatcher never pre-filters on a sink's behalf.

Constructors share one functional [Option] vocabulary. A sink applies the
options it recognizes and ignores the rest:

	console := sink.NewConsole(sink.WithLevel(severity.Info), sink.WithColor(true))
	buffer := sink.NewMemory(sink.WithCapacity(256))
*/
package sink
