// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package dispatch is the faro logging facade: a [Dispatcher] that routes
leveled, optionally facility-scoped messages through a global severity gate
and a facility filter, then fans them out to every registered sink in
registration order.

Callers construct and own dispatcher instances explicitly; there is no
package-level singleton.

	d := dispatch.New()
	d.AttachConsole(sink.WithColor(true))
	d.SetLevel(severity.Info)
	_ = d.SetFilters("store,-^debug")

	store := d.Facility("store")
	store.Info("checkout complete", 3)

Gating happens at log time: the global level gate first, then, for
facility-scoped calls only, the filter gate. Once both pass, every sink
receives the record regardless of what happens to its siblings; a sink that
returns an error or panics is isolated and reported through the optional
[Dispatcher.OnSinkError] callback.

Each sink additionally carries its own minimum level which the sink itself
honors; the dispatcher never pre-filters per sink.
*/
package dispatch
