// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package config bootstraps a dispatcher from a YAML document plus environment
overrides.

	level: warn
	filters: "store,-^debug"
	sinks:
	  console:
	    type: console
	    colorize: true
	  audit:
	    type: json
	    path: /var/log/faro/audit.log
	    level: error

Unknown keys are ignored, not rejected. FARO_LEVEL and FARO_FILTERS override
the document; environment access goes through an injectable [Reader] so
tests do not touch the real environment.
*/
package config
