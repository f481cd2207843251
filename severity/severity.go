// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

// Package severity defines the syslog-derived severity ladder used by the
// faro dispatcher and its sinks, both as a message attribute and as a
// minimum-level threshold.
package severity

import (
	"fmt"
	"strings"
)

// Level is an ordered severity. Higher values are more severe; the order is
// total and fixed.
type Level int

// The eight severities, least to most severe.
const (
	Debug Level = iota
	Info
	Notice
	Warn
	Error
	Critical
	Alert
	Emergency
)

var names = [...]string{
	Debug:     "DEBUG",
	Info:      "INFO",
	Notice:    "NOTICE",
	Warn:      "WARN",
	Error:     "ERROR",
	Critical:  "CRIT",
	Alert:     "ALERT",
	Emergency: "EMERG",
}

// String returns the uppercase tag for the level.
func (l Level) String() string {
	if l < Debug || l > Emergency {
		return fmt.Sprintf("SEVERITY(%d)", int(l))
	}
	return names[l]
}

// ParseLevel parses a level name, case-insensitively. Common aliases
// (warning, err, critical, emergency, panic) are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "NOTICE":
		return Notice, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR", "ERR":
		return Error, nil
	case "CRIT", "CRITICAL":
		return Critical, nil
	case "ALERT":
		return Alert, nil
	case "EMERG", "EMERGENCY", "PANIC":
		return Emergency, nil
	}
	return Info, fmt.Errorf("severity: unknown level %q", s)
}

// Syslog returns the RFC 5424 numerical severity code for the level.
// Syslog counts the other way around: 7 is debug, 0 is emergency.
func (l Level) Syslog() int {
	if l < Debug {
		l = Debug
	}
	if l > Emergency {
		l = Emergency
	}
	return int(Emergency - l)
}
