// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"regexp"
	"strings"
)

// Rule is one compiled pattern together with its polarity. Immutable once
// compiled.
type Rule struct {
	Pattern *regexp.Regexp
	Negate  bool
}

// Set is an ordered collection of rules. The zero value and nil are both the
// empty set, which lets every name through.
type Set struct {
	rules     []Rule
	positives []*regexp.Regexp
	negatives []*regexp.Regexp
}

// Parse compiles a filter expression into a Set. The empty expression yields
// the empty set. A malformed pattern fails the whole parse with a
// *SyntaxError; no partial set is returned.
func Parse(expr string) (*Set, error) {
	s := &Set{}
	if expr == "" {
		return s, nil
	}
	for _, tok := range strings.Split(expr, ",") {
		pat := tok
		negate := strings.HasPrefix(tok, "-")
		if negate {
			pat = tok[1:]
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &SyntaxError{Token: tok, Err: err}
		}
		s.rules = append(s.rules, Rule{Pattern: re, Negate: negate})
		if negate {
			s.negatives = append(s.negatives, re)
		} else {
			s.positives = append(s.positives, re)
		}
	}
	return s, nil
}

// Match reports whether name is allowed through the set: every positive rule
// must match the name (vacuously true when there are none), and no negative
// rule may match it. Matching is unanchored unless the pattern anchors itself.
func (s *Set) Match(name string) bool {
	if s == nil {
		return true
	}
	for _, re := range s.positives {
		if !re.MatchString(name) {
			return false
		}
	}
	for _, re := range s.negatives {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

// Rules returns the rules in source order.
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Empty reports whether the set holds no rules.
func (s *Set) Empty() bool {
	return s == nil || len(s.rules) == 0
}
