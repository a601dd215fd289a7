package multipolygon

import "strings"

// RoleMatcher decides whether a member role string marks the member as part
// of an outer or an inner polygon. A matcher is an immutable snapshot of the
// role configuration; reconfiguration means building a new matcher and
// swapping the reference, never mutating one in place.
type RoleMatcher struct {
	outerExactRoles   []string
	outerRolePrefixes []string
	innerExactRoles   []string
	innerRolePrefixes []string
}

// DefaultRoleMatcher returns a matcher with the standard OSM multipolygon
// roles: "outer" and "inner", no prefixes.
func DefaultRoleMatcher() *RoleMatcher {
	return &RoleMatcher{
		outerExactRoles: []string{"outer"},
		innerExactRoles: []string{"inner"},
	}
}

// NewRoleMatcher builds a matcher from the four configured role lists.
// Empty lists fall back to the defaults; non-empty lists fully replace them.
// Entries are trimmed and deduplicated.
func NewRoleMatcher(outerExact, outerPrefixes, innerExact, innerPrefixes []string) *RoleMatcher {
	m := DefaultRoleMatcher()
	if len(outerExact) > 0 {
		m.outerExactRoles = normalizeRoles(outerExact)
	}
	if len(outerPrefixes) > 0 {
		m.outerRolePrefixes = normalizeRoles(outerPrefixes)
	}
	if len(innerExact) > 0 {
		m.innerExactRoles = normalizeRoles(innerExact)
	}
	if len(innerPrefixes) > 0 {
		m.innerRolePrefixes = normalizeRoles(innerPrefixes)
	}
	return m
}

// normalizeRoles trims each entry and drops duplicates, preserving order.
func normalizeRoles(literals []string) []string {
	out := make([]string, 0, len(literals))
	for _, l := range literals {
		l = strings.TrimSpace(l)
		if !containsString(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, c := range list {
		if c == s {
			return true
		}
	}
	return false
}

// IsOuterRole reports whether role names an outer member, either by exact
// match or by configured prefix.
func (m *RoleMatcher) IsOuterRole(role string) bool {
	return matchRole(role, m.outerExactRoles, m.outerRolePrefixes)
}

// IsInnerRole reports whether role names an inner member, either by exact
// match or by configured prefix.
func (m *RoleMatcher) IsInnerRole(role string) bool {
	return matchRole(role, m.innerExactRoles, m.innerRolePrefixes)
}

func matchRole(role string, exact, prefixes []string) bool {
	for _, candidate := range exact {
		if role == candidate {
			return true
		}
	}
	for _, candidate := range prefixes {
		if strings.HasPrefix(role, candidate) {
			return true
		}
	}
	return false
}
