package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Roles configures how relation member roles map to outer and inner
// polygons. An empty or unset list falls back to the built-in default
// ({"outer"} / {"inner"}, no prefixes); a non-empty list fully replaces the
// default, there is no merging.
type Roles struct {
	// OuterExactRoles lists roles that mark a member as outer
	OuterExactRoles []string `yaml:"outer-exact-roles,omitempty"`
	// OuterRolePrefixes lists role prefixes that mark a member as outer
	OuterRolePrefixes []string `yaml:"outer-role-prefixes,omitempty"`
	// InnerExactRoles lists roles that mark a member as inner
	InnerExactRoles []string `yaml:"inner-exact-roles,omitempty"`
	// InnerRolePrefixes lists role prefixes that mark a member as inner
	InnerRolePrefixes []string `yaml:"inner-role-prefixes,omitempty"`
}

// DefaultRoles returns an empty role configuration, meaning all four lists
// use their built-in defaults.
func DefaultRoles() *Roles {
	return &Roles{}
}

// LoadRoles loads a role configuration from a YAML file.
func LoadRoles(path string) (*Roles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file: %w", err)
	}

	var roles Roles
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse roles YAML: %w", err)
	}

	return &roles, nil
}
