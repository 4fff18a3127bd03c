// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
)

// Principal is the authenticated identity attached to a request for the rest
// of its pipeline. Both identity strategies (header and token) produce the
// same shape, so role checks have a single code path.
type Principal struct {
	// ID is the non-empty subject identifier (X-User-ID value or token "sub").
	ID string `json:"id"`

	// DisplayName is a human-readable name used in greetings.
	DisplayName string `json:"name"`

	// Roles is the normalized set of roles granted to the principal.
	Roles Roles `json:"roles"`
}

// HasRole reports whether role is granted to the principal.
func (p Principal) HasRole(role string) bool {
	return p.Roles.Has(role)
}

// Roles is a set of role names.
type Roles map[string]struct{}

// NewRoles builds a role set from names. Empty names are skipped.
func NewRoles(names ...string) Roles {
	roles := make(Roles, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		roles[name] = struct{}{}
	}
	return roles
}

// Has reports whether role is in the set. A nil set has no roles.
func (r Roles) Has(role string) bool {
	_, ok := r[role]
	return ok
}

// List returns the roles in ascending order.
func (r Roles) List() []string {
	out := make([]string, 0, len(r))
	for name := range r {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (r Roles) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.List())
}

// UnmarshalJSON decodes a JSON array of role names into the set.
func (r *Roles) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	*r = NewRoles(names...)
	return nil
}
