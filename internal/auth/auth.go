// Package auth implements the allow-list check guarding admin actions.
// Authentication itself is terminated upstream; this package only decides
// whether an established identity may trigger administrative operations.
package auth

import "strings"

// Authorizer checks identities against a configured allow-list.
type Authorizer struct {
	allowed map[string]struct{}
}

// NewAuthorizer builds an authorizer from the configured allow-list.
// Matching is case-insensitive on the whole identity string.
func NewAuthorizer(allowedIdentities []string) *Authorizer {
	allowed := make(map[string]struct{}, len(allowedIdentities))
	for _, identity := range allowedIdentities {
		identity = strings.ToLower(strings.TrimSpace(identity))
		if identity != "" {
			allowed[identity] = struct{}{}
		}
	}
	return &Authorizer{allowed: allowed}
}

// IsAuthorized reports whether the identity is on the allow-list. An empty
// identity is never authorized.
func (a *Authorizer) IsAuthorized(identity string) bool {
	identity = strings.ToLower(strings.TrimSpace(identity))
	if identity == "" {
		return false
	}
	_, ok := a.allowed[identity]
	return ok
}
