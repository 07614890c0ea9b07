package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthorized(t *testing.T) {
	authorizer := NewAuthorizer([]string{"admin@example.com", "  Editor@Example.COM  "})

	tests := []struct {
		name     string
		identity string
		want     bool
	}{
		{"listed identity", "admin@example.com", true},
		{"case insensitive", "ADMIN@example.com", true},
		{"list entry trimmed and lowercased", "editor@example.com", true},
		{"identity with whitespace", "  admin@example.com  ", true},
		{"unlisted identity", "intruder@example.com", false},
		{"empty identity", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authorizer.IsAuthorized(tt.identity))
		})
	}
}

func TestEmptyAllowListAuthorizesNobody(t *testing.T) {
	authorizer := NewAuthorizer(nil)

	assert.False(t, authorizer.IsAuthorized("admin@example.com"))
	assert.False(t, authorizer.IsAuthorized(""))
}
