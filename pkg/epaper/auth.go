package epaper

import (
	"fmt"
	"strings"
)

// Mock authentication. A login mints an opaque token that encodes the email
// and role in clear text; nothing verifies it beyond shape. Identity is
// trust-on-assertion for the lifetime of the session.

// MintToken builds the session token for an email/role pair.
func MintToken(email string, role Role) string {
	return fmt.Sprintf("mock-token-%s-%s", email, strings.ToLower(string(role)))
}

// UserFromToken recovers the asserted identity from a token. Any token
// containing "admin" is treated as an administrator, everything else as an
// editor. Returns false for tokens that do not look like session tokens.
func UserFromToken(token string) (User, bool) {
	if !strings.HasPrefix(token, "mock-token-") {
		return User{}, false
	}
	rest := strings.TrimPrefix(token, "mock-token-")

	role := RoleEditor
	if strings.Contains(token, "admin") {
		role = RoleAdmin
	}

	email := rest
	if idx := strings.LastIndex(rest, "-"); idx > 0 {
		email = rest[:idx]
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return User{ID: email, Name: name, Role: role}, true
}
