// Package inputval provides input validation helpers shared by handlers.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a bare RFC 5322 address ("user@host").
// Display-name forms ("Name <user@host>") are rejected, as are addresses
// with surrounding whitespace. Single-label domains ("user@localhost") are
// accepted; they matter for dev and test environments.
func IsValidEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
