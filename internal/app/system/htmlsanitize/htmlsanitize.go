// Package htmlsanitize strips markup from user-supplied text before it is
// persisted. The club API stores free-text fields (messages, subjects,
// descriptions) as plain text, so anything that looks like HTML is removed
// rather than escaped for later rendering.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean removes all HTML elements from s and trims surrounding whitespace.
// Text content outside of removed tags is kept.
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
