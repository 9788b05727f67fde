// Package sanitize removes markup from user supplied text.
package sanitize

import (
	"html"
	"strings"

	"market/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer that strips every HTML element.
// Catalog text is rendered as plain text by every client, so no markup is kept.
func NewTextSanitizer() service.TextSanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

// maxPasses bounds the strip/unescape loop for entity-encoded markup.
const maxPasses = 3

// Sanitize strips tags, then unescapes the entities bluemonday emits so that
// plain text such as "L'Oréal & Co" is stored unchanged. Unescaping can
// surface markup that was entity-encoded, so the pass repeats until stable.
// Input still changing after maxPasses gets a final strip without unescaping,
// leaving any deeper encoding inert.
func (s *strictSanitizer) Sanitize(text string) string {
	out := text
	for range maxPasses {
		next := html.UnescapeString(s.policy.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}

	return strings.TrimSpace(s.policy.Sanitize(out))
}
