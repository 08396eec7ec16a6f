// Package sanitize cleans user-supplied text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all markup and returns plain text: entities the policy emits
// are decoded again, so "R&B" is stored as "R&B". Callers rendering the
// result as HTML must escape it.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
