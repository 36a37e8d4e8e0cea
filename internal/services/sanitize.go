package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	plainText = bluemonday.StrictPolicy()
	richText  = bluemonday.UGCPolicy()
)

// stripTags removes all markup from s. Entities escaped by the policy are
// decoded again, "Fish & Chips" is stored as typed.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}

// sanitizeRichText keeps the safe subset of HTML allowed in recipes.
func sanitizeRichText(s string) string {
	return strings.TrimSpace(richText.Sanitize(s))
}
