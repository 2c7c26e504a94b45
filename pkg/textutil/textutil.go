package textutil

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText strips markup from free text. Line breaks are kept.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// PlainTextPtr applies PlainText and maps an empty result to nil.
func PlainTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := PlainText(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
