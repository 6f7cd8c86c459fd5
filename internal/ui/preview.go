package ui

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/gubarz/ankimd/internal/card"
)

var stripPolicy = bluemonday.StrictPolicy()

// previewText turns a card field into display text: line breaks become
// newlines and, when plain is set, any other markup is removed.
// The card itself is never modified.
func previewText(field string, plain bool) string {
	text := strings.ReplaceAll(field, card.LineBreak, "\n")
	if !plain {
		return text
	}
	return html.UnescapeString(stripPolicy.Sanitize(text))
}
