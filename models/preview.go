package models

import "regexp"

// previewMaxLen is the fixed preview cap used by every screen that renders a
// note body excerpt. All consumers must truncate identically.
const previewMaxLen = 200

var markupTagRe = regexp.MustCompile(`<[^>]*>`)

// PreviewText strips markup tags from s and truncates the result to at most
// 200 characters, appending an ellipsis on overflow.
func PreviewText(s string) string {
	stripped := markupTagRe.ReplaceAllString(s, "")

	runes := []rune(stripped)
	if len(runes) <= previewMaxLen {
		return stripped
	}
	return string(runes[:previewMaxLen]) + "..."
}
