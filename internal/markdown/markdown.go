// Package markdown flattens Markdown-formatted LLM output into plain text
// suitable for PDF layout.
package markdown

import "regexp"

var (
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	bulletRe  = regexp.MustCompile(`(?m)^[\-\+\*]\s+`)
)

// Strip removes common Markdown markers: heading hashes, bold and italic
// asterisks, and leading list bullets. Emphasis markers are handled before
// list markers so a paired leading asterisk is consumed as emphasis, not
// as a bullet. Strip is idempotent.
func Strip(text string) string {
	text = headingRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = bulletRe.ReplaceAllString(text, "")
	return text
}
