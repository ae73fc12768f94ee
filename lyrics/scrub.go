package lyrics

import (
	"regexp"
	"strings"
)

var (
	contributorsRe = regexp.MustCompile(`(?m)^\d+ Contributors?.*$`)
	embedRe        = regexp.MustCompile(`(?m)^\d*Embed$`)
	suggestionRe   = regexp.MustCompile(`(?m)^You might also like$`)
	blankRunsRe    = regexp.MustCompile(`\n{3,}`)
)

// Scrub removes Genius page boilerplate from scraped lyrics and collapses
// runs of blank lines.
func Scrub(text string) string {
	text = contributorsRe.ReplaceAllString(text, "")
	text = suggestionRe.ReplaceAllString(text, "")
	text = embedRe.ReplaceAllString(text, "")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
