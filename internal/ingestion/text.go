package ingestion

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	bulletRe     = regexp.MustCompile(`[•●–—]`)
	headingRe    = regexp.MustCompile(`^\s*[A-Z][A-Z ]+:`)
	blankRe      = regexp.MustCompile(`^\s*$`)
)

// CleanText normalizes extracted text: whitespace runs collapse to a single
// space, bullet and dash glyph variants become a plain hyphen, and the
// result is trimmed. Cleaning already-cleaned text is a no-op.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = bulletRe.ReplaceAllString(text, "-")
	return strings.TrimSpace(text)
}

// ExtractSection isolates a labeled section from resume text. namePattern is
// a regex alternation of heading synonyms, e.g. "skills|technical skills".
// A line consisting of just the heading (optionally with a trailing colon)
// opens capture; a blank line or an ALL-CAPS heading closes it. Captured
// lines are space-joined. A missing section yields an empty string, this is
// a best-effort heuristic.
func ExtractSection(text, namePattern string) string {
	sectionRe := regexp.MustCompile(`(?i)^\s*(` + namePattern + `)\s*:*\s*$`)

	var lines []string
	capture := false
	for _, line := range strings.Split(text, "\n") {
		if sectionRe.MatchString(strings.TrimSpace(line)) {
			capture = true
			continue
		}
		if capture {
			if blankRe.MatchString(line) || headingRe.MatchString(line) {
				break
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	return strings.Join(lines, " ")
}
