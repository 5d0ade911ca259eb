package profile

import (
	"regexp"
	"strings"
)

var (
	degreeRe        = regexp.MustCompile(`(?i)\b(B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|PhD)\b`)
	lineStartWordRe = regexp.MustCompile(`\n\w`)
	eduNoiseRe      = regexp.MustCompile(`(?i)http|@`)
)

// ExtractEducation scans for degree abbreviation tokens and captures each
// one together with the text up to the next line-start word or the end of
// the text. Snippets of five characters or fewer, or carrying URL/email
// markers, are dropped.
func ExtractEducation(text string) []string {
	var entries []string
	for _, loc := range degreeRe.FindAllStringIndex(text, -1) {
		snippet := text[loc[0]:]
		if m := lineStartWordRe.FindStringIndex(snippet); m != nil {
			snippet = snippet[:m[0]]
		}
		snippet = strings.TrimSpace(snippet)
		if len(snippet) > 5 && !eduNoiseRe.MatchString(snippet) {
			entries = append(entries, snippet)
		}
	}
	return entries
}
