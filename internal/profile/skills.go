package profile

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-match/internal/ingestion"
)

// SkillSectionPattern is the heading alternation used to locate the skills
// section of a resume.
const SkillSectionPattern = "skills|technical skills|competencies"

var (
	skillLineSplitRe = regexp.MustCompile(`\n|,|;`)
	skillNoiseRe     = regexp.MustCompile(`(?i)[\d.%]|years?|https?://\S+`)
	fragmentSplitRe  = regexp.MustCompile(`\s{2,}|- |/|•`)
	invalidSkillRe   = regexp.MustCompile(`(?i)@|\.com|\d|year|month|http`)
	letterRe         = regexp.MustCompile(`[a-z]`)
)

// skillBlacklist drops fragments that are resume noise rather than skills.
var skillBlacklist = []string{
	"http", "github", "contribution", "january", "february", "company", "owner",
}

// ExtractSkills extracts the candidate's skill set. It first works through
// the skills section line by line, fuzzy-matching fragments against the
// vocabulary; when the section heuristic finds nothing it falls back to the
// model's noun phrases. The final set is lowercased, deduplicated, filtered,
// and ordered longest-first.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) []string {
	section := ingestion.ExtractSection(text, SkillSectionPattern)

	var candidates []string
	for _, line := range skillLineSplitRe.Split(section, -1) {
		line = strings.TrimSpace(skillNoiseRe.ReplaceAllString(line, ""))
		if len(line) < 3 || len(line) > 40 {
			continue
		}
		candidates = append(candidates, e.matchFragments(line)...)
	}

	if len(candidates) == 0 {
		candidates = e.nounPhraseFallback(ctx, text)
	}

	return finalizeSkills(candidates)
}

// matchFragments splits a cleaned skill line into fragments and keeps the
// canonical vocabulary match for each one that clears the threshold.
func (e *Extractor) matchFragments(line string) []string {
	var matched []string
	for _, frag := range fragmentSplitRe.Split(line, -1) {
		frag = strings.TrimSpace(frag)
		if len(frag) < 3 || len(frag) > 40 {
			continue
		}
		if skill, _, ok := e.vocab.BestMatch(frag); ok {
			matched = append(matched, skill)
		}
	}
	return matched
}

// nounPhraseFallback asks the model for noun phrases when no skills section
// was found. Phrases that are entirely stop words, purely numeric, or
// outside the (3,50) length bounds are dropped. A model failure is a soft
// miss yielding no skills.
func (e *Extractor) nounPhraseFallback(ctx context.Context, text string) []string {
	chunks, err := e.model.NounChunks(ctx, text)
	if err != nil {
		return nil
	}

	var out []string
	for _, chunk := range chunks {
		chunk = strings.ToLower(strings.TrimSpace(chunk))
		if len(chunk) <= 3 || len(chunk) >= 50 {
			continue
		}
		if isNumeric(chunk) || e.allStopWords(chunk) {
			continue
		}
		out = append(out, chunk)
	}
	return out
}

// finalizeSkills lowercases, validates, deduplicates, and orders the skill
// set longest-first with lexical tie-break.
func finalizeSkills(candidates []string) []string {
	seen := make(map[string]bool)
	skills := make([]string, 0, len(candidates))
	for _, skill := range candidates {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] || !isValidSkill(skill) {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool {
		if len(skills[i]) != len(skills[j]) {
			return len(skills[i]) > len(skills[j])
		}
		return skills[i] < skills[j]
	})
	return skills
}

// isValidSkill rejects fragments without a letter, containing a blacklisted
// term, or carrying email/URL/digit/date markers.
func isValidSkill(skill string) bool {
	if !letterRe.MatchString(skill) {
		return false
	}
	for _, blacklisted := range skillBlacklist {
		if strings.Contains(skill, blacklisted) {
			return false
		}
	}
	return !invalidSkillRe.MatchString(skill)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// allStopWords reports whether every whitespace-separated token in the
// phrase is a stop word.
func (e *Extractor) allStopWords(phrase string) bool {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !e.model.IsStopWord(f) {
			return false
		}
	}
	return true
}
