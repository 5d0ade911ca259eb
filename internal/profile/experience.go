package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
)

var (
	durationRe  = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	dateRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-—]\s*(\d{4}|present)`)
)

// ExtractExperience scans for "<N>+ years" duration mentions and
// "<year>-<year|present>" ranges. An open-ended range resolves "present"
// to currentYear.
func ExtractExperience(text string, currentYear int) []types.ExperienceMention {
	var mentions []types.ExperienceMention

	for _, m := range durationRe.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		mentions = append(mentions, types.ExperienceMention{Kind: types.MentionDuration, Years: years})
	}

	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if !strings.EqualFold(m[2], "present") {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		mentions = append(mentions, types.ExperienceMention{Kind: types.MentionRange, Years: end - start})
	}

	return mentions
}

// TotalYears sums the years across all mentions.
func TotalYears(mentions []types.ExperienceMention) int {
	total := 0
	for _, m := range mentions {
		total += m.Years
	}
	return total
}

// FormatExperience renders mentions as human-readable lines, prefixed with
// a total when any years were found.
func FormatExperience(mentions []types.ExperienceMention) []string {
	lines := make([]string, 0, len(mentions)+1)
	total := 0
	for _, m := range mentions {
		total += m.Years
		switch m.Kind {
		case types.MentionDuration:
			lines = append(lines, fmt.Sprintf("%d+ years experience", m.Years))
		case types.MentionRange:
			lines = append(lines, fmt.Sprintf("%d years experience", m.Years))
		}
	}

	if total > 0 {
		lines = append([]string{fmt.Sprintf("Total: %d years", total)}, lines...)
	}
	return lines
}
