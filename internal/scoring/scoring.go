// Package scoring computes the four sub-scores of a resume-to-job analysis
// and combines them into the final compatibility score.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
)

// Weights of the compatibility score. Fixed policy; they sum to 1.0.
const (
	similarityWeight    = 0.40
	skillCoverageWeight = 0.40
	experienceWeight    = 0.15
	educationWeight     = 0.05
)

// MatchThreshold is the sub-score level at or above which the experience
// and education booleans in the final result are set.
const MatchThreshold = 0.8

// Independent degree detectors for education scoring. Deliberately separate
// from the education-snippet extraction in the profile package.
var (
	bachelorRe = regexp.MustCompile(`(?i)\b(b\.?s|bachelor)\b`)
	masterRe   = regexp.MustCompile(`(?i)\b(m\.?s|master)\b`)
	phdRe      = regexp.MustCompile(`(?i)\b(phd|doctorate)\b`)
)

// SkillCoverage returns the fraction of required skills present in the
// candidate's skill set, case-folded. No required skills means full coverage.
func SkillCoverage(cvSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1.0
	}

	have := toSet(cvSkills)
	matched := 0
	for _, skill := range requiredSkills {
		if have[strings.ToLower(skill)] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// ExperienceScore compares total extracted years against the years the
// position title implies: 5 for senior roles, 2 for junior, 3 otherwise.
// The score saturates at 1.0.
func ExperienceScore(mentions []types.ExperienceMention, position string) float64 {
	total := 0
	for _, m := range mentions {
		total += m.Years
	}

	required := requiredYears(position)
	if required == 0 {
		return 0.0
	}
	return math.Min(float64(total)/float64(required), 1.0)
}

func requiredYears(position string) int {
	position = strings.ToLower(position)
	switch {
	case strings.Contains(position, "senior"):
		return 5
	case strings.Contains(position, "junior"):
		return 2
	default:
		return 3
	}
}

// EducationScore runs three binary degree detectors over the resume text
// and returns the detected fraction: always 0, 1/3, 2/3, or 1.
func EducationScore(resumeText string) float64 {
	detected := 0
	for _, re := range []*regexp.Regexp{bachelorRe, masterRe, phdRe} {
		if re.MatchString(resumeText) {
			detected++
		}
	}
	return float64(detected) / 3.0
}

// Compatibility combines the four sub-scores (each in [0,1]) into the
// final 0-100 score, rounded to two decimal places.
func Compatibility(similarity, skillCoverage, experience, education float64) float64 {
	weighted := similarityWeight*similarity +
		skillCoverageWeight*skillCoverage +
		experienceWeight*experience +
		educationWeight*education
	return round2(weighted * 100)
}

// MissingSkills returns the required skills absent from the candidate's
// set, case-folded, deduplicated, and sorted lexically. Skills of three
// characters or fewer are not reported.
func MissingSkills(cvSkills, requiredSkills []string) []string {
	have := toSet(cvSkills)
	seen := make(map[string]bool)
	missing := make([]string, 0)
	for _, skill := range requiredSkills {
		lower := strings.ToLower(skill)
		if len(skill) <= 3 || have[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		missing = append(missing, lower)
	}
	sort.Strings(missing)
	return missing
}

// Breakdown packages the sub-scores raw and percentage-scaled.
func Breakdown(similarity, skillCoverage, experience, education float64) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		Raw: types.SubScores{
			SemanticSimilarity: similarity,
			SkillCoverage:      skillCoverage,
			ExperienceMatch:    experience,
			EducationMatch:     education,
		},
		Percent: types.SubScores{
			SemanticSimilarity: round2(similarity * 100),
			SkillCoverage:      round2(skillCoverage * 100),
			ExperienceMatch:    round2(experience * 100),
			EducationMatch:     round2(education * 100),
		},
	}
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
