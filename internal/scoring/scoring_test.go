package scoring

import (
	"testing"

	"github.com/jonathan/resume-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSkillCoverage_FullMatch(t *testing.T) {
	score := SkillCoverage([]string{"python", "django"}, []string{"Python", "Django"})
	assert.Equal(t, 1.0, score)
}

func TestSkillCoverage_Partial(t *testing.T) {
	score := SkillCoverage([]string{"python"}, []string{"python", "django", "sql", "aws"})
	assert.Equal(t, 0.25, score)
}

func TestSkillCoverage_NoRequiredSkills(t *testing.T) {
	assert.Equal(t, 1.0, SkillCoverage([]string{"python"}, nil))
	assert.Equal(t, 1.0, SkillCoverage(nil, []string{}))
}

func TestExperienceScore_SeniorNeedsFiveYears(t *testing.T) {
	mentions := []types.ExperienceMention{{Kind: types.MentionRange, Years: 4}}

	score := ExperienceScore(mentions, "Senior Engineer")
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestExperienceScore_JuniorNeedsTwoYears(t *testing.T) {
	mentions := []types.ExperienceMention{{Kind: types.MentionDuration, Years: 1}}

	score := ExperienceScore(mentions, "junior developer")
	assert.Equal(t, 0.5, score)
}

func TestExperienceScore_DefaultNeedsThreeYears(t *testing.T) {
	mentions := []types.ExperienceMention{{Kind: types.MentionDuration, Years: 3}}

	score := ExperienceScore(mentions, "Engineer")
	assert.Equal(t, 1.0, score)
}

func TestExperienceScore_SaturatesAtOne(t *testing.T) {
	mentions := []types.ExperienceMention{{Kind: types.MentionDuration, Years: 30}}

	assert.Equal(t, 1.0, ExperienceScore(mentions, "Senior Architect"))
}

func TestExperienceScore_NoMentions(t *testing.T) {
	assert.Equal(t, 0.0, ExperienceScore(nil, "Senior Engineer"))
}

func TestEducationScore_AllLevels(t *testing.T) {
	text := "B.S. in CS, Master of Science, PhD candidate"
	assert.Equal(t, 1.0, EducationScore(text))
}

func TestEducationScore_SingleLevel(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, EducationScore("Bachelor of Arts"), 1e-9)
}

func TestEducationScore_QuantizedValues(t *testing.T) {
	// Three binary detectors: only 0, 1/3, 2/3, 1 are possible.
	cases := map[string]float64{
		"":                          0.0,
		"bachelor":                  1.0 / 3.0,
		"bachelor and master":       2.0 / 3.0,
		"bachelor, master, phd":     1.0,
		"doctorate degree, ms only": 2.0 / 3.0,
	}
	for text, want := range cases {
		assert.InDelta(t, want, EducationScore(text), 1e-9, text)
	}
}

func TestCompatibility_WeightedSum(t *testing.T) {
	// 0.4*0.5 + 0.4*1.0 + 0.15*0.8 + 0.05*1.0 = 0.77
	assert.Equal(t, 77.0, Compatibility(0.5, 1.0, 0.8, 1.0))
}

func TestCompatibility_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Compatibility(0, 0, 0, 0))
	assert.Equal(t, 100.0, Compatibility(1, 1, 1, 1))
}

func TestCompatibility_RoundsToTwoDecimals(t *testing.T) {
	score := Compatibility(0.333333, 0.333333, 0.333333, 0.333333)
	assert.Equal(t, 33.33, score)
}

func TestCompatibility_RoundTripsBreakdown(t *testing.T) {
	sim, cov, exp, edu := 0.612, 0.75, 0.8, 1.0/3.0
	breakdown := Breakdown(sim, cov, exp, edu)

	// The raw sub-scores reproduce the compatibility score exactly.
	recomputed := Compatibility(
		breakdown.Raw.SemanticSimilarity,
		breakdown.Raw.SkillCoverage,
		breakdown.Raw.ExperienceMatch,
		breakdown.Raw.EducationMatch,
	)
	assert.Equal(t, Compatibility(sim, cov, exp, edu), recomputed)
}

func TestBreakdown_PercentScaling(t *testing.T) {
	breakdown := Breakdown(0.5, 0.25, 1.0/3.0, 0)

	assert.Equal(t, 50.0, breakdown.Percent.SemanticSimilarity)
	assert.Equal(t, 25.0, breakdown.Percent.SkillCoverage)
	assert.Equal(t, 33.33, breakdown.Percent.ExperienceMatch)
	assert.Equal(t, 0.0, breakdown.Percent.EducationMatch)
	assert.Equal(t, 0.5, breakdown.Raw.SemanticSimilarity)
}

func TestMissingSkills_FiltersShortAndPresent(t *testing.T) {
	missing := MissingSkills(
		[]string{"python"},
		[]string{"Python", "Django", "sql", "AWS", "django", "kubernetes"},
	)

	// "sql" and "AWS" are dropped for length, "python" is present,
	// "django" deduplicates; the rest sort lexically.
	assert.Equal(t, []string{"django", "kubernetes"}, missing)
}

func TestMissingSkills_EmptyRequired(t *testing.T) {
	assert.Empty(t, MissingSkills([]string{"python"}, nil))
}
