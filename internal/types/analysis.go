// Package types defines the shared data structures exchanged between the
// extraction, scoring, and engine packages.
package types

// PersonalInfo holds contact details pulled out of a resume.
type PersonalInfo struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Links []string `json:"links"`
}

// Mention kinds for experience entries.
const (
	MentionDuration = "duration" // "5+ years"
	MentionRange    = "range"    // "2018-2022" or "2015-present"
)

// ExperienceMention is a single experience signal found in resume text.
type ExperienceMention struct {
	Kind  string `json:"kind"`
	Years int    `json:"years"`
}

// CandidateProfile is the structured view of a resume, built fresh per analysis.
type CandidateProfile struct {
	PersonalInfo PersonalInfo        `json:"personal_info"`
	Skills       []string            `json:"skills"`
	Experience   []ExperienceMention `json:"experience"`
	// ExperienceSummary is the human-readable rendering of Experience,
	// prefixed with a total line when any years were found.
	ExperienceSummary []string `json:"experience_summary"`
	Education         []string `json:"education"`
	Links             []string `json:"links"`
}

// SubScores carries the four component scores of an analysis.
type SubScores struct {
	SemanticSimilarity float64 `json:"semantic_similarity"`
	SkillCoverage      float64 `json:"skill_coverage"`
	ExperienceMatch    float64 `json:"experience_match"`
	EducationMatch     float64 `json:"education_match"`
}

// ScoreBreakdown reports the sub-scores both raw (0-1) and scaled to
// percentages rounded to two decimal places.
type ScoreBreakdown struct {
	Raw     SubScores `json:"raw"`
	Percent SubScores `json:"percent"`
}

// AnalysisResult is the final output of a resume-to-job analysis.
// It is owned by the caller; the engine keeps no reference to it.
type AnalysisResult struct {
	CompatibilityScore float64          `json:"compatibility_score"`
	MissingSkills      []string         `json:"missing_skills"`
	ExperienceMatch    bool             `json:"experience_match"`
	EducationMatch     bool             `json:"education_match"`
	CVData             CandidateProfile `json:"cv_data"`
	ScoreBreakdown     ScoreBreakdown   `json:"score_breakdown"`
}
