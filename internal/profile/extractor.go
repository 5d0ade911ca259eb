// Package profile builds a structured candidate profile out of flat resume
// text: contact details, skills, experience mentions, and education
// snippets. Every heuristic here is best-effort; a missing signal degrades
// to an empty value, never an error.
package profile

import (
	"context"
	"regexp"
	"time"

	"github.com/jonathan/resume-match/internal/nlp"
	"github.com/jonathan/resume-match/internal/types"
	"github.com/jonathan/resume-match/internal/vocabulary"
)

var (
	emailRe    = regexp.MustCompile(`\b[\w.\-]+@[\w.\-]+\.\w{2,}\b`)
	phoneRe    = regexp.MustCompile(`\+?[\d\s()\-]{10,}\d`)
	nonDigitRe = regexp.MustCompile(`\D`)
	linkRe     = regexp.MustCompile(`https?://[^\s/$.?#].[^\s]*`)
)

// Extractor pulls candidate data out of resume text using pattern matching,
// fuzzy vocabulary lookup, and the language model. Construct once and share;
// it holds no per-analysis state.
type Extractor struct {
	vocab *vocabulary.Vocabulary
	model nlp.Model
	now   func() time.Time
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithNow overrides the clock used to resolve "present" in date ranges.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New creates an Extractor over the given vocabulary and language model.
func New(vocab *vocabulary.Vocabulary, model nlp.Model, opts ...Option) *Extractor {
	e := &Extractor{vocab: vocab, model: model, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BuildProfile assembles the full candidate profile from cleaned resume text.
func (e *Extractor) BuildProfile(ctx context.Context, text string) types.CandidateProfile {
	mentions := ExtractExperience(text, e.currentYear())
	return types.CandidateProfile{
		PersonalInfo:      e.ExtractPersonalInfo(ctx, text),
		Skills:            e.ExtractSkills(ctx, text),
		Experience:        mentions,
		ExperienceSummary: FormatExperience(mentions),
		Education:         ExtractEducation(text),
		Links:             ExtractLinks(text),
	}
}

// ExtractPersonalInfo pulls name, email, phone, and links from the text.
// The name is the first PERSON entity the model reports; a model failure
// leaves it empty rather than failing the analysis.
func (e *Extractor) ExtractPersonalInfo(ctx context.Context, text string) types.PersonalInfo {
	info := types.PersonalInfo{Links: ExtractLinks(text)}

	if entities, err := e.model.NamedEntities(ctx, text); err == nil {
		for _, ent := range entities {
			if ent.Label == nlp.LabelPerson {
				info.Name = ent.Text
				break
			}
		}
	}

	info.Email = emailRe.FindString(text)
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = nonDigitRe.ReplaceAllString(m, "")
	}

	return info
}

// ExtractLinks returns every http(s) URL in the text, deduplicated,
// in order of first occurrence.
func ExtractLinks(text string) []string {
	seen := make(map[string]bool)
	links := make([]string, 0)
	for _, link := range linkRe.FindAllString(text, -1) {
		if seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}
	return links
}

func (e *Extractor) currentYear() int {
	return e.now().Year()
}
