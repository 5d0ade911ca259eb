// Package vocabulary loads the reference list of canonical skill names and
// fuzzy-matches candidate fragments against it.
package vocabulary

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MatchThreshold is the minimum token-sort similarity (0-100) a fragment
// must reach against a canonical skill to be accepted.
const MatchThreshold = 85

// LoadError indicates the skills reference source could not be read or parsed.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load skills vocabulary from %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Vocabulary is an ordered list of lowercase canonical skill names.
// Skills are sorted longest first (ties broken lexically) so fuzzy matching
// prefers the most specific name when several clear the threshold.
// Immutable after construction.
type Vocabulary struct {
	skills []string
}

// Load reads a tabular CSV source and flattens every cell into the skill
// list: blanks dropped, values lowercased and deduplicated.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine, cells are independent

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	seen := make(map[string]bool)
	var skills []string
	for _, row := range rows {
		for _, cell := range row {
			skill := strings.ToLower(strings.TrimSpace(cell))
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	sortSkills(skills)
	return &Vocabulary{skills: skills}, nil
}

// New builds a vocabulary directly from skill names, applying the same
// normalization and ordering as Load. Intended for tests and embedded lists.
func New(skills []string) *Vocabulary {
	seen := make(map[string]bool)
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		normalized = append(normalized, s)
	}
	sortSkills(normalized)
	return &Vocabulary{skills: normalized}
}

// Len reports the number of canonical skills.
func (v *Vocabulary) Len() int {
	return len(v.skills)
}

// Skills returns a copy of the ordered skill list.
func (v *Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// BestMatch fuzzy-matches a fragment against the vocabulary using a
// token-order-insensitive ratio. It returns the best canonical skill at or
// above MatchThreshold; the length-descending ordering means the most
// specific skill wins score ties. An empty vocabulary accepts the fragment
// verbatim.
func (v *Vocabulary) BestMatch(fragment string) (string, int, bool) {
	if len(v.skills) == 0 {
		return fragment, 100, true
	}

	best := ""
	bestScore := 0
	for _, skill := range v.skills {
		score := fuzzy.TokenSortRatio(fragment, skill)
		if score > bestScore {
			best = skill
			bestScore = score
			if bestScore == 100 {
				break
			}
		}
	}

	if bestScore < MatchThreshold {
		return "", bestScore, false
	}
	return best, bestScore, true
}

// sortSkills orders by descending length, then lexically.
func sortSkills(skills []string) {
	sort.Slice(skills, func(i, j int) bool {
		if len(skills[i]) != len(skills[j]) {
			return len(skills[i]) > len(skills[j])
		}
		return skills[i] < skills[j]
	})
}
