package types

// JobData is the subset of an externally supplied job posting that the
// matching engine consumes. Fields beyond the three named ones are carried
// in Extra untouched so callers can round-trip the upstream payload.
type JobData struct {
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	Position     string         `json:"position"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// JobDataFromMap builds a JobData from a raw job mapping. The requirements
// text is read from "requirements" with "requirement" as a fallback, since
// upstream job boards disagree on the field name. All other keys are kept
// in Extra.
func JobDataFromMap(m map[string]any) JobData {
	job := JobData{Extra: make(map[string]any)}
	for k, v := range m {
		switch k {
		case "description":
			job.Description = asString(v)
		case "requirements":
			job.Requirements = asString(v)
		case "requirement":
			if job.Requirements == "" {
				job.Requirements = asString(v)
			}
			job.Extra[k] = v
		case "position":
			job.Position = asString(v)
		default:
			job.Extra[k] = v
		}
	}
	return job
}

// ToMap reconstructs the full job mapping, named fields plus passthrough.
func (j JobData) ToMap() map[string]any {
	m := make(map[string]any, len(j.Extra)+3)
	for k, v := range j.Extra {
		m[k] = v
	}
	m["description"] = j.Description
	m["requirements"] = j.Requirements
	m["position"] = j.Position
	return m
}

// CombinedText joins the description and requirements, the text the skill
// and similarity scoring runs against.
func (j JobData) CombinedText() string {
	return j.Description + " " + j.Requirements
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
