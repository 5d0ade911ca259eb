package nlp

import "strings"

// stopWords filters common English words that add noise to phrase extraction.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"do": true, "does": true, "each": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true,
	"his": true, "how": true, "i": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "me": true,
	"more": true, "my": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "our": true, "she": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "to": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "who": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
}

// IsStopWord reports whether token is a common English stop word.
func IsStopWord(token string) bool {
	return stopWords[strings.ToLower(strings.TrimSpace(token))]
}
