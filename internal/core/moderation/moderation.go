package moderation

import (
	"os"
	"strings"
)

// defaultTerms is the built-in blocked-word list. BLOCKED_WORDS overrides it.
var defaultTerms = []string{
	"spam",
	"scam",
	"casino",
	"viagra",
	"free money",
}

// Filter rejects text containing any blocked term.
type Filter struct {
	terms []string
}

func NewFilter(terms []string) *Filter {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	return &Filter{terms: lowered}
}

// NewFilterFromEnv builds a filter from the comma-separated BLOCKED_WORDS
// variable, falling back to the built-in list when it is unset.
func NewFilterFromEnv() *Filter {
	raw := os.Getenv("BLOCKED_WORDS")
	if raw == "" {
		return NewFilter(defaultTerms)
	}
	return NewFilter(strings.Split(raw, ","))
}

// IsClean reports whether no blocked term occurs in text as a
// case-insensitive substring.
func (f *Filter) IsClean(text string) bool {
	lowered := strings.ToLower(text)
	for _, term := range f.terms {
		if strings.Contains(lowered, term) {
			return false
		}
	}
	return true
}
