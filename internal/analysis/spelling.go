package analysis

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/drafta-cli/internal/analysis/dictionary"
	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// wordPattern matches one word: letters plus interior apostrophes.
var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// CheckSpelling scans text for known misspellings. Each distinct
// misspelled word is reported once, at the byte position of its first
// occurrence, regardless of how often it appears.
func CheckSpelling(text string) []domain.SpellingIssue {
	if text == "" {
		return nil
	}

	var issues []domain.SpellingIssue
	seen := make(map[string]struct{})

	for _, loc := range wordPattern.FindAllStringIndex(text, -1) {
		word := strings.ToLower(text[loc[0]:loc[1]])
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		suggestions, ok := dictionary.LookupSpelling(word)
		if !ok {
			continue
		}
		issues = append(issues, domain.SpellingIssue{
			Word:        word,
			Position:    loc[0],
			Suggestions: suggestions,
		})
	}

	return issues
}
