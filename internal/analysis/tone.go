package analysis

import (
	"strings"

	"github.com/custodia-labs/drafta-cli/internal/analysis/dictionary"
	"github.com/custodia-labs/drafta-cli/internal/core/domain"
)

// CheckTone scans text for informal words and suggests formal
// alternatives. De-duplicated by lower-cased word, first occurrence
// wins, same tokenisation as the spelling pass.
func CheckTone(text string) []domain.ToneIssue {
	if text == "" {
		return nil
	}

	var issues []domain.ToneIssue
	seen := make(map[string]struct{})

	for _, raw := range wordPattern.FindAllString(text, -1) {
		word := strings.ToLower(raw)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}

		suggestions, ok := dictionary.LookupTone(word)
		if !ok {
			continue
		}
		issues = append(issues, domain.ToneIssue{
			Word:        word,
			Suggestions: suggestions,
		})
	}

	return issues
}
