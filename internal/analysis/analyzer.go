package analysis

import "github.com/custodia-labs/drafta-cli/internal/core/domain"

// Analyze runs all three passes over one text snapshot and bundles
// the results. The passes are independent; they are only combined
// here for presentation.
func Analyze(text string) domain.AnalysisResult {
	return domain.AnalysisResult{
		Spelling:    CheckSpelling(text),
		Tone:        CheckTone(text),
		Readability: CalculateReadability(text),
	}
}
