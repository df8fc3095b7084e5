package driving

import "github.com/custodia-labs/drafta-cli/internal/core/domain"

// AnalysisService runs the text analysis passes over a snapshot of
// body text. Every call re-scans the whole text; debouncing repeated
// calls against a live editing stream is the scheduler's concern.
type AnalysisService interface {
	// Analyze runs the spelling, tone, and readability passes.
	Analyze(text string) domain.AnalysisResult
}
