package services

import (
	"github.com/custodia-labs/drafta-cli/internal/analysis"
	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the spelling, tone, and readability passes.
// Stateless: every call re-scans the full text snapshot.
type AnalysisService struct{}

// NewAnalysisService creates an analysis service.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Analyze runs all three passes over one text snapshot.
func (s *AnalysisService) Analyze(text string) domain.AnalysisResult {
	return analysis.Analyze(text)
}
