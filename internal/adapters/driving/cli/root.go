// Package cli implements the drafta command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services consumed by the commands. Wired once at startup via
// SetServices; commands guard against missing services so partial
// wiring fails with a clear error instead of a panic.
var (
	draftService    driving.DraftService
	mergeService    driving.MergeService
	analysisService driving.AnalysisService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "drafta",
	Short: "Draft, analyse and batch-merge formal documents",
	Long: `Drafta is a document drafting engine for formal letters.

It keeps one draft under edit with bounded undo and autosave, runs
spelling, tone and readability analysis over the body text, and can
expand a placeholder template into many documents from tabular data.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the core services into the command tree.
func SetServices(draft driving.DraftService, merge driving.MergeService, analysis driving.AnalysisService) {
	draftService = draft
	mergeService = merge
	analysisService = analysis
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
