package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/services"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

var (
	analyzeWatch    bool
	analyzeDebounce time.Duration
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Check spelling, tone and readability",
	Long: `Runs the analysis passes over a text.

With a file argument the file's content is analysed; without one the
current draft body is used. With --watch the file is re-analysed after
each change, debounced so rapid edits produce a single pass.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "re-analyse the file on every change")
	analyzeCmd.Flags().DurationVar(&analyzeDebounce, "debounce", services.DefaultAnalysisDelay, "delay between a change and its analysis pass")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	if len(args) == 0 {
		if analyzeWatch {
			return errors.New("--watch needs a file argument")
		}
		if draftService == nil {
			return errors.New("draft service not configured")
		}
		printAnalysis(cmd, analysisService.Analyze(draftService.Current().BodyText))
		return nil
	}

	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	printAnalysis(cmd, analysisService.Analyze(string(text)))

	if !analyzeWatch {
		return nil
	}
	return watchAndAnalyze(cmd, path)
}

// watchAndAnalyze re-runs the analysis on file changes until
// interrupted. Change bursts are debounced into one pass.
func watchAndAnalyze(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	scheduler := services.NewAnalysisScheduler(analysisService, analyzeDebounce, func(result domain.AnalysisResult) {
		cmd.Println()
		printAnalysis(cmd, result)
	})
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)...\n", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			text, err := os.ReadFile(path)
			if err != nil {
				logger.Warn("reading %s: %v", path, err)
				continue
			}
			scheduler.TextChanged(string(text))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func printAnalysis(cmd *cobra.Command, result domain.AnalysisResult) {
	cmd.Println("Analysis")
	cmd.Println("========")

	if len(result.Spelling) == 0 {
		cmd.Println("  Spelling: no issues")
	} else {
		cmd.Printf("  Spelling: %d issue(s)\n", len(result.Spelling))
		for _, issue := range result.Spelling {
			cmd.Printf("    %q at byte %d", issue.Word, issue.Position)
			if len(issue.Suggestions) > 0 {
				cmd.Printf(" (did you mean %q?)", issue.Suggestions[0])
			}
			cmd.Println()
		}
	}

	if len(result.Tone) == 0 {
		cmd.Println("  Tone: no issues")
	} else {
		cmd.Printf("  Tone: %d informal word(s)\n", len(result.Tone))
		for _, issue := range result.Tone {
			cmd.Printf("    %q", issue.Word)
			if len(issue.Suggestions) > 0 {
				cmd.Printf(" (consider %q)", issue.Suggestions[0])
			}
			cmd.Println()
		}
	}

	r := result.Readability
	cmd.Printf("  Readability: %.1f (%s, %s)\n", r.Score, r.GradeLabel, r.Description)
	cmd.Printf("  Counted: %d words, %d sentences\n", r.Words, r.Sentences)
}
