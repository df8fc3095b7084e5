package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	fileconfig "github.com/custodia-labs/drafta-cli/internal/adapters/driven/config/file"
	docxrender "github.com/custodia-labs/drafta-cli/internal/adapters/driven/render/docx"
	htmlrender "github.com/custodia-labs/drafta-cli/internal/adapters/driven/render/html"
	textrender "github.com/custodia-labs/drafta-cli/internal/adapters/driven/render/text"
	"github.com/custodia-labs/drafta-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drafta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/drafta-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/services"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := fileconfig.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	entryStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening entry store: %w", err)
	}
	defer entryStore.Close()

	cfg := services.DefaultDraftConfig()
	if v := configStore.GetInt("draft.undo_threshold"); v > 0 {
		cfg.UndoThreshold = v
	}
	if v := configStore.GetInt("draft.undo_depth"); v > 0 {
		cfg.UndoDepth = v
	}

	draftService := services.NewDraftService(cfg, entryStore)

	// Configured formatting defaults apply to fresh drafts; a loaded
	// snapshot overrides them below.
	formatting := draftService.Current().Formatting
	if v := configStore.GetInt("format.font_size"); v > 0 {
		formatting.FontSize = v
	}
	if v := configStore.GetFloat("format.line_spacing"); v > 0 {
		formatting.LineSpacing = v
	}
	if formatting != draftService.Current().Formatting {
		if err := draftService.SetFormatting(formatting); err != nil {
			logger.Warn("ignoring configured formatting: %v", err)
		}
	}

	draftService.RegisterRenderer(textrender.NewRenderer())
	draftService.RegisterRenderer(htmlrender.NewRenderer())
	if path := configStore.GetString("export.letterhead"); path != "" {
		renderer, err := docxrender.NewRenderer(path)
		if err != nil {
			logger.Warn("docx export disabled: %v", err)
		} else {
			draftService.RegisterRenderer(renderer)
		}
	}
	draftService.SetTemplateSync(memory.NewTemplateSync())

	ctx := context.Background()
	if err := draftService.Load(ctx); err != nil &&
		!errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrCorruptSnapshot) {
		return fmt.Errorf("loading draft: %w", err)
	}

	interval := services.DefaultAutosaveInterval
	if raw := configStore.GetString("draft.autosave_interval"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn("invalid draft.autosave_interval %q, using default", raw)
		} else {
			interval = parsed
		}
	}
	autosaver := services.NewAutosaver(draftService, interval)
	autosaveCtx, cancelAutosave := context.WithCancel(ctx)
	go func() {
		_ = autosaver.Start(autosaveCtx) // Loop exit is the shutdown path
	}()
	defer func() {
		cancelAutosave()
		autosaver.Stop()
	}()

	cli.SetServices(draftService, services.NewMergeService(), services.NewAnalysisService())

	cmdErr := cli.Execute()

	// Unload-time guard: never exit with unsaved work when a save is
	// possible.
	if draftService.HasUnsavedWork() {
		if err := draftService.Save(ctx); err != nil {
			logger.Warn("final save failed: %v", err)
		}
	}

	return cmdErr
}
