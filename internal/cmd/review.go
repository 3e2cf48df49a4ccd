package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adapterwatcher "github.com/imagecheck/qcreview/internal/adapters/watcher"
	"github.com/imagecheck/qcreview/internal/config"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/ui"
)

// ReviewCmd starts the review TUI
type ReviewCmd struct {
	Dir             string `arg:"" optional:"" help:"Directory of images to review" default:"." type:"existingdir"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	IncompleteOnly  bool   `help:"Only show images still missing fields" env:"QCREVIEW_INCOMPLETE_ONLY"`
	NoWatch         bool   `help:"Do not pick up images added to the directory while reviewing"`
	Reviewer        string `help:"Reviewer name (prompted when unset)" short:"r" env:"QCREVIEW_REVIEWER"`
	ShowTrendChart  bool   `help:"Show the validation trend chart by default" default:"false"`
	Viewer          string `help:"Image viewer command (overrides $QCREVIEW_VIEWER and the platform default)" env:"QCREVIEW_VIEWER"`
}

// Run executes the TUI
func (r *ReviewCmd) Run(cli *CLI) error {
	ctx := context.Background()
	r.applySettings(cli.settings)

	reviewer := cli.reviewerOr(r.Reviewer)
	if reviewer == "" {
		appSettings, err := cli.Container.SettingsService.Load(ctx)
		if err != nil {
			logging.Logger.Warn("Reviewer names unavailable", "error", err)
		}
		reviewer, err = ui.PromptReviewer(appSettings.QCNames)
		if errors.Is(err, ui.ErrPromptCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	logging.Logger.Info("Starting review", "dir", r.Dir, "reviewer", reviewer)

	review, err := cli.Container.ReviewService.Open(ctx, services.OpenParams{
		Directory:      r.Dir,
		IncompleteOnly: r.IncompleteOnly,
		Reviewer:       reviewer,
	})
	if err != nil {
		return err
	}

	var watcher ports.ImageWatcher
	if !r.NoWatch {
		w, err := adapterwatcher.New(r.Dir)
		if err != nil {
			logging.Logger.Warn("Directory watching disabled", "error", err)
		} else {
			watcher = w
		}
	}

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil {
		keysConfig = cli.settings.Keys
	}

	model := ui.NewModel(ui.ModelParams{
		Analytics:       cli.Container.AnalyticsService,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keysConfig,
		Review:          review,
		ReviewService:   cli.Container.ReviewService,
		ShowTrendChart:  r.ShowTrendChart,
		Viewer:          cli.Container.Viewer,
		ViewerCmd:       r.Viewer,
		Watcher:         watcher,
	})

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		if _, closeErr := cli.Container.ReviewService.Close(ctx, review); closeErr != nil {
			logging.Logger.Error("Failed to save after TUI error", "error", closeErr)
		}
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return printOutcome(model.Outcome())
}

func (r *ReviewCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if !r.IncompleteOnly {
		r.IncompleteOnly = config.BoolOr(settings.IncompleteOnly, false)
	}
	if r.Viewer == "" {
		r.Viewer = settings.Viewer
	}
	if !r.NoWatch {
		r.NoWatch = !config.BoolOr(settings.Watch, true)
	}
}

// printOutcome reports where the review was saved
func printOutcome(outcome ui.Outcome) error {
	if outcome.Err != nil {
		return outcome.Err
	}
	printCSV(outcome.CSV)

	if outcome.Forced {
		fmt.Println("Exited without organizing files.")
		return nil
	}
	if outcome.Finish != nil {
		printOrganize(outcome.Finish.Organize)
	}
	return nil
}

func printCSV(csv *services.CSVSaveResult) {
	if csv == nil {
		return
	}
	fmt.Printf("Saved %d rows to %s\n", csv.Rows, csv.Path)
	if csv.Warning != "" {
		fmt.Printf("Warning: %s\n", csv.Warning)
	}
}

func printOrganize(result *services.OrganizeResult) {
	if result == nil {
		return
	}
	fmt.Println(result.Message())
	if result.OutputFolder != "" {
		fmt.Printf("Output folder: %s\n", result.OutputFolder)
	}
	for _, msg := range result.Errors {
		fmt.Printf("  %s\n", msg)
	}
}
