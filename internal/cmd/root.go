package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/imagecheck/qcreview/internal/config"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	DB          string           `help:"Path of the analytics database" env:"QCREVIEW_DB" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"QCREVIEW_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"QCREVIEW_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"QCREVIEW_MAX_LOG_FILES"`
	NoSound     bool             `help:"Disable notification sounds" env:"QCREVIEW_NO_SOUND"`

	Review   ReviewCmd   `cmd:"" help:"Review the images of a directory (default)" default:"withargs"`
	Stats    StatsCmd    `cmd:"stats" help:"Show validation statistics of a reviewer"`
	History  HistoryCmd  `cmd:"history" help:"List past review sessions"`
	Export   ExportCmd   `cmd:"export" help:"Write the CSV of a reviewed directory"`
	Organize OrganizeCmd `cmd:"organize" help:"Copy images needing follow-up into a new folder"`
	Cards    CardsCmd    `cmd:"cards" help:"Manage custom cards (list, add, remove)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys, app)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults. kong has
	// already applied flags and env vars, so settings only fill what is
	// still at its default.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("QCREVIEW_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = config.IntOr(c.settings.MaxLogFiles, c.MaxLogFiles)
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("QCREVIEW_DEBUG"); !hasEnv {
				c.Debug = config.BoolOr(c.settings.Debug, false)
			}
		}

		if !c.NoSound {
			if _, hasEnv := os.LookupEnv("QCREVIEW_NO_SOUND"); !hasEnv {
				c.NoSound = !config.BoolOr(c.settings.Sound, true)
			}
		}

		if c.DB == "" && c.settings.DBPath != "" {
			c.DB = c.settings.DBPath
		}
	}
	if c.DB == "" {
		c.DB = config.GetDBPath()
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.Debug || c.DebugFile != "" {
		os.Setenv("QCREVIEW_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("QCREVIEW_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("QCREVIEW_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	if c.settings != nil {
		if err := c.settings.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("%w in %s", err, config.GetSettingsPath())
		}
	}

	// Create container AFTER logging is initialized so GORM's logger has a
	// destination
	container, err := NewContainer(ContainerParams{
		CopyWorkers: c.copyWorkers(),
		DBPath:      c.DB,
		Sound:       !c.NoSound,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) copyWorkers() int {
	if c.settings == nil {
		return 0
	}
	return config.IntOr(c.settings.MaxCopyWorkers, 0)
}

// reviewerOr resolves the reviewer name: the flag value, then settings.json
func (c *CLI) reviewerOr(flag string) string {
	if flag != "" {
		return flag
	}
	if c.settings != nil {
		return c.settings.Reviewer
	}
	return ""
}
