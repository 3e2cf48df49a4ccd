package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
)

// SettingsAppCmd manages the reviewer settings kept in the database
type SettingsAppCmd struct {
	Show SettingsAppShowCmd `cmd:"show" help:"Print the effective reviewer settings as JSON" default:"1"`
	Set  SettingsAppSetCmd  `cmd:"set" help:"Store one reviewer setting"`
}

// SettingsAppShowCmd prints the effective settings
type SettingsAppShowCmd struct{}

// SettingsAppSetCmd stores one setting
type SettingsAppSetCmd struct {
	Key   string `arg:"" help:"Setting key (e.g., qcNames, qcObservations)"`
	Value string `arg:"" help:"JSON value (e.g., '[\"Alice\",\"Bob\"]')"`
}

// Run executes the show command
func (s *SettingsAppShowCmd) Run(cli *CLI) error {
	settings, err := cli.Container.SettingsService.Load(context.Background())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings.Values(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Run executes the set command
func (s *SettingsAppSetCmd) Run(cli *CLI) error {
	if !services.IsAppSettingKey(s.Key) {
		return fmt.Errorf("unknown setting '%s'. Valid settings: %s",
			s.Key, strings.Join(services.AppSettingKeys(), ", "))
	}
	if s.Key == services.SettingCustomCards {
		return fmt.Errorf("use 'qcreview cards' to change custom cards")
	}

	if err := cli.Container.SettingsService.SaveRaw(context.Background(), s.Key, s.Value); err != nil {
		return err
	}

	logging.Logger.Info("App setting updated", "key", s.Key)
	fmt.Printf("Set '%s'\n", s.Key)
	return nil
}
