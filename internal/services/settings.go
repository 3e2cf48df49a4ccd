package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// App setting keys
const (
	SettingAnalyticsLayout        = "analyticsLayout"
	SettingColorSettings          = "colorSettings"
	SettingCustomCards            = "customCards"
	SettingGridLayout             = "gridLayout"
	SettingImageViewerHeight      = "imageViewerHeight"
	SettingNextActionOptions      = "nextActionOptions"
	SettingQCDecisionOptions      = "qcDecisionOptions"
	SettingQCNames                = "qcNames"
	SettingQCObservations         = "qcObservations"
	SettingRetouchDecisionOptions = "retouchDecisionOptions"
	SettingRetouchObservations    = "retouchObservations"
	SettingWallpaper              = "wallpaper"
)

// DefaultImageViewerHeight is the viewer height used before one is saved
const DefaultImageViewerHeight = 400

// AppSettings is the reviewer configuration kept in the settings table
type AppSettings struct {
	AnalyticsLayout        []domain.LayoutItem
	ColorSettings          domain.ColorSettings
	CustomCards            []domain.CustomCard
	GridLayout             []domain.LayoutItem
	ImageViewerHeight      int
	NextActionOptions      []domain.Option
	QCDecisionOptions      []domain.Option
	QCNames                []string
	QCObservations         []domain.Option
	RetouchDecisionOptions []domain.Option
	RetouchObservations    []domain.Option
	Wallpaper              domain.Wallpaper
}

// DefaultAppSettings returns the built-in configuration
func DefaultAppSettings() AppSettings {
	return AppSettings{
		ColorSettings:          domain.DefaultColorSettings(),
		GridLayout:             defaultGridLayout(),
		ImageViewerHeight:      DefaultImageViewerHeight,
		NextActionOptions:      domain.DefaultNextActions(),
		QCDecisionOptions:      domain.DefaultQCDecisions(),
		QCObservations:         domain.DefaultObservations(),
		RetouchDecisionOptions: domain.DefaultRetouchDecisions(),
		RetouchObservations:    domain.DefaultObservations(),
		Wallpaper:              domain.Wallpaper{Fit: "cover", Mode: "default", Scale: 100},
	}
}

func defaultGridLayout() []domain.LayoutItem {
	return []domain.LayoutItem{
		{I: "qc-panel", X: 0, Y: 0, W: 4, H: 40, MinW: 3, MinH: 30},
		{I: "retouch-panel", X: 4, Y: 0, W: 4, H: 40, MinW: 3, MinH: 30},
		{I: "next-action-panel", X: 8, Y: 0, W: 4, H: 40, MinW: 3, MinH: 30},
	}
}

// ObservationOptions returns the observation sets for a RecordStore
func (a AppSettings) ObservationOptions() ObservationOptions {
	return ObservationOptions{
		QC:      a.QCObservations,
		Retouch: a.RetouchObservations,
	}
}

// SettingsService loads and saves AppSettings, one JSON value per key
type SettingsService struct {
	repo ports.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// Load reads every setting. Keys that fail to parse keep their default and
// do not affect the others. Missing color settings are written back with
// the defaults.
func (s *SettingsService) Load(ctx context.Context) (AppSettings, error) {
	settings := DefaultAppSettings()

	raw, err := s.repo.LoadAllSettings(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load app settings", "error", err)
		return settings, fmt.Errorf("failed to load app settings: %w", err)
	}

	targets := settings.targets()
	for key, value := range raw {
		decode, ok := targets[key]
		if !ok {
			logging.Logger.Debug("Ignoring unknown app setting", "key", key)
			continue
		}
		if err := decode(value); err != nil {
			logging.Logger.Warn("Failed to parse app setting, using default", "key", key, "error", err)
			continue
		}
	}

	settings.fillEmptyOptionSets()

	if _, ok := raw[SettingColorSettings]; !ok {
		logging.Logger.Info("No color settings found, saving defaults")
		if err := s.Save(ctx, SettingColorSettings, settings.ColorSettings); err != nil {
			logging.Logger.Warn("Failed to save default color settings", "error", err)
		}
	}

	logging.Logger.Info("App settings loaded", "keys", len(raw), "customCards", len(settings.CustomCards))
	return settings, nil
}

// decoder parses a raw setting into dst. A parse failure leaves dst
// untouched.
func decoder[T any](dst *T) func(string) error {
	return func(raw string) error {
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return err
		}
		*dst = value
		return nil
	}
}

// Save stores one setting as JSON
func (s *SettingsService) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	if err := s.repo.SaveSetting(ctx, key, string(data)); err != nil {
		logging.Logger.Error("Failed to save app setting", "key", key, "error", err)
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	logging.Logger.Debug("App setting saved", "key", key)
	return nil
}

// SaveAll stores every setting, continuing past individual failures
func (s *SettingsService) SaveAll(ctx context.Context, settings AppSettings) error {
	var errs []error
	for key, value := range settings.Values() {
		if err := s.Save(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveRaw stores a JSON value for key after checking it decodes into the
// setting's type
func (s *SettingsService) SaveRaw(ctx context.Context, key, raw string) error {
	var scratch AppSettings
	decode, ok := scratch.targets()[key]
	if !ok {
		return fmt.Errorf("unknown setting %s", key)
	}
	if err := decode(raw); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if key == SettingCustomCards {
		return s.SaveCustomCards(ctx, scratch.CustomCards)
	}
	if err := s.repo.SaveSetting(ctx, key, raw); err != nil {
		logging.Logger.Error("Failed to save app setting", "key", key, "error", err)
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// AppSettingKeys returns every setting key, sorted
func AppSettingKeys() []string {
	return slices.Sorted(maps.Keys(DefaultAppSettings().Values()))
}

// IsAppSettingKey reports whether key names an app setting
func IsAppSettingKey(key string) bool {
	return slices.Contains(AppSettingKeys(), key)
}

// SaveCustomCards validates and stores the card list
func (s *SettingsService) SaveCustomCards(ctx context.Context, cards []domain.CustomCard) error {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	if cards == nil {
		cards = []domain.CustomCard{}
	}
	return s.Save(ctx, SettingCustomCards, cards)
}

func (a *AppSettings) targets() map[string]func(string) error {
	return map[string]func(string) error{
		SettingAnalyticsLayout:        decoder(&a.AnalyticsLayout),
		SettingColorSettings:          decoder(&a.ColorSettings),
		SettingCustomCards:            decoder(&a.CustomCards),
		SettingGridLayout:             decoder(&a.GridLayout),
		SettingImageViewerHeight:      decoder(&a.ImageViewerHeight),
		SettingNextActionOptions:      decoder(&a.NextActionOptions),
		SettingQCDecisionOptions:      decoder(&a.QCDecisionOptions),
		SettingQCNames:                decoder(&a.QCNames),
		SettingQCObservations:         decoder(&a.QCObservations),
		SettingRetouchDecisionOptions: decoder(&a.RetouchDecisionOptions),
		SettingRetouchObservations:    decoder(&a.RetouchObservations),
		SettingWallpaper:              decoder(&a.Wallpaper),
	}
}

// Values returns every setting keyed by its name
func (a AppSettings) Values() map[string]any {
	return map[string]any{
		SettingAnalyticsLayout:        a.AnalyticsLayout,
		SettingColorSettings:          a.ColorSettings,
		SettingCustomCards:            a.CustomCards,
		SettingGridLayout:             a.GridLayout,
		SettingImageViewerHeight:      a.ImageViewerHeight,
		SettingNextActionOptions:      a.NextActionOptions,
		SettingQCDecisionOptions:      a.QCDecisionOptions,
		SettingQCNames:                a.QCNames,
		SettingQCObservations:         a.QCObservations,
		SettingRetouchDecisionOptions: a.RetouchDecisionOptions,
		SettingRetouchObservations:    a.RetouchObservations,
		SettingWallpaper:              a.Wallpaper,
	}
}

// fillEmptyOptionSets restores defaults for option sets saved as empty
func (a *AppSettings) fillEmptyOptionSets() {
	defaults := DefaultAppSettings()
	if len(a.QCDecisionOptions) == 0 {
		a.QCDecisionOptions = defaults.QCDecisionOptions
	}
	if len(a.RetouchDecisionOptions) == 0 {
		a.RetouchDecisionOptions = defaults.RetouchDecisionOptions
	}
	if len(a.NextActionOptions) == 0 {
		a.NextActionOptions = defaults.NextActionOptions
	}
	if len(a.QCObservations) == 0 {
		a.QCObservations = defaults.QCObservations
	}
	if len(a.RetouchObservations) == 0 {
		a.RetouchObservations = defaults.RetouchObservations
	}
}
