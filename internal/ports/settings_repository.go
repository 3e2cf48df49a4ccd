package ports

import "context"

// SettingsRepository stores named settings as raw JSON strings
type SettingsRepository interface {
	LoadAllSettings(ctx context.Context) (map[string]string, error)
	SaveSetting(ctx context.Context, key, value string) error
}
