package config

import (
	"os"
	"path/filepath"
)

const (
	envHome          = "QCREVIEW_HOME"
	settingsFileName = "settings.json"
	databaseFileName = "qc_analytics.sqlite"
)

// GetHome returns $QCREVIEW_HOME or the ~/.qcreview default
func GetHome() string {
	home := os.Getenv(envHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".qcreview"
		}
		return filepath.Join(homeDir, ".qcreview")
	}
	return ExpandPath(home)
}

// GetDBPath returns $QCREVIEW_HOME/qc_analytics.sqlite
func GetDBPath() string {
	return filepath.Join(GetHome(), databaseFileName)
}

// GetSettingsPath returns $QCREVIEW_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), settingsFileName)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
