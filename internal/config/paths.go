package config

import (
	"os"
	"path/filepath"
)

// GetFerroHome returns FERRO_HOME or ~/.ferro default
func GetFerroHome() string {
	ferroHome := os.Getenv("FERRO_HOME")
	if ferroHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ferro"
		}
		return filepath.Join(homeDir, ".ferro")
	}
	return ExpandPath(ferroHome)
}

// GetDBPath returns $FERRO_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetFerroHome(), "state.db")
}

// GetSettingsPath returns $FERRO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFerroHome(), "settings.json")
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
