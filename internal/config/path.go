// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults installs the default configuration values. Paths follow the
// XDG conventions; callers expand them before use.
func SetDefaults() {
	viper.SetDefault("database.path", "~/.local/share/entaudit/entaudit.db")
	viper.SetDefault("mailbox.path", "~/.local/share/entaudit/mailbox")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
