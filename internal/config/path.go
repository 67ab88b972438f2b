// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultDatabaseFile is where the ledger lives unless database.path is
// configured.
const defaultDatabaseFile = "~/.local/share/cofre/cofre.db"

// ExpandPath resolves ~ and $VAR references in a configured path, so
// values like the database location work as written in the config file.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// DefaultDatabasePath returns the database location used when the
// config does not set one.
func DefaultDatabasePath() string {
	return ExpandPath(defaultDatabaseFile)
}
