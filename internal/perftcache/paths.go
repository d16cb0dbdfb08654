// Package perftcache persists perft node counts so repeated perft runs
// against the same (FEN, depth) pair skip recomputation.
package perftcache

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "goattea"

// DefaultDir returns the platform-specific data directory for the perft
// cache database.
// - macOS: ~/Library/Application Support/goattea/perft/
// - Linux: ~/.local/share/goattea/perft/
// - Windows: %APPDATA%/goattea/perft/
func DefaultDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName, "perft")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}
