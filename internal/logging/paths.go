package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory.
// Honors XDG_STATE_HOME, falling back to ~/.local/state/lumen, and to the
// temp directory when no home is available.
func DefaultLogDir() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "lumen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lumen")
	}
	return filepath.Join(home, ".local", "state", "lumen")
}

// DefaultLogPath returns the default launcher log path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "lumen.log")
}
