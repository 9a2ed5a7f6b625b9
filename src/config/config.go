package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "sona"

// ConfigDir returns the OS-appropriate configuration directory for sona
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DataDir returns the directory for sona's own data (history db, socket)
func DataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// DefaultPersonasDir returns the default location for persona documents
func DefaultPersonasDir() string {
	return filepath.Join(DataDir(), "personas")
}

// DefaultHistoryPath returns the default prompt history database path
func DefaultHistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// SocketPath returns the daemon's unix socket path
func SocketPath() string {
	return filepath.Join(DataDir(), "daemon.sock")
}

// EnsureDirs creates the config and data directories if they don't exist
func EnsureDirs() error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(DataDir(), 0755)
}
