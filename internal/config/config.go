package config

import (
	"os"
	"path/filepath"
)

// Picker backend selection values.
const (
	PickerAuto    = "auto"
	PickerZenity  = "zenity"
	PickerKDialog = "kdialog"
	PickerTUI     = "tui"
)

// Config holds application configuration
type Config struct {
	StorePath string
	DBPath    string
	Picker    string
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		StorePath: StorePathFrom(os.Getenv),
		DBPath:    getDefaultDBPath(),
		Picker:    PickerAuto,
	}
}

// WithStorePath sets a custom recently-used store path
func (c *Config) WithStorePath(path string) *Config {
	c.StorePath = path
	return c
}

// WithDBPath sets a custom history database path
func (c *Config) WithDBPath(path string) *Config {
	c.DBPath = path
	return c
}

// WithPicker sets a picker backend override
func (c *Config) WithPicker(name string) *Config {
	c.Picker = name
	return c
}

// StorePathFrom resolves the recently-used store location from the given
// variable lookup: $XDG_DATA_HOME/recently-used.xbel, with the data home
// defaulting to ~/.local/share.
func StorePathFrom(getenv func(string) string) string {
	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "recently-used.xbel"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "recently-used.xbel")
}

func getDefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(homeDir, ".recentdirs", "history.db")
}
