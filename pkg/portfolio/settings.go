package portfolio

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadSettings reads settings from a TOML file. A missing or unreadable file
// yields the defaults; invalid fields fall back to their defaults. Settings
// persistence is best-effort and never surfaces an error to the caller.
func LoadSettings(path string, logger *log.Logger) Settings {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) && logger != nil {
			logger.Warn("could not read settings, using defaults", "path", path, "err", err)
		}
		return s
	}

	if _, err := toml.Decode(string(data), &s); err != nil {
		if logger != nil {
			logger.Warn("invalid settings file, using defaults", "path", path, "err", err)
		}
		return DefaultSettings()
	}

	s.Normalize()
	return s
}

// SaveSettings writes settings to a TOML file, creating parent directories
// as needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}
