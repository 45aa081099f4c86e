package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type (
	// Config holds the optional user-level defaults for the initializer.
	Config struct {
		Template string `toml:"template"`
		Branch   string `toml:"branch"`
		VenvDir  string `toml:"venv_dir"`
		Python   string `toml:"python"`
	}
)

// Replaced in tests.
var userConfigDir = os.UserConfigDir

// ConfigPath returns the location of the user config file, e.g.
// ~/.config/cli-standard-kit/config.toml on Linux.
func ConfigPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate the user config directory: %w", err)
	}

	return filepath.Join(dir, "cli-standard-kit", "config.toml"), nil
}

// LoadConfig reads the config file at path. A missing file is not an error:
// the zero Config is returned and built-in defaults apply.
func LoadConfig(path string) (cfg Config, err error) {
	_, err = toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return cfg, nil
}
