package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default/config.toml
var configFS embed.FS

// EnvConfigDir overrides where the user config is looked up.
const EnvConfigDir = "MOCKBOARD_CONFIG_DIR"

// Default returns the built-in settings.
func Default() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		panic(fmt.Sprintf("config: embedded default missing: %v", err))
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		panic(fmt.Sprintf("config: embedded default invalid: %v", err))
	}
	return c
}

// Load overlays the TOML in data onto c. Keys not present keep their
// current value; unknown keys are an error.
func (c *Config) Load(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadFromPath reads path over the defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FilePath returns where the user config is expected: inside
// $MOCKBOARD_CONFIG_DIR if that is a directory, else under the user
// config directory. The file need not exist.
func FilePath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mockboard", "config.toml")
	}
	return ""
}

// Resolve loads explicit if given (it must exist), otherwise the user
// config if present, otherwise the defaults. It returns the path used,
// empty for the defaults.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		c, err := LoadFromPath(explicit)
		return c, explicit, err
	}
	path := FilePath()
	if path == "" {
		return Default(), "", nil
	}
	c, err := LoadFromPath(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return nil, path, err
	}
	return c, path, nil
}
