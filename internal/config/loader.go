// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns ~/.lusolve/lusolve.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}

	return filepath.Join(home, ".lusolve", "lusolve.yaml"), nil
}

// Load reads the config at path. A missing file is created with
// DefaultConfig and created reports true. Keys absent from the file keep
// their default values.
func Load(path string) (cfg Config, created bool, err error) {
	if _, err = os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = createDefault(path); err != nil {
			return Config{}, false, err
		}
		created = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, created, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, created, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, created, nil
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func createDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
