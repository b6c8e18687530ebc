package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// ErrExists is returned by Write when the file exists and force is off.
var ErrExists = errors.New("config: file already exists")

// Encode returns cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Write stores cfg at path, creating parent directories. An existing
// file is replaced only with force.
func Write(fs afero.Fs, path string, cfg Config, force bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !force {
		ok, err := afero.Exists(fs, path)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, os.FileMode(0o600))
}
