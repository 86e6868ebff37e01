// Package config reads the optional .vaccinate.yaml project file used by
// the CLI to seed injection options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project
// directory.
const FileName = ".vaccinate.yaml"

// Config models .vaccinate.yaml.
type Config struct {
	// Property overrides the declaration property name.
	Property string `yaml:"property,omitempty"`
	// ModuleDirs lists base directories for relative references, tried in
	// order. Relative entries are resolved against the project directory.
	ModuleDirs []string `yaml:"module_dirs,omitempty"`
}

// Load reads projectDir/.vaccinate.yaml. A missing file yields an empty
// configuration, not an error.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	for i, dir := range cfg.ModuleDirs {
		if !filepath.IsAbs(dir) {
			cfg.ModuleDirs[i] = filepath.Join(projectDir, dir)
		}
	}
	return &cfg, nil
}
