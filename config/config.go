// Package config loads optional run defaults from a YAML file. A missing
// file is not an error; flags always override whatever is loaded.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Lab             string `yaml:"lab"`
	PipelineVersion string `yaml:"pipeline_version"`
	Destination     string `yaml:"destination"`
	LogFile         string `yaml:"log_file"`
}

func Load(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
