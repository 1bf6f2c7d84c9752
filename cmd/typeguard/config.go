package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".typeguard.yaml"

// config is the optional YAML config file. Flags given on the command
// line win over it.
type config struct {
	LogLevel string     `yaml:"log_level"`
	Keys     keysConfig `yaml:"keys"`
}

type keysConfig struct {
	All       bool `yaml:"all"`
	Inherited bool `yaml:"inherited"`
	Hidden    bool `yaml:"hidden"`
}

// loadConfig reads path. A missing file is only an error when the path
// was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
