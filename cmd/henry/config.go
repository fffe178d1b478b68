package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	configEnv   = "HENRY_CONFIG"
	configFile  = ".henry.yaml"
	historyFile = ".henry_history"
)

// config holds the settings read from the YAML file
type config struct {
	Verbose  bool   `yaml:"verbose"`
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
	History  string `yaml:"history"`
}

func defaultConfig() config {
	return config{
		Color:    true,
		LogLevel: "fatal",
		Prompt:   "> ",
	}
}

// configPath returns $HENRY_CONFIG, or ~/.henry.yaml when it is not set
func configPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFile)
}

// loadConfig reads path on top of the defaults. A missing or empty file
// leaves the defaults untouched.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) historyPath() string {
	if c.History != "" {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// logger configures the standard logger, which also receives the
// diagnostics of internal.Scan and internal.Parse
func (c config) logger(out io.Writer) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !c.Color,
		DisableTimestamp: true,
	})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}
