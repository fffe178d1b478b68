package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "henry.yaml", "verbose: true\ncolor: false\nlog_level: debug\nprompt: \"henry> \"\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	expected := config{Verbose: true, Color: false, LogLevel: "debug", Prompt: "henry> "}
	if cfg != expected {
		t.Errorf("config should be %+v instead of %+v", expected, cfg)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	empty := writeFile(t, "empty.yaml", "")
	partial := writeFile(t, "partial.yaml", "history: /tmp/h\n")

	for _, path := range []string{"", missing, empty} {
		cfg, err := loadConfig(path)
		if err != nil || cfg != defaultConfig() {
			t.Errorf("%q: expected defaults, found %+v %v", path, cfg, err)
		}
	}

	cfg, err := loadConfig(partial)
	if err != nil || !cfg.Color || cfg.Prompt != "> " || cfg.historyPath() != "/tmp/h" {
		t.Errorf("unexpected config %+v %v", cfg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	files := map[string]string{
		"unknown.yaml": "colour: true\n",
		"type.yaml":    "verbose: [1]\n",
		"level.yaml":   "log_level: loud\n",
	}
	for name, content := range files {
		if _, err := loadConfig(writeFile(t, name, content)); err == nil {
			t.Errorf("%s should be rejected", name)
		}
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	path := writeFile(t, "env.yaml", "verbose: true\n")
	t.Setenv(configEnv, path)
	if configPath() != path {
		t.Errorf("config path should be %s instead of %s", path, configPath())
	}

	script := writeFile(t, "s.hl", "1 + 1")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-no-color", "run", script}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	if stdout.String() != "1 + 1\n2\n" {
		t.Errorf("verbose from the config file should be honored, found %q", stdout.String())
	}

	// Flags override the file
	stdout.Reset()
	run([]string{"-no-color", "-verbose=false", "run", script}, &stdout, &stderr)
	if stdout.String() != "2\n" {
		t.Errorf("flag should override the config file, found %q", stdout.String())
	}
}

func TestConfigLogger(t *testing.T) {
	var out bytes.Buffer
	cfg := defaultConfig()
	cfg.LogLevel = "debug"
	cfg.Color = false

	log := cfg.logger(&out)
	if log.Level != logrus.DebugLevel {
		t.Errorf("expected debug level, found %v", log.Level)
	}
	log.WithField("line", 3).Error("Expect expression.")
	if !strings.Contains(out.String(), `msg="Expect expression." line=3`) {
		t.Errorf("unexpected log output %q", out.String())
	}
}
