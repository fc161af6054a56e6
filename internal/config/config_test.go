package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Dir != "" || cfg.App.Remote != "" {
		t.Fatalf("expected empty source settings, got %+v", cfg.App)
	}
	if cfg.App.Theme != "" {
		t.Fatalf("theme should default empty so saved preferences apply, got %q", cfg.App.Theme)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("footer should default on")
	}
	if cfg.App.Listen != ":8513" {
		t.Fatalf("unexpected default listen address %q", cfg.App.Listen)
	}
	if cfg.Logging.Trace {
		t.Fatalf("trace should default off")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{
		"DEMBRANDT_DIR=/env/results",
		"DEMBRANDT_THEME=light",
		"DEMBRANDT_WIDTH=100",
	}
	cfg, err := LoadArgs([]string{"-dir", "/flag/results", "-width", "80"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Dir != "/flag/results" {
		t.Fatalf("flag should override env, got %q", cfg.App.Dir)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("flag should override env width, got %d", cfg.App.Width)
	}
	if cfg.App.Theme != "light" {
		t.Fatalf("env theme should apply when no flag given, got %q", cfg.App.Theme)
	}
}

func TestLoadArgsEnvBooleans(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DEMBRANDT_TRACE=true", "DEMBRANDT_FOOTER=false"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled from env")
	}
}

func TestLoadArgsBadEnvValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DEMBRANDT_WIDTH=wide", "DEMBRANDT_TRACE=sure"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("unparseable width should fall back to 0, got %d", cfg.App.Width)
	}
	if cfg.Logging.Trace {
		t.Fatalf("unparseable bool should fall back to false")
	}
}

func TestLoadArgsRecordsFlagValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"-open", "alpha.dev"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Open != "alpha.dev" {
		t.Fatalf("expected open domain, got %q", cfg.App.Open)
	}
	if cfg.Flags["open"] != "alpha.dev" {
		t.Fatalf("flag map should record the value, got %q", cfg.Flags["open"])
	}
	if _, ok := cfg.Flags["theme"]; !ok {
		t.Fatalf("flag map should include unset flags")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	cfg.App.Width = -1
	if err := Validate(cfg); err == nil {
		t.Fatalf("negative width should fail validation")
	}
	cfg.App.Width = 0

	cfg.App.Theme = "neon"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "theme") {
		t.Fatalf("unknown theme should fail validation, got %v", err)
	}
	cfg.App.Theme = "dark"

	cfg.App.Serve = true
	cfg.App.Remote = "http://localhost:8513"
	if err := Validate(cfg); err == nil {
		t.Fatalf("serve combined with remote should fail validation")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("unknown flag should error")
	}
}
