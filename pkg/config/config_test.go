package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Instrument != "LOCAL" || cfg.Prompt != "> " || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogPath != "" {
		t.Fatalf("expected no log file by default, got %q", cfg.LogPath)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MATCHER_INSTRUMENT", "XBT")
	t.Setenv("MATCHER_PROMPT", "")
	t.Setenv("MATCHER_LOG_PATH", "/tmp/matcher.log")
	t.Setenv("MATCHER_LOG_LEVEL", "debug")

	cfg := LoadFromEnv("")
	if cfg.Instrument != "XBT" {
		t.Fatalf("expected instrument XBT, got %q", cfg.Instrument)
	}
	if cfg.Prompt != "" {
		t.Fatalf("expected empty prompt override, got %q", cfg.Prompt)
	}
	if cfg.LogPath != "/tmp/matcher.log" {
		t.Fatalf("expected log path override, got %q", cfg.LogPath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
	}
}
