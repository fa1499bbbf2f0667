package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"linetail/internal/config"
	"linetail/internal/testsupport"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("LINETAIL_CONFIG", "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tempHome); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tail.Lines != 10 {
		t.Fatalf("unexpected default lines: %d", cfg.Tail.Lines)
	}
	if cfg.Tail.BufferSize != 16384 {
		t.Fatalf("unexpected default buffer size: %d", cfg.Tail.BufferSize)
	}
	if cfg.PollInterval() != time.Second {
		t.Fatalf("unexpected default poll interval: %v", cfg.PollInterval())
	}
	if cfg.Tail.Encoding != "utf-8" {
		t.Fatalf("unexpected default encoding: %q", cfg.Tail.Encoding)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linetail.toml")
	testsupport.WriteFile(t, path, `
[tail]
lines = 25
poll_interval_ms = 250
encoding = " ISO-8859-1 "

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing resolved config, got exists=%v path=%q", exists, resolved)
	}
	if cfg.Tail.Lines != 25 {
		t.Fatalf("unexpected lines: %d", cfg.Tail.Lines)
	}
	if cfg.PollInterval() != 250*time.Millisecond {
		t.Fatalf("unexpected poll interval: %v", cfg.PollInterval())
	}
	if cfg.Tail.Encoding != "ISO-8859-1" {
		t.Fatalf("expected trimmed encoding, got %q", cfg.Tail.Encoding)
	}
	if cfg.Tail.BufferSize != 16384 {
		t.Fatalf("expected default buffer size to survive partial config, got %d", cfg.Tail.BufferSize)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging values, got %+v", cfg.Logging)
	}
}

func TestLoadHonorsEnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	testsupport.WriteFile(t, path, "[tail]\nlines = 7\n")
	t.Setenv("LINETAIL_CONFIG", path)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config named by LINETAIL_CONFIG to be used")
	}
	if resolved != path {
		t.Fatalf("resolved %q, want %q", resolved, path)
	}
	if cfg.Tail.Lines != 7 {
		t.Fatalf("unexpected lines: %d", cfg.Tail.Lines)
	}
}

func TestExplicitPathBeatsEnvFallback(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.toml")
	testsupport.WriteFile(t, envPath, "[tail]\nlines = 7\n")
	t.Setenv("LINETAIL_CONFIG", envPath)

	flagPath := filepath.Join(dir, "flag.toml")
	testsupport.WriteFile(t, flagPath, "[tail]\nlines = 3\n")

	cfg, resolved, _, err := config.Load(flagPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != flagPath {
		t.Fatalf("resolved %q, want %q", resolved, flagPath)
	}
	if cfg.Tail.Lines != 3 {
		t.Fatalf("unexpected lines: %d", cfg.Tail.Lines)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"negative lines", "[tail]\nlines = -1\n", "tail.lines"},
		{"zero buffer", "[tail]\nbuffer_size = 0\n", "tail.buffer_size"},
		{"tiny poll", "[tail]\npoll_interval_ms = 5\n", "tail.poll_interval_ms"},
		{"unknown encoding", "[tail]\nencoding = \"nope\"\n", "tail.encoding"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "linetail.toml")
			testsupport.WriteFile(t, path, tc.content)

			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Tail.Lines != 10 {
		t.Fatalf("sample lines = %d, want 10", cfg.Tail.Lines)
	}
}
