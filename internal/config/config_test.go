package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tempDir
}

func TestLoad_ReturnsDefaults_When_NoConfigFound(t *testing.T) {
	tempDir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("expected default format %q, got %q", DefaultFormat, cfg.Format)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, cfg.Theme)
	}
	if cfg.Reporter != DefaultReporter {
		t.Errorf("expected default reporter %q, got %q", DefaultReporter, cfg.Reporter)
	}
	if cfg.FailUnder != nil {
		t.Errorf("expected no fail_under threshold, got %v", *cfg.FailUnder)
	}
}

func TestLoad_ReadsLocalFile_When_Present(t *testing.T) {
	chdirTemp(t)

	yamlContent := "" +
		"title: Nightly lint\n" +
		"format: terminal\n" +
		"theme: mono\n" +
		"no_color: true\n" +
		"fail_under: 8.5\n"
	if err := os.WriteFile(".lintreport.yaml", []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "Nightly lint" {
		t.Errorf("unexpected title: %q", cfg.Title)
	}
	if cfg.Format != "terminal" || cfg.Theme != "mono" || !cfg.NoColor {
		t.Errorf("unexpected config values: %+v", cfg)
	}
	if cfg.FailUnder == nil || *cfg.FailUnder != 8.5 {
		t.Errorf("expected fail_under 8.5, got %v", cfg.FailUnder)
	}
	if cfg.Reporter != DefaultReporter {
		t.Errorf("omitted reporter should default, got %q", cfg.Reporter)
	}
}

func TestLoad_FindsUserConfigDir_When_NoLocalFile(t *testing.T) {
	tempDir := chdirTemp(t)
	xdg := filepath.Join(tempDir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "lintreport")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".lintreport.yaml"), []byte("theme: soft\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "soft" {
		t.Errorf("expected theme from user config dir, got %q", cfg.Theme)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tempDir := chdirTemp(t)
	path := filepath.Join(tempDir, "custom.yaml")
	if err := os.WriteFile(path, []byte("format: terminal\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "terminal" {
		t.Errorf("expected format terminal, got %q", cfg.Format)
	}
}

func TestLoad_ExplicitPathMissing_Fails(t *testing.T) {
	tempDir := chdirTemp(t)

	_, err := Load(filepath.Join(tempDir, "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config, got nil")
	}
}

func TestLoad_MalformedYAML_Fails(t *testing.T) {
	chdirTemp(t)
	if err := os.WriteFile(".lintreport.yaml", []byte("format: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
