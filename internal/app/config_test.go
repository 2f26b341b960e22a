package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("listen: \":8080\"\ncors:\n  origins:\n    - http://localhost:3000\nupload:\n  maxBytes: 1048576\nverbose: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Listen != ":8080" {
		t.Fatalf("expected listen :8080, got %q", fc.Listen)
	}
	if len(fc.CORS.Origins) != 1 || fc.CORS.Origins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", fc.CORS.Origins)
	}
	if fc.Upload.MaxBytes != 1<<20 {
		t.Fatalf("expected 1 MiB limit, got %d", fc.Upload.MaxBytes)
	}
	if !fc.Verbose {
		t.Fatalf("expected verbose true")
	}
}

func TestApplyFileConfig_DoesNotOverrideExplicitFlags(t *testing.T) {
	cfg := Config{ListenAddr: ":9999", MaxUploadBytes: 42}
	var fc FileConfig
	fc.Listen = ":8080"
	fc.Upload.MaxBytes = 1 << 20

	ApplyFileConfig(&cfg, fc)
	if cfg.ListenAddr != ":9999" {
		t.Fatalf("file config overrode explicit listen addr: %q", cfg.ListenAddr)
	}
	if cfg.MaxUploadBytes != 42 {
		t.Fatalf("file config overrode explicit upload limit: %d", cfg.MaxUploadBytes)
	}
}

func TestApplyFileConfig_FillsDefaults(t *testing.T) {
	cfg := Config{ListenAddr: DefaultListenAddr}
	var fc FileConfig
	fc.Listen = ":8080"
	fc.CORS.Origins = []string{"https://app.example.com"}

	ApplyFileConfig(&cfg, fc)
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected file listen to fill default, got %q", cfg.ListenAddr)
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Fatalf("expected origins from file, got %v", cfg.AllowedOrigins)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{ListenAddr: ""}); err == nil {
		t.Fatalf("expected error for missing listen addr")
	}
	if err := ValidateConfig(Config{ListenAddr: ":5000", MaxUploadBytes: -1}); err == nil {
		t.Fatalf("expected error for negative upload limit")
	}
	if err := ValidateConfig(Config{ListenAddr: ":5000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
