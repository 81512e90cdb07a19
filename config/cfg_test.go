package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Build.Format != "list" {
		t.Errorf("Default build format = %q, want %q", cfg.Build.Format, "list")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
build:
  output_name_template: "{{ .SourceFile }}-selectors"
  sanitize_names: true
  format: json
logging:
  console:
    level: debug
  file:
    level: normal
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Build.SanitizeNames {
		t.Error("Build.SanitizeNames = false, want true")
	}
	if cfg.Build.Format != "json" {
		t.Errorf("Build.Format = %q, want %q", cfg.Build.Format, "json")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Logging.FileLogger.Mode = %q, want %q", cfg.Logging.FileLogger.Mode, "append")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nnonsense: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("LoadConfiguration() expected error for unknown field")
	}
}

func TestLoadConfiguration_BadFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nbuild:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("LoadConfiguration() expected validation error for unsupported format")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("Dump() output missing version, got:\n%s", data)
	}
}

func TestParseOutputFmt(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFmt
		wantErr bool
	}{
		{"list", OutputFmtList, false},
		{"plain", OutputFmtPlain, false},
		{"JSON", OutputFmtJSON, false},
		{"xml", OutputFmtList, true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFmt(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFmt(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOutputFmt(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
