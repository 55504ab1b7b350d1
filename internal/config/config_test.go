package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolkov/toyc/internal/token"
)

func TestDialect_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected token.Dialect
		wantErr  bool
	}{
		{"c", "c", token.C, false},
		{"java", "java", token.Java, false},
		{"capitalized", "Java", token.Java, false},
		{"empty", "", token.C, false},
		{"invalid", "pascal", token.C, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dialect
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Dialect != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Dialect, tt.expected)
			}
		})
	}
}

func TestDialect_MarshalText(t *testing.T) {
	got, err := Dialect{token.Java}.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(got) != "java" {
		t.Errorf("MarshalText() = %q, want %q", got, "java")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Analysis.Dialect.Dialect != token.C {
		t.Errorf("Dialect = %v, want c", cfg.Analysis.Dialect)
	}
	if !*cfg.Analysis.FallthroughCheck {
		t.Error("FallthroughCheck = false, want true")
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Output.Format, FormatText)
	}
	if !*cfg.Output.Color || !*cfg.Output.Summary || !*cfg.Output.AST {
		t.Error("Color, Summary and AST should default to true")
	}
	if cfg.Output.Tokens {
		t.Error("Tokens should default to false")
	}
}

func TestLoad(t *testing.T) {
	content := `
[analysis]
dialect = "java"
fallthrough_check = false

[output]
format = "yaml"
color = false
tokens = true
`
	path := filepath.Join(t.TempDir(), "toyc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Analysis.Dialect.Dialect != token.Java {
		t.Errorf("Dialect = %v, want java", cfg.Analysis.Dialect)
	}
	if *cfg.Analysis.FallthroughCheck {
		t.Error("FallthroughCheck = true, want false")
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("Format = %q, want yaml", cfg.Output.Format)
	}
	if *cfg.Output.Color {
		t.Error("Color = true, want false")
	}
	if !cfg.Output.Tokens {
		t.Error("Tokens = false, want true")
	}
	// Unset keys keep their defaults.
	if !*cfg.Output.Summary {
		t.Error("Summary = false, want default true")
	}

	ac := cfg.AnalysisConfig()
	if ac.Dialect != token.Java || ac.FallthroughCheck == nil || *ac.FallthroughCheck {
		t.Errorf("AnalysisConfig() = %+v", ac)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[analysis\ndialect = 1"},
		{"bad dialect", "[analysis]\ndialect = \"pascal\""},
		{"bad format", "[output]\nformat = \"xml\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() should fail for %s", tt.name)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode("[output]\nformat = \"json\"\nast = false\n")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Output.Format != FormatJSON || *cfg.Output.AST {
		t.Errorf("Decode() = %+v", cfg.Output)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(path, []byte("[analysis]\ndialect = \"java\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Analysis.Dialect.Dialect != token.Java {
		t.Errorf("Dialect = %v, want java", cfg.Analysis.Dialect)
	}
}
