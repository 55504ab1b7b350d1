package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kolkov/toyc/internal/config"
)

// run executes the command tree with args and stdin, isolated from any
// user configuration.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeClean(t *testing.T) {
	path := writeFile(t, "ok.c", "int main() { int x = 5; return x; }\n")
	out, _, err := run(t, "", "analyze", "--no-color", path)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	for _, want := range []string{"Lexical summary", "FunctionDeclaration", "No errors"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeDiagnostics(t *testing.T) {
	out, _, err := run(t, "int y = x + 1;", "analyze", "--no-color", "-")
	if !errors.Is(err, ErrDiagnostics) {
		t.Fatalf("analyze error = %v, want ErrDiagnostics", err)
	}
	if !strings.Contains(out, `variable "x" is not declared`) {
		t.Errorf("output missing diagnostic:\n%s", out)
	}
}

func TestAnalyzeFlags(t *testing.T) {
	src := "int x = 1; switch (x) { case 1: x = 2; case 2: break; }"
	if _, _, err := run(t, src, "analyze"); !errors.Is(err, ErrDiagnostics) {
		t.Errorf("fallthrough not reported: %v", err)
	}
	if _, _, err := run(t, src, "analyze", "--no-fallthrough-check"); err != nil {
		t.Errorf("--no-fallthrough-check: error = %v", err)
	}

	java := `String s = "a"; if (s == "b") { }`
	out, _, err := run(t, java, "analyze", "--dialect", "java", "--format", "json")
	if !errors.Is(err, ErrDiagnostics) {
		t.Fatalf("java analyze error = %v", err)
	}
	if !strings.Contains(out, `"dialect": "java"`) || !strings.Contains(out, "equals()") {
		t.Errorf("json output:\n%s", out)
	}
}

func TestAnalyzeVerbose(t *testing.T) {
	_, stderr, err := run(t, "int x = 1;", "analyze", "-v")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(stderr, "analysis done") || !strings.Contains(stderr, "tokens=5") {
		t.Errorf("verbose log = %q", stderr)
	}
}

func TestAnalyzeConfigFile(t *testing.T) {
	cfg := writeFile(t, "toyc.toml", "[analysis]\ndialect = \"java\"\n\n[output]\nformat = \"yaml\"\n")
	out, _, err := run(t, "boolean b = true;", "analyze", "--config", cfg)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "dialect: java") {
		t.Errorf("yaml output:\n%s", out)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"analyze", filepath.Join(t.TempDir(), "none.c")}, "cannot open file"},
		{"bad dialect", []string{"analyze", "--dialect", "cobol", "-"}, "unknown dialect"},
		{"bad format", []string{"analyze", "--format", "xml", "-"}, "unknown output format"},
		{"missing config", []string{"analyze", "--config", "/nonexistent/toyc.toml"}, "config file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	out, _, err := run(t, "int x = 1;", "tokens", "--no-color")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	if !strings.Contains(out, "Tokens") || !strings.Contains(out, `"x"`) {
		t.Errorf("tokens output:\n%s", out)
	}
	if strings.Contains(out, "Syntax tree") {
		t.Errorf("tokens output includes the tree:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "toyc v") {
		t.Errorf("version output = %q", out)
	}
}
