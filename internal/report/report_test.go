package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/config"
)

func allSections(format string) Options {
	return Options{Format: format, Tokens: true, Summary: true, AST: true}
}

func TestWriteText(t *testing.T) {
	res := toyc.Analyze("int x = 5; int y = z; }")

	var buf bytes.Buffer
	if err := Write(&buf, res, allSections(config.FormatText)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Lexical summary",
		"Keywords: int",
		"Identifiers: x y z",
		"Literals: (none)",
		"Tokens",
		`"int"`,
		"Syntax tree",
		"Assignment int x =",
		"Constant 5 (int)",
		"Syntax errors (1)",
		"unmatched '}'",
		"Semantic errors (1)",
		`1:20: variable "z" is not declared`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("text report contains escape codes with color disabled")
	}
}

func TestWriteTextClean(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: config.FormatText}
	if err := Write(&buf, toyc.Analyze("int x = 1;"), opts); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No errors") {
		t.Errorf("clean report = %q, want \"No errors\"", out)
	}
	if strings.Contains(out, "Lexical summary") || strings.Contains(out, "Syntax tree") {
		t.Errorf("disabled sections rendered:\n%s", out)
	}
}

func TestWriteYAML(t *testing.T) {
	res := toyc.Analyze("int y = x + 1;")

	var buf bytes.Buffer
	if err := Write(&buf, res, allSections(config.FormatYAML)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		Dialect        string           `yaml:"dialect"`
		Summary        []Group          `yaml:"summary"`
		AST            []map[string]any `yaml:"ast"`
		SemanticErrors []Diagnostic     `yaml:"semanticErrors"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, buf.String())
	}
	if got.Dialect != "c" {
		t.Errorf("dialect = %q, want c", got.Dialect)
	}
	if len(got.Summary) != 7 {
		t.Errorf("summary groups = %d, want 7", len(got.Summary))
	}
	if len(got.AST) != 1 || got.AST[0]["type"] != "Assignment" {
		t.Errorf("ast = %v", got.AST)
	}
	if len(got.SemanticErrors) != 1 || got.SemanticErrors[0].Pos != "1:9" {
		t.Errorf("semanticErrors = %+v", got.SemanticErrors)
	}
}

func TestWriteJSON(t *testing.T) {
	res := toyc.AnalyzeWithConfig("int n = 1; if (n) { }", &toyc.Config{Dialect: toyc.Java})

	var buf bytes.Buffer
	if err := Write(&buf, res, Options{Format: config.FormatJSON}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got["dialect"] != "java" {
		t.Errorf("dialect = %v, want java", got["dialect"])
	}
	if _, ok := got["ast"]; ok {
		t.Error("ast present with the section disabled")
	}
	syntax, ok := got["syntaxErrors"].([]any)
	if !ok || len(syntax) != 0 {
		t.Errorf("syntaxErrors = %v, want empty list", got["syntaxErrors"])
	}
	semantic, ok := got["semanticErrors"].([]any)
	if !ok || len(semantic) != 1 {
		t.Errorf("semanticErrors = %v, want 1 entry", got["semanticErrors"])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, toyc.Analyze(""), Options{Format: "xml"}); err == nil {
		t.Error("Write() should fail for an unknown format")
	}
}

func TestFromConfig(t *testing.T) {
	opts := FromConfig(config.Default().Output)
	want := Options{Format: config.FormatText, Color: true, Summary: true, AST: true}
	if opts != want {
		t.Errorf("FromConfig(Default) = %+v, want %+v", opts, want)
	}
}
