// Package report renders analysis results as styled text, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/config"
)

// Options selects what a report contains and how it is encoded.
type Options struct {
	Format  string // config.FormatText, FormatYAML or FormatJSON
	Color   bool
	Tokens  bool
	Summary bool
	AST     bool
}

// FromConfig derives report options from the output section.
func FromConfig(c config.OutputConfig) Options {
	return Options{
		Format:  c.Format,
		Color:   c.Color == nil || *c.Color,
		Tokens:  c.Tokens,
		Summary: c.Summary == nil || *c.Summary,
		AST:     c.AST == nil || *c.AST,
	}
}

// Report is the encodable view of a toyc.Result.
type Report struct {
	Dialect        string       `yaml:"dialect" json:"dialect"`
	Summary        []Group      `yaml:"summary,omitempty" json:"summary,omitempty"`
	Tokens         []Token      `yaml:"tokens,omitempty" json:"tokens,omitempty"`
	AST            []any        `yaml:"ast,omitempty" json:"ast,omitempty"`
	SyntaxErrors   []Diagnostic `yaml:"syntaxErrors" json:"syntaxErrors"`
	SemanticErrors []Diagnostic `yaml:"semanticErrors" json:"semanticErrors"`

	nodes []toyc.Node
}

// Group is one section of the lexical summary.
type Group struct {
	Kind  string   `yaml:"kind" json:"kind"`
	Texts []string `yaml:"texts" json:"texts"`
}

// Token is one lexeme with its position.
type Token struct {
	Kind string `yaml:"kind" json:"kind"`
	Text string `yaml:"text" json:"text"`
	Pos  string `yaml:"pos" json:"pos"`
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Pos     string `yaml:"pos" json:"pos"`
	Message string `yaml:"message" json:"message"`
}

// New builds a Report from res with the sections opts enables.
func New(res *toyc.Result, opts Options) *Report {
	r := &Report{
		Dialect:        res.Dialect.String(),
		SyntaxErrors:   diagnostics(res.SyntaxErrors()),
		SemanticErrors: diagnostics(res.SemanticErrors()),
	}
	if opts.Summary {
		for _, g := range res.Summary().Groups {
			r.Summary = append(r.Summary, Group{Kind: g.Name(), Texts: nonNil(g.Texts)})
		}
	}
	if opts.Tokens {
		for _, t := range res.Tokens {
			r.Tokens = append(r.Tokens, Token{Kind: t.Kind.String(), Text: t.Text, Pos: t.Pos.String()})
		}
	}
	if opts.AST {
		r.nodes = res.AST
		r.AST = ast.ToMaps(res.AST)
	}
	return r
}

func diagnostics(ds []toyc.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(ds))
	for _, d := range ds {
		out = append(out, Diagnostic{Pos: d.Pos.String(), Message: d.Message})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Write renders res to w in the format opts selects.
func Write(w io.Writer, res *toyc.Result, opts Options) error {
	r := New(res, opts)
	switch opts.Format {
	case config.FormatYAML:
		return r.WriteYAML(w)
	case config.FormatJSON:
		return r.WriteJSON(w)
	case config.FormatText, "":
		return r.WriteText(w, opts.Color)
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteText renders the report for a terminal: lexical summary, tokens,
// tree dump, then syntax and semantic errors.
func (r *Report) WriteText(w io.Writer, color bool) error {
	st := newStyles(w, color)
	var sb strings.Builder

	if len(r.Summary) > 0 {
		sb.WriteString(st.header.Render("Lexical summary") + "\n")
		for _, g := range r.Summary {
			texts := st.muted.Render("(none)")
			if len(g.Texts) > 0 {
				texts = strings.Join(g.Texts, " ")
			}
			fmt.Fprintf(&sb, "  %s %s\n", st.kind.Render(g.Kind+":"), texts)
		}
		sb.WriteString("\n")
	}

	if len(r.Tokens) > 0 {
		sb.WriteString(st.header.Render("Tokens") + "\n")
		for _, t := range r.Tokens {
			fmt.Fprintf(&sb, "  %-8s %s %q\n", t.Pos, st.kind.Render(fmt.Sprintf("%-12s", t.Kind)), t.Text)
		}
		sb.WriteString("\n")
	}

	if r.nodes != nil {
		sb.WriteString(st.header.Render("Syntax tree") + "\n")
		p := ast.NewPrinter(&sb)
		for _, n := range r.nodes {
			if err := p.Dump(n); err != nil {
				return err
			}
		}
		sb.WriteString("\n")
	}

	writeDiagnostics(&sb, st.syntax, st.muted, "Syntax errors", r.SyntaxErrors)
	writeDiagnostics(&sb, st.semantic, st.muted, "Semantic errors", r.SemanticErrors)

	if len(r.SyntaxErrors)+len(r.SemanticErrors) == 0 {
		sb.WriteString(st.ok.Render("No errors") + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDiagnostics(sb *strings.Builder, title, pos lipgloss.Style, heading string, ds []Diagnostic) {
	if len(ds) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s\n", title.Render(fmt.Sprintf("%s (%d)", heading, len(ds))))
	for _, d := range ds {
		fmt.Fprintf(sb, "  %s %s\n", pos.Render(d.Pos+":"), d.Message)
	}
	sb.WriteString("\n")
}
