package toyc

import (
	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/diag"
	"github.com/kolkov/toyc/internal/lexer"
	"github.com/kolkov/toyc/internal/parser"
	"github.com/kolkov/toyc/internal/token"
)

// Version is the toyc version string.
const Version = "0.1.0"

// Re-exported so callers do not need the internal packages.
type (
	Token      = token.Token
	Position   = token.Position
	Dialect    = token.Dialect
	Diagnostic = diag.Diagnostic
	Node       = ast.Stmt
)

// Dialects.
const (
	C    = token.C
	Java = token.Java
)

// Diagnostic kinds.
const (
	Syntax   = diag.Syntax
	Semantic = diag.Semantic
)

// ParseDialect maps "c" or "java" to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	return token.ParseDialect(name)
}

// Result is the outcome of analyzing one source text.
//
// Diagnostics lists lexer problems first, then parser problems, each in
// the order they were found.
type Result struct {
	Tokens      []Token
	AST         []Node
	Diagnostics []Diagnostic
	Dialect     Dialect
}

// Analyze lexes and parses C source with the default configuration.
//
// Example:
//
//	res := toyc.Analyze("int x = 5; int y = x + 1;")
//	if res.HasErrors() {
//	    fmt.Println(res.Err())
//	}
func Analyze(source string) *Result {
	return AnalyzeWithConfig(source, nil)
}

// AnalyzeWithConfig lexes and parses source. A nil config selects the C
// dialect with the fallthrough check enabled.
//
// Analysis never fails. Malformed programs yield diagnostics and a
// partial tree.
func AnalyzeWithConfig(source string, config *Config) *Result {
	if config == nil {
		config = &Config{}
	}
	lx := lexer.New([]byte(source), config.Dialect)
	toks := lx.All()

	res := parser.Parse(toks, parser.Options{
		Dialect:          config.Dialect,
		AllowFallthrough: !config.fallthroughCheck(),
	})

	var diags diag.List
	diags.Append(lx.Diagnostics())
	diags.Append(res.Diagnostics)

	return &Result{
		Tokens:      toks,
		AST:         res.Nodes,
		Diagnostics: diags.All(),
		Dialect:     config.Dialect,
	}
}

// MustAnalyze is like Analyze but panics if source has any diagnostic.
// It simplifies tests and examples that embed known-good programs.
func MustAnalyze(source string) *Result {
	res := Analyze(source)
	if err := res.Err(); err != nil {
		panic(err)
	}
	return res
}

// SyntaxErrors returns the syntax diagnostics in order.
func (r *Result) SyntaxErrors() []Diagnostic {
	return diag.Filter(r.Diagnostics, diag.Syntax)
}

// SemanticErrors returns the semantic diagnostics in order.
func (r *Result) SemanticErrors() []Diagnostic {
	return diag.Filter(r.Diagnostics, diag.Semantic)
}

// HasErrors reports whether any diagnostic was produced.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Err returns nil for a clean program, otherwise an *AnalysisError.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &AnalysisError{Diagnostics: r.Diagnostics}
}

// NodeCount returns the number of nodes in the tree, counting statements
// and expressions alike.
func (r *Result) NodeCount() int {
	n := 0
	for _, s := range r.AST {
		ast.Walk(s, func(ast.Node) bool {
			n++
			return true
		})
	}
	return n
}

// Summary returns the lexical summary of the analyzed tokens.
func (r *Result) Summary() *Summary {
	return Summarize(r.Tokens)
}
