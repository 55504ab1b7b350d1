// Package toyc provides a front end for toy C-family programs.
//
// toyc lexes and parses small C or Java-like programs and reports what is
// wrong with them, featuring:
//   - A total lexer: every input yields a token stream
//   - A recursive descent parser with panic-mode error recovery
//   - Scope, initialization and nominal type checks during parsing
//   - Diagnostics that are collected, never thrown
//
// # Quick Start
//
//	res := toyc.Analyze(`int x = 5; int y = x + 1;`)
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
//
// With configuration:
//
//	res := toyc.AnalyzeWithConfig(src, &toyc.Config{
//	    Dialect:          toyc.Java,
//	    FallthroughCheck: toyc.Bool(false),
//	})
//
// # Results
//
// A [Result] holds the token stream, the top-level statements and the
// diagnostics. Diagnostics are split into two kinds:
//   - [Syntax]: the tokens do not match the grammar
//   - [Semantic]: the grammar matched but the program is meaningless
//
// [Result.Summary] groups the distinct token texts by kind.
//
// # Thread Safety
//
// Every call to [Analyze] uses its own lexer, parser and symbol table,
// so concurrent analyses share no state.
package toyc
