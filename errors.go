package toyc

import (
	"errors"
	"fmt"

	"github.com/kolkov/toyc/internal/diag"
)

// AnalysisError reports that a program produced diagnostics.
type AnalysisError struct {
	Diagnostics []Diagnostic // in the order they were found
}

func (e *AnalysisError) Error() string {
	syntax := len(diag.Filter(e.Diagnostics, diag.Syntax))
	semantic := len(e.Diagnostics) - syntax
	msg := fmt.Sprintf("%s, %s", plural(syntax, "syntax error"), plural(semantic, "semantic error"))
	if len(e.Diagnostics) > 0 {
		msg += "; first: " + e.Diagnostics[0].Error()
	}
	return msg
}

// Unwrap exposes the diagnostics as a diag.Errors value.
func (e *AnalysisError) Unwrap() error {
	return diag.Errors(e.Diagnostics)
}

// IsAnalysisError reports whether err is or wraps an AnalysisError and
// returns its diagnostics.
func IsAnalysisError(err error) ([]Diagnostic, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Diagnostics, true
	}
	return nil, false
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
