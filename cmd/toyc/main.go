// toyc - toy C-family front end
//
// Lexes and parses small C or Java-like programs and reports syntax and
// semantic errors. Exits with status 1 when the program has diagnostics.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kolkov/toyc/cmd/toyc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrDiagnostics) {
			errorExit(err)
		}
		os.Exit(1)
	}
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "toyc: %v\n", err)
	os.Exit(1)
}
