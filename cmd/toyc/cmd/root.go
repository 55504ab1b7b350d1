// Package cmd implements the toyc command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/config"
)

// ErrDiagnostics is returned when the analyzed program has diagnostics.
// The report has already been written, so callers only set the exit status.
var ErrDiagnostics = errors.New("program has diagnostics")

// flags shared by every subcommand
type options struct {
	cfgFile string
	verbose bool
	dialect string
	format  string
	noColor bool
}

// NewRootCmd builds the toyc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "toyc",
		Short: "toyc - front end for toy C-family programs",
		Long: `toyc lexes and parses small C or Java-like programs and reports
what is wrong with them. Syntax errors and semantic errors (scoping,
initialization, types, control flow) are collected, never fatal.

Examples:
  toyc analyze prog.c
  toyc analyze --dialect java Main.java
  toyc analyze --format yaml prog.c
  cat prog.c | toyc analyze -
  toyc tokens prog.c`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./toyc.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	pf.StringVar(&opts.dialect, "dialect", "", "source dialect: c or java")
	pf.StringVar(&opts.format, "format", "", "output format: text, yaml or json")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newAnalyzeCmd(opts), newTokensCmd(opts), newVersionCmd())
	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// logger returns a text logger on the command's stderr. Without
// --verbose only warnings are shown.
func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file and applies flag overrides.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dialect") {
		d, err := toyc.ParseDialect(o.dialect)
		if err != nil {
			return nil, err
		}
		cfg.Analysis.Dialect.Dialect = d
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if o.noColor {
		cfg.Output.Color = toyc.Bool(false)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readSource reads the named file, or standard input for "-" or no name.
func readSource(cmd *cobra.Command, args []string) (name, src string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("cannot open file %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}
