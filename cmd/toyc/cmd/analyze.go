package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/report"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	var (
		noFallthrough bool
		showTokens    bool
	)
	c := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Report syntax and semantic errors",
		Long: `Analyzes a program and prints the lexical summary, the syntax tree
and the diagnostics split into syntax and semantic errors.

Exits with status 1 when any diagnostic is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if noFallthrough {
				cfg.Analysis.FallthroughCheck = toyc.Bool(false)
			}

			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			log.Debug("analyzing", "file", name, "bytes", len(src), "dialect", cfg.Analysis.Dialect.Dialect)

			res := toyc.AnalyzeWithConfig(src, cfg.AnalysisConfig())
			log.Debug("analysis done",
				"tokens", len(res.Tokens),
				"statements", len(res.AST),
				"nodes", res.NodeCount(),
				"syntax_errors", len(res.SyntaxErrors()),
				"semantic_errors", len(res.SemanticErrors()))

			ro := report.FromConfig(cfg.Output)
			ro.Tokens = ro.Tokens || showTokens
			if err := report.Write(cmd.OutOrStdout(), res, ro); err != nil {
				return err
			}
			if res.HasErrors() {
				return ErrDiagnostics
			}
			return nil
		},
	}
	c.Flags().BoolVar(&noFallthrough, "no-fallthrough-check", false, "accept switch cases without break")
	c.Flags().BoolVar(&showTokens, "tokens", false, "include the token stream")
	return c
}
