package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kolkov/toyc"
	"github.com/kolkov/toyc/internal/report"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream and lexical summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debug("tokenizing", "file", name, "bytes", len(src))

			res := toyc.AnalyzeWithConfig(src, cfg.AnalysisConfig())
			ro := report.FromConfig(cfg.Output)
			ro.Tokens, ro.AST = true, false
			return report.Write(cmd.OutOrStdout(), res, ro)
		},
	}
}
