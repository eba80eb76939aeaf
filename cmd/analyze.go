package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"repo-analyzer/analyzer"
	"repo-analyzer/helpers"
	"repo-analyzer/logging"
)

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	var quiet, raw bool
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <owner/repo>",
		Short: "Analyze a repository and print the report",
		Example: `  repo-analyzer analyze octocat/hello-world
  repo-analyzer analyze https://github.com/octocat/hello-world --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			a, err := analyzer.New(cfg, logging.New())
			if err != nil {
				return err
			}

			var sink analyzer.Sink = analyzer.NopSink{}
			if !quiet {
				sink = newConsoleSink(cmd.ErrOrStderr())
			}

			out := a.Analyze(cmd.Context(), args[0], sink)
			if raw {
				out, _ = analyzer.Unwrap(out)
			}

			failed := strings.HasPrefix(out, analyzer.ErrorPrefix)
			if output != "" && !failed {
				if err := helpers.SaveFile(output, []byte(out+"\n")); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			if failed {
				return errAnalysisFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show progress")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the report without the instruction envelope")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}
