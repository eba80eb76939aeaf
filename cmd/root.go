// Package cmd provides the command-line interface for repo-analyzer.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repo-analyzer/config"
)

// Version is set by main.
var Version = "dev"

// errAnalysisFailed signals a failure whose text was already printed.
var errAnalysisFailed = errors.New("analysis failed")

type globalFlags struct {
	configPath string
	apiURL     string
	token      string
	timeout    int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "repo-analyzer",
		Short:         "Analyze GitHub repositories for an agent runtime",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.Path(), "path to the config file")
	pf.StringVar(&flags.apiURL, "api-url", "", "GitHub API base URL (overrides config and "+config.EnvAPIBaseURL+")")
	pf.StringVar(&flags.token, "token", "", "GitHub token (overrides config and "+config.EnvAuthToken+")")
	pf.IntVar(&flags.timeout, "timeout", 0, "per-request timeout in seconds (overrides config and "+config.EnvTimeout+")")

	root.AddCommand(newAnalyzeCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newConfigCmd(flags))

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errAnalysisFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file, then environment,
// then any flag set on the command line.
func (f *globalFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFrom(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL = f.apiURL
	}
	if cmd.Flags().Changed("token") {
		cfg.AuthToken = f.token
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = f.timeout
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
