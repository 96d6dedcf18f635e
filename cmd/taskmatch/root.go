package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/taskmatch/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	env        string
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "taskmatch",
		Short: "Recommend task assignees by skill relevance",
		Long: `taskmatch ranks potential assignees against a free-text task description
using TF-IDF weighting and cosine similarity.

Run "taskmatch serve" for the HTTP API or "taskmatch rank" to score a request file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.env, "env", config.GetEnv(),
		"environment name, selects config/<env>.yaml and the log format")
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "",
		"explicit config file (overrides --env lookup)")

	cmd.AddCommand(newServeCmd(g))
	cmd.AddCommand(newRankCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig reads the config selected by the global flags.
func (g *globalFlags) loadConfig() (config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	return config.Load(g.env)
}
