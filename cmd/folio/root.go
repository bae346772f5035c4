package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	contentPath string
	logLevel    string
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio presents a personal portfolio in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive page
			if len(args) == 0 {
				return runPageCmd(cmd, flags, runOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "Path to a portfolio content file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newMarkdownCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
