package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	backend    string
	storePath  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	appCtx := newAppContext(flags)

	cmd := &cobra.Command{
		Use:           "navshell",
		Short:         "navshell is a terminal navigation shell with a persisted settings panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, appCtx)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Settings store backend (memory, file, sqlite)")
	cmd.PersistentFlags().StringVar(&flags.storePath, "store", "", "Settings store location")

	cmd.AddCommand(newResolveCmd(appCtx))
	cmd.AddCommand(newSettingsCmd(appCtx))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
