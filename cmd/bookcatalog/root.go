package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookcatalog/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:           "bookcatalog",
		Short:         "Extract and validate XML book catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadEnv(envFiles...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default ./.env when present)")

	cmd.AddCommand(newServeCmd(), newCheckCmd())
	return cmd
}
