package main

import (
	"github.com/manfredsteyer/polygraph-rules/internal/ctxlog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "conformance",
		Short:             "Run workspace conformance rules",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCheckCmd(),
		newRulesCmd(),
		newInitCmd(),
	)

	return cmd
}

// setupLogger attaches a stderr logger at the configured level to the
// command context.
func setupLogger(cmd *cobra.Command, _ []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := ctxlog.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger := ctxlog.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}
