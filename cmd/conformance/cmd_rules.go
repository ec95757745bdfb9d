package main

import (
	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
	"github.com/manfredsteyer/polygraph-rules/internal/ui"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
}

func runRules(cmd *cobra.Command, _ []string) error {
	tbl := ui.NewTable(cmd.OutOrStdout(), "NAME", "CATEGORY", "DESCRIPTION")
	for _, r := range conformance.Rules() {
		tbl.Row(r.Name, r.Category, r.Description)
	}
	return tbl.Flush()
}
