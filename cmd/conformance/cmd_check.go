package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
	"github.com/manfredsteyer/polygraph-rules/internal/ctxlog"
	"github.com/manfredsteyer/polygraph-rules/internal/ui"
	"github.com/manfredsteyer/polygraph-rules/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the configured conformance rules",
		Long: `Run the rules listed in conformance.yaml against the workspace.

With --expected-version the angular-version-rule runs once with the given
options and conformance.yaml is not read.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	cmd.Flags().String("expected-version", "", "Run angular-version-rule ad hoc with this expected version")
	cmd.Flags().String("prefix", "", "Dependency name prefix for the ad hoc run (default \"@angular/\")")
	cmd.Flags().String("manifest", "", "Manifest path relative to the root for the ad hoc run (default \"package.json\")")
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("strict", false, "Exit with an error when any violation is found")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")
	strict, _ := cmd.Flags().GetBool("strict")
	noColor, _ := cmd.Flags().GetBool("no-color")

	ws, runs, err := resolveRuns(cmd, root)
	if err != nil {
		return err
	}

	log := ctxlog.FromContext(cmd.Context())
	results := make([]ui.RuleResult, 0, len(runs))
	violations := 0
	for _, rc := range runs {
		rule, err := conformance.Lookup(rc.Rule)
		if err != nil {
			return err
		}
		log.Info("running rule", "rule", rule.Name, "root", ws.Root)
		res := rule.Run(cmd.Context(), ws.Root, rc.Options)
		violations += len(res.Details.Violations)
		results = append(results, ui.RuleResult{Rule: rule.Name, Result: res})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else if err := ui.RenderReport(out, results, !noColor && isTerminal(out)); err != nil {
		return err
	}

	if strict && violations > 0 {
		return fmt.Errorf("%d conformance violation(s) found", violations)
	}
	return nil
}

// resolveRuns returns the rule runs from the ad hoc flags, or from
// conformance.yaml when --expected-version is not given.
func resolveRuns(cmd *cobra.Command, root string) (*workspace.Context, []workspace.RuleConfig, error) {
	expected, _ := cmd.Flags().GetString("expected-version")
	if expected == "" {
		ws, err := workspace.Load(root)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s (use --expected-version for an ad hoc run): %w", workspace.ConfigFile, err)
		}
		return ws, ws.Config.Rules, nil
	}

	ws, err := workspace.Resolve(root)
	if err != nil {
		return nil, nil, err
	}
	prefix, _ := cmd.Flags().GetString("prefix")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	return ws, []workspace.RuleConfig{{
		Rule: conformance.AngularVersionRule().Name,
		Options: conformance.Options{
			Version:  expected,
			Prefix:   prefix,
			Manifest: manifestPath,
		},
	}}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
