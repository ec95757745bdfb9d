package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
	"github.com/manfredsteyer/polygraph-rules/internal/ctxlog"
	"github.com/manfredsteyer/polygraph-rules/internal/manifest"
	"github.com/manfredsteyer/polygraph-rules/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create conformance.yaml interactively or from flags",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().String("expected-version", "", "Expected version (skips the interactive prompt)")
	cmd.Flags().String("prefix", "", "Dependency name prefix (default \"@angular/\")")
	cmd.Flags().String("manifest", "", "Manifest path relative to the root (default \"package.json\")")
	cmd.Flags().Bool("force", false, "Overwrite an existing conformance.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	expected, _ := cmd.Flags().GetString("expected-version")
	prefix, _ := cmd.Flags().GetString("prefix")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	force, _ := cmd.Flags().GetBool("force")

	ws, err := workspace.Resolve(root)
	if err != nil {
		return err
	}
	opts := conformance.Options{Version: expected, Prefix: prefix, Manifest: manifestPath}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if _, err := os.Stat(ws.ConfigPath); err == nil && !force {
		if !interactive {
			return fmt.Errorf("%s already exists (use --force to overwrite)", ws.ConfigPath)
		}
		overwrite, err := promptConfirm(fmt.Sprintf("%s already exists. Overwrite?", workspace.ConfigFile))
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted: %s left unchanged", workspace.ConfigFile)
		}
	}

	if opts.Version == "" {
		if !interactive {
			return fmt.Errorf("interactive init requires a TTY; use --expected-version to specify the version")
		}
		current := currentVersion(cmd, ws.ManifestPath(opts), opts.WithDefaults().Prefix)
		opts.Version, err = promptInput("Expected version for "+opts.WithDefaults().Prefix+" packages", current, requireVersion)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	cfg := workspace.NewConfig(conformance.AngularVersionRule().Name, opts)
	if err := workspace.SaveConfig(ws.ConfigPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (expected version %s)\n", ws.ConfigPath, opts.Version)
	return nil
}

// currentVersion suggests the version the manifest already uses for the
// first dependency matching prefix, or "" when none is usable.
func currentVersion(cmd *cobra.Command, manifestPath, prefix string) string {
	log := ctxlog.FromContext(cmd.Context())
	pkg, err := manifest.Load(manifestPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("cannot read manifest for a version suggestion", "manifest", manifestPath, "error", err)
		}
		return ""
	}
	return suggestVersion(pkg, prefix)
}

func suggestVersion(pkg *manifest.PackageJSON, prefix string) string {
	if v, ok := pkg.Dependencies[prefix+"core"].(string); ok {
		return v
	}
	for _, name := range pkg.DependencyNames() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if v, ok := pkg.Dependencies[name].(string); ok {
			return v
		}
	}
	return ""
}
