package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
)

// Context holds the resolved paths and loaded config for a workspace.
type Context struct {
	Root       string
	ConfigPath string
	Config     *Config
}

// Resolve returns a Context for root without loading the config.
func Resolve(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	return &Context{
		Root:       root,
		ConfigPath: filepath.Join(root, ConfigFile),
	}, nil
}

// Load resolves the workspace root and loads conformance.yaml.
func Load(root string) (*Context, error) {
	ctx, err := Resolve(root)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(ctx.ConfigPath)
	if err != nil {
		return nil, err
	}
	ctx.Config = cfg
	return ctx, nil
}

// ManifestPath returns the absolute manifest path the options point at.
func (c *Context) ManifestPath(opts conformance.Options) string {
	return filepath.Join(c.Root, opts.WithDefaults().Manifest)
}
