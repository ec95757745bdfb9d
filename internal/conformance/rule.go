package conformance

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/manfredsteyer/polygraph-rules/internal/ctxlog"
)

const (
	// DefaultPrefix selects the Angular framework packages.
	DefaultPrefix = "@angular/"
	// DefaultManifest is the manifest path relative to the workspace root.
	DefaultManifest = "package.json"
)

// Options configures the version rule.
type Options struct {
	Version  string `yaml:"version" json:"version"`
	Prefix   string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Manifest string `yaml:"manifest,omitempty" json:"manifest,omitempty"`
}

// WithDefaults returns a copy of o with empty optional fields filled in.
func (o Options) WithDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Manifest == "" {
		o.Manifest = DefaultManifest
	}
	return o
}

// Validate checks that the options can drive a rule run.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Version) == "" {
		return fmt.Errorf("options: version is required")
	}
	if o.Manifest == "" {
		return nil
	}
	if filepath.IsAbs(o.Manifest) {
		return fmt.Errorf("options: manifest: absolute path is not allowed: %s", o.Manifest)
	}
	cleaned := filepath.Clean(o.Manifest)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("options: manifest: path must not escape workspace (contains ..): %s", o.Manifest)
	}
	return nil
}

// Rule describes a conformance rule and how to run it.
type Rule struct {
	Name        string
	Category    string
	Description string

	run func(ctx context.Context, root string, opts Options) Result
}

// Run executes the rule against the workspace at root.
func (r Rule) Run(ctx context.Context, root string, opts Options) Result {
	return r.run(ctx, root, opts)
}

// AngularVersionRule checks that every @angular/ dependency in the
// workspace manifest uses the configured version.
func AngularVersionRule() Rule {
	return Rule{
		Name:        "angular-version-rule",
		Category:    "consistency",
		Description: "An example conformance rule checking for a specific Angular version",
		run:         runVersionRule,
	}
}

func runVersionRule(ctx context.Context, root string, opts Options) Result {
	log := ctxlog.FromContext(ctx)
	opts = opts.WithDefaults()
	manifestPath := filepath.Join(root, opts.Manifest)

	if err := opts.Validate(); err != nil {
		log.Warn("invalid rule options", "error", err)
		return newResult(SeverityHigh, []Violation{{
			WorkspaceViolation: true,
			Message:            fmt.Sprintf("Invalid rule options: %v", err),
		}})
	}

	log.Debug("checking dependency versions",
		"manifest", manifestPath, "prefix", opts.Prefix, "expected", opts.Version)
	res := Check(manifestPath, opts.Version, opts.Prefix)
	log.Debug("check finished", "manifest", manifestPath, "violations", len(res.Details.Violations))
	return res
}

// Rules returns the built-in rules.
func Rules() []Rule {
	return []Rule{AngularVersionRule()}
}

// Lookup returns the built-in rule with the given name.
func Lookup(name string) (Rule, error) {
	for _, r := range Rules() {
		if r.Name == name {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("unknown rule %q", name)
}
