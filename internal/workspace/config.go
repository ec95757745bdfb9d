package workspace

import (
	"fmt"
	"os"

	"github.com/manfredsteyer/polygraph-rules/internal/conformance"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the rule configuration file in the workspace root.
const ConfigFile = "conformance.yaml"

// Config represents conformance.yaml.
type Config struct {
	Version int          `yaml:"version"`
	Rules   []RuleConfig `yaml:"rules"`
}

// RuleConfig enables one rule with its options.
type RuleConfig struct {
	Rule    string              `yaml:"rule"`
	Options conformance.Options `yaml:"options"`
}

// LoadConfig reads and validates a conformance.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates conformance.yaml content.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig validates and writes a config file to disk.
func SaveConfig(path string, cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// NewConfig returns a config enabling a single rule.
func NewConfig(rule string, opts conformance.Options) *Config {
	return &Config{
		Version: 1,
		Rules:   []RuleConfig{{Rule: rule, Options: opts}},
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}
	if len(cfg.Rules) == 0 {
		return fmt.Errorf("config: at least one rule is required")
	}

	seen := make(map[string]bool, len(cfg.Rules))
	for i, rc := range cfg.Rules {
		if rc.Rule == "" {
			return fmt.Errorf("config: rules[%d].rule is required", i)
		}
		if _, err := conformance.Lookup(rc.Rule); err != nil {
			return fmt.Errorf("config: rules[%d]: %w", i, err)
		}
		if seen[rc.Rule] {
			return fmt.Errorf("config: duplicate rule %q", rc.Rule)
		}
		seen[rc.Rule] = true
		if err := rc.Options.Validate(); err != nil {
			return fmt.Errorf("config: rules[%d] (%s): %w", i, rc.Rule, err)
		}
	}
	return nil
}
