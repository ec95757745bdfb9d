package manifest

import (
	"encoding/json"
	"sort"
)

// PackageJSON represents the parts of a package manifest the rules consume.
type PackageJSON struct {
	Name    string
	Version string
	// Dependencies maps dependency names to their raw version specifiers.
	// Values are usually strings but are kept as decoded so callers can
	// report malformed entries.
	Dependencies map[string]any
}

// DependencyNames returns the dependency names in sorted order.
func (p *PackageJSON) DependencyNames() []string {
	names := make([]string, 0, len(p.Dependencies))
	for name := range p.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatVersion renders a dependency value for messages. Strings are
// returned as is, anything else as compact JSON.
func FormatVersion(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(data)
}
