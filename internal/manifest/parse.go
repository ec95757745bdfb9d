package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a manifest file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the manifest format from the file extension.
// Anything that is not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates a package manifest.
func Load(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes and validates manifest content.
func Parse(data []byte, format Format) (*PackageJSON, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	// The schema guarantees an object with an object-valued dependencies field.
	obj := doc.(map[string]any)
	pkg := &PackageJSON{
		Dependencies: obj["dependencies"].(map[string]any),
	}
	pkg.Name, _ = obj["name"].(string)
	pkg.Version, _ = obj["version"].(string)
	return pkg, nil
}

// decode returns the manifest as a generic JSON value (maps, slices,
// float64, string, bool, nil).
func decode(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		// Accept comments and trailing commas like the Nx devkit reader.
		std, err := hujson.Standardize(bytes.Clone(data))
		if err != nil {
			return nil, fmt.Errorf("parsing manifest JSON: %w", err)
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return nil, fmt.Errorf("parsing manifest JSON: %w", err)
		}
		return doc, nil
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing manifest YAML: %w", err)
		}
		// Round-trip through JSON so YAML scalars and maps take the same
		// shapes as a JSON document.
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest YAML: %w", err)
		}
		doc = nil
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing manifest YAML: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format: %q", format)
	}
}
