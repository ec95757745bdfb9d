package conformance

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/manfredsteyer/polygraph-rules/internal/manifest"
)

// Check compares the version of every dependency in the manifest at
// manifestPath whose name starts with namespacePrefix against
// expectedVersion. Versions are compared as raw strings.
//
// A manifest that cannot be read or parsed yields exactly one workspace
// violation describing the error; Check itself never fails.
func Check(manifestPath, expectedVersion, namespacePrefix string) Result {
	file := filepath.Base(manifestPath)

	pkg, err := manifest.Load(manifestPath)
	if err != nil {
		return newResult(SeverityHigh, []Violation{readError(file, err)})
	}
	return newResult(SeverityHigh, checkVersions(pkg, file, expectedVersion, namespacePrefix))
}

func checkVersions(pkg *manifest.PackageJSON, file, expected, prefix string) []Violation {
	var violations []Violation
	for _, dep := range pkg.DependencyNames() {
		if !strings.HasPrefix(dep, prefix) {
			continue
		}
		// Non-string values never equal the expected version.
		found := pkg.Dependencies[dep]
		if s, ok := found.(string); ok && s == expected {
			continue
		}
		violations = append(violations, Violation{
			WorkspaceViolation: true,
			Message: fmt.Sprintf("Unexpected version of %s configured in %s.\nExpected: %s; found: %s.",
				dep, file, expected, manifest.FormatVersion(found)),
		})
	}
	return violations
}

func readError(file string, err error) Violation {
	return Violation{
		WorkspaceViolation: true,
		Message:            fmt.Sprintf("Error reading %s: %v", file, err),
	}
}
