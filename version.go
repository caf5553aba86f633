package benchreport

import (
	"fmt"
	"os"
	"path/filepath"

	"benchreport/internal/tomlutil"
)

// manifestName is the project manifest read for the version field.
const manifestName = "Cargo.toml"

// manifest mirrors the subset of the project manifest the pipeline needs.
type manifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

// ResolveVersion reads the project manifest under root and returns the
// package version prefixed with "v". The result names the output directory
// and substitutes the ${version} token in the report title.
func ResolveVersion(root string) (string, error) {
	path := filepath.Join(root, manifestName)
	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the caller-supplied project root
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrManifest, err)
	}

	var m manifest
	if err := tomlutil.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("%w: %v", ErrManifest, err)
	}
	if m.Package.Version == "" {
		return "", fmt.Errorf("%w: %s", ErrVersionMissing, path)
	}

	return "v" + m.Package.Version, nil
}
