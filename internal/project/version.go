package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// packageManifest is the subset of package.json we read
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InstalledVersion reads the version of an installed npm package from
// root/node_modules/<pkg>/package.json.
func InstalledVersion(root, pkg string) (*semver.Version, error) {
	path := filepath.Join(root, "node_modules", pkg, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m packageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("no version in %s", path)
	}

	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", pkg, m.Version, err)
	}
	return v, nil
}

// Supported reports whether v satisfies the major version the generated
// stores target (3.x and later).
func Supported(v *semver.Version) bool {
	return v.Major() >= 3
}
