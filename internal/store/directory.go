package store

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/simonhull/firebird-suite/pinia/internal/project"
)

// ResolveDirectory turns the raw --directory value into the store
// directory, relative to the project root and slash-separated.
//
// Only the last path segment of raw is kept. Nuxt projects always use
// "stores"; Vue projects use "src/<segment>".
func ResolveDirectory(raw string, env project.Environment) string {
	segment := raw
	if segment == "" {
		segment = DefaultDirectory
	}

	segment = filepath.ToSlash(segment)
	if strings.Contains(segment, "/") {
		parts := strings.Split(segment, "/")
		segment = parts[len(parts)-1]
	}

	if env == project.Nuxt3 {
		return DefaultDirectory
	}
	return path.Join("src", segment)
}

// EnsureDirectory creates root/dir and any missing parents.
// It reports whether the directory had to be created.
func EnsureDirectory(root, dir string) (bool, error) {
	full := filepath.Join(root, filepath.FromSlash(dir))

	info, err := os.Stat(full)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(full, 0755); err != nil {
		return false, fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	return true, nil
}
