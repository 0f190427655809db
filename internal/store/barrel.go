package store

import (
	"fmt"
	"strings"
)

// BarrelFile is the name of the file that re-exports every store.
const BarrelFile = "index.ts"

// ExportLine returns the barrel line for a store.
func ExportLine(name string) string {
	return fmt.Sprintf(`export * from "./%s";`, name)
}

// NewBarrel returns the content of a barrel file holding a single export.
func NewBarrel(name string) []byte {
	return []byte(ExportLine(name) + "\n")
}

// AppendExport adds the export line for name to an existing barrel.
// A single trailing empty line is dropped first so blank lines don't
// accumulate; the result has no trailing newline.
func AppendExport(existing []byte, name string) []byte {
	lines := strings.Split(string(existing), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	lines = append(lines, ExportLine(name))
	return []byte(strings.Join(lines, "\n"))
}
