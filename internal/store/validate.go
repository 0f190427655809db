package store

import (
	"fmt"
	"strings"
)

// ValidateReservedName rejects names containing "index", which would
// collide with the barrel file.
func ValidateReservedName(name string) error {
	if strings.Contains(name, "index") {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// ValidateNoDot rejects names containing a dot.
func ValidateNoDot(name string) error {
	if strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
