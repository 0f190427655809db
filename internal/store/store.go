// Package store generates Pinia store files inside a Vue 3 or Nuxt 3 project.
//
// A generation runs a fixed sequence of gates and then commits two writes
// together:
//
//	detect environment → reject reserved name → resolve (and create) directory
//	→ reject duplicate store → reject dotted name → render template
//	→ commit barrel update + store file → report
//
// The first failing gate aborts the run with exactly one error message on
// the Sink. A directory created by the resolve step is left in place.
package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedEnvironment = errors.New("neither Vue 3 nor Nuxt 3 detected")
	ErrReservedName           = errors.New("reserved store name")
	ErrDuplicateUnit          = errors.New("store already exists")
	ErrInvalidName            = errors.New("invalid character in store name")
	ErrUnknownKind            = errors.New("unknown store type")
)

// Kind selects the store template.
type Kind string

const (
	KindOption Kind = "option" // defineStore with state/getters/actions object
	KindSetup  Kind = "setup"  // defineStore with a setup function
)

// DefaultKind is used when no type is given.
const DefaultKind = KindOption

// DefaultDirectory is the directory segment used when none is given.
const DefaultDirectory = "stores"

// Kinds returns the accepted --type values in display order.
func Kinds() []string {
	return []string{string(KindOption), string(KindSetup)}
}

// ParseKind converts a --type value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindOption, KindSetup:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w %q (allowed: %s)", ErrUnknownKind, s, strings.Join(Kinds(), ", "))
	}
}

// Request describes one store to generate.
type Request struct {
	Name      string
	Directory string // raw --directory value, normalised by ResolveDirectory
	Kind      Kind
	DryRun    bool
}
