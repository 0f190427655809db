package store

import (
	"embed"
	"fmt"

	"github.com/simonhull/firebird-suite/pinia/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var renderer = generator.NewRenderer()

// Unit is the data a store template is rendered with.
type Unit struct {
	Name        string // store id, e.g. "cart"
	DisplayName string // Name with its first rune upper-cased, e.g. "Cart"
	Kind        Kind
}

// NewUnit builds template data for a store.
func NewUnit(name string, kind Kind) Unit {
	return Unit{
		Name:        name,
		DisplayName: generator.Capitalize(name),
		Kind:        kind,
	}
}

// Binding returns the exported composable name, e.g. "useCartStore".
func (u Unit) Binding() string {
	return "use" + u.DisplayName + "Store"
}

// Render returns the TypeScript source for the store.
func Render(u Unit) ([]byte, error) {
	var tmpl string
	switch u.Kind {
	case KindOption:
		tmpl = "templates/option.ts.tmpl"
	case KindSetup:
		tmpl = "templates/setup.ts.tmpl"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, u.Kind)
	}

	return renderer.RenderFS(templatesFS, tmpl, u)
}
