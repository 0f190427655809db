package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Environment is the frontend framework a project is built on.
type Environment int

const (
	Unsupported Environment = iota
	Vue3
	Nuxt3
)

// String returns the display name used in console messages.
func (e Environment) String() string {
	switch e {
	case Vue3:
		return "Vue 3"
	case Nuxt3:
		return "Nuxt 3"
	default:
		return "Unsupported"
	}
}

// Package returns the npm package whose presence marks the environment.
func (e Environment) Package() string {
	switch e {
	case Vue3:
		return "vue"
	case Nuxt3:
		return "nuxt"
	default:
		return ""
	}
}

// Probe reports which environment a project uses.
type Probe interface {
	Detect(ctx context.Context) (Environment, error)
}

// NodeModulesProbe detects the environment from installed packages under
// Root/node_modules. Nuxt takes precedence because it depends on Vue.
type NodeModulesProbe struct {
	Root string
}

// NewNodeModulesProbe creates a probe rooted at the given project directory.
func NewNodeModulesProbe(root string) *NodeModulesProbe {
	return &NodeModulesProbe{Root: root}
}

// Detect checks for node_modules/nuxt, then node_modules/vue.
func (p *NodeModulesProbe) Detect(ctx context.Context) (Environment, error) {
	for _, env := range []Environment{Nuxt3, Vue3} {
		if err := ctx.Err(); err != nil {
			return Unsupported, err
		}
		ok, err := exists(p.marker(env))
		if err != nil {
			return Unsupported, err
		}
		if ok {
			return env, nil
		}
	}
	return Unsupported, nil
}

func (p *NodeModulesProbe) marker(env Environment) string {
	return filepath.Join(p.Root, "node_modules", env.Package())
}

// StaticProbe always reports the same environment.
type StaticProbe Environment

// Detect returns the fixed environment.
func (s StaticProbe) Detect(ctx context.Context) (Environment, error) {
	return Environment(s), nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}
