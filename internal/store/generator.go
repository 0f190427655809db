package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/pinia/internal/generator"
	"github.com/simonhull/firebird-suite/pinia/internal/output"
	"github.com/simonhull/firebird-suite/pinia/internal/project"
)

// Config wires a Generator to its surroundings. Zero fields get defaults.
type Config struct {
	Root   string        // project root, defaults to "."
	Probe  project.Probe // defaults to a node_modules probe at Root
	Sink   output.Sink   // defaults to stdout
	Writer io.Writer     // operation log, defaults to os.Stdout
}

// Generator creates Pinia stores.
type Generator struct {
	root   string
	probe  project.Probe
	sink   output.Sink
	writer io.Writer
}

// Result describes a completed generation.
type Result struct {
	Environment      project.Environment
	Directory        string // resolved, relative to the project root
	UnitPath         string
	BarrelPath       string
	DirectoryCreated bool
}

// New creates a store generator.
func New(cfg Config) *Generator {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Probe == nil {
		cfg.Probe = project.NewNodeModulesProbe(cfg.Root)
	}
	if cfg.Sink == nil {
		cfg.Sink = output.Stdout()
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &Generator{
		root:   cfg.Root,
		probe:  cfg.Probe,
		sink:   cfg.Sink,
		writer: cfg.Writer,
	}
}

// Generate runs every gate for req and, if all pass, writes the store and
// its barrel export. Every returned error has already been reported on the
// sink.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Kind == "" {
		req.Kind = DefaultKind
	}

	env, err := g.probe.Detect(ctx)
	if err != nil {
		return nil, g.fail(err, fmt.Sprintf("Failed to inspect project: %v", err))
	}
	if env == project.Unsupported {
		return nil, g.fail(ErrUnsupportedEnvironment, "Please make sure you are in a Vue 3 or Nuxt project")
	}

	if err := ValidateReservedName(req.Name); err != nil {
		return nil, g.fail(err, "Store name cannot be index")
	}

	g.sink.Success(fmt.Sprintf("%s detected", env))
	g.checkVersion(env)

	res := &Result{
		Environment: env,
		Directory:   ResolveDirectory(req.Directory, env),
	}
	g.sink.Verbose(fmt.Sprintf("Resolved directory %q to %s", req.Directory, res.Directory))

	dirPath := filepath.Join(g.root, filepath.FromSlash(res.Directory))
	if req.DryRun {
		if _, err := os.Stat(dirPath); os.IsNotExist(err) {
			g.sink.Info(fmt.Sprintf("[DRY RUN] Directory would be created at %s", res.Directory))
		}
	} else {
		created, err := EnsureDirectory(g.root, res.Directory)
		if err != nil {
			return nil, g.fail(err, err.Error())
		}
		if created {
			res.DirectoryCreated = true
			g.sink.Success(fmt.Sprintf("Directory created at %s", res.Directory))
		}
	}

	res.UnitPath = filepath.Join(dirPath, req.Name+".ts")
	res.BarrelPath = filepath.Join(dirPath, BarrelFile)

	if _, err := os.Stat(res.UnitPath); err == nil {
		return nil, g.fail(
			fmt.Errorf("%w: %s", ErrDuplicateUnit, res.UnitPath),
			fmt.Sprintf("Store with name %s already exists in the directory %s", req.Name, res.Directory),
		)
	}

	if err := ValidateNoDot(req.Name); err != nil {
		return nil, g.fail(err, "Store name cannot contain a dot")
	}

	ops, err := g.plan(req, res)
	if err != nil {
		return nil, g.fail(err, err.Error())
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: req.DryRun, Writer: g.writer}); err != nil {
		return nil, g.fail(err, err.Error())
	}

	if req.DryRun {
		g.sink.Info("Dry run complete, no files were written")
		return res, nil
	}

	g.sink.Success(fmt.Sprintf("Store with name %s has been created successfully in the directory %s", req.Name, res.Directory))
	return res, nil
}

// plan renders the store and computes the new barrel content.
// The barrel op comes first so a failed store write rolls it back.
func (g *Generator) plan(req Request, res *Result) ([]generator.Operation, error) {
	content, err := Render(NewUnit(req.Name, req.Kind))
	if err != nil {
		return nil, err
	}

	barrel := NewBarrel(req.Name)
	existing, err := os.ReadFile(res.BarrelPath)
	switch {
	case err == nil:
		barrel = AppendExport(existing, req.Name)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", res.BarrelPath, err)
	}

	return []generator.Operation{
		&generator.ReplaceFileOp{Path: res.BarrelPath, Content: barrel, Mode: 0644},
		&generator.WriteFileOp{Path: res.UnitPath, Content: content, Mode: 0644},
	}, nil
}

// checkVersion reports the installed framework version. A missing or
// unreadable package.json is not an error: the marker directory is enough.
func (g *Generator) checkVersion(env project.Environment) {
	v, err := project.InstalledVersion(g.root, env.Package())
	if err != nil {
		g.sink.Verbose(fmt.Sprintf("Could not determine %s version: %v", env.Package(), err))
		return
	}
	g.sink.Verbose(fmt.Sprintf("Found %s %s", env.Package(), v))
	if !project.Supported(v) {
		g.sink.Warn(fmt.Sprintf("%s %s is installed; generated stores target %s", env.Package(), v, env))
	}
}

func (g *Generator) fail(err error, msg string) error {
	g.sink.Error(msg)
	return err
}
