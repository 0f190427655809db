package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute validates every operation, then commits them together.
// In dry-run mode nothing is written; each operation is reported and
// previews are printed for operations that provide one.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := op.Validate(ctx); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Report or commit
	if opts.DryRun {
		for _, op := range ops {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			if p, ok := op.(Previewer); ok {
				if preview := p.Preview(); preview != "" {
					fmt.Fprint(opts.Writer, preview)
				}
			}
		}
		return nil
	}

	// Descriptions depend on disk state, so capture them before writing.
	descriptions := make([]string, len(ops))
	tx := NewTransaction()
	for i, op := range ops {
		descriptions[i] = op.Description()
		op.Stage(tx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	for _, d := range descriptions {
		fmt.Fprintf(opts.Writer, "✓ %s\n", d)
	}
	return nil
}
