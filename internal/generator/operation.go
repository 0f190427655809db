package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrFileExists is returned by WriteFileOp.Validate when the target exists.
var ErrFileExists = errors.New("file already exists")

// Operation represents a file system operation that can be validated and
// staged into a transaction.
//
// Validate checks if the operation would succeed without executing it and
// must not modify the disk.
//
// Stage adds the operation's writes to tx. Nothing is written until the
// transaction is committed.
//
// Description returns a human-readable description for output (e.g., "Create src/stores/cart.ts (162 bytes)").
type Operation interface {
	Validate(ctx context.Context) error
	Stage(tx *Transaction)
	Description() string
}

// Previewer is implemented by operations that can show what they change.
// Execute prints the preview in dry-run mode.
type Previewer interface {
	Preview() string
}

// WriteFileOp creates a new file. It never overwrites.
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	if _, err := os.Stat(op.Path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, op.Path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Stage(tx *Transaction) {
	tx.AddFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// ReplaceFileOp writes a file whether or not it already exists.
// Content is the complete new content, not a patch.
type ReplaceFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *ReplaceFileOp) Validate(ctx context.Context) error {
	info, err := os.Stat(op.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	}
	if err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", op.Path)
	}
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *ReplaceFileOp) Stage(tx *Transaction) {
	tx.AddFile(op.Path, op.Content, op.Mode)
}

func (op *ReplaceFileOp) Description() string {
	if _, err := os.Stat(op.Path); err == nil {
		return fmt.Sprintf("Update %s (%d bytes)", op.Path, len(op.Content))
	}
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// Preview returns a line diff between the current file and Content.
func (op *ReplaceFileOp) Preview() string {
	existing, err := os.ReadFile(op.Path)
	if err != nil {
		existing = nil
	}
	return RenderDiff(op.Path, existing, op.Content)
}
