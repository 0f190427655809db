package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrAlreadyCommitted is returned when Commit is called twice.
var ErrAlreadyCommitted = errors.New("transaction already committed")

// Transaction represents a set of file writes that are committed together
type Transaction struct {
	operations []fileOperation
	committed  bool
}

// fileOperation represents a single file write operation
type fileOperation struct {
	path    string
	content []byte
	mode    os.FileMode
}

// snapshot is the state of a path before the transaction wrote to it
type snapshot struct {
	path    string
	existed bool
	content []byte
	mode    os.FileMode
}

// NewTransaction creates a new file operation transaction
func NewTransaction() *Transaction {
	return &Transaction{
		operations: make([]fileOperation, 0),
	}
}

// AddFile stages a file write operation (doesn't write yet)
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.operations = append(t.operations, fileOperation{
		path:    path,
		content: content,
		mode:    mode,
	})
}

// Len returns the number of staged writes.
func (t *Transaction) Len() int {
	return len(t.operations)
}

// Commit writes all staged files to disk.
// If any write fails, files written so far are put back the way they were.
func (t *Transaction) Commit() error {
	if t.committed {
		return ErrAlreadyCommitted
	}

	done := make([]snapshot, 0, len(t.operations))

	for _, op := range t.operations {
		snap, err := take(op.path)
		if err != nil {
			t.restore(done)
			return err
		}

		dir := filepath.Dir(op.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.restore(done)
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(op.path, op.content, op.mode); err != nil {
			// A failed write may have truncated the file.
			t.restore(append(done, snap))
			return fmt.Errorf("failed to write file %s: %w", op.path, err)
		}

		done = append(done, snap)
	}

	t.committed = true
	return nil
}

// take records what is currently at path
func take(path string) (snapshot, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return snapshot{path: path}, nil
	}
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return snapshot{}, fmt.Errorf("cannot write %s: is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return snapshot{path: path, existed: true, content: content, mode: info.Mode().Perm()}, nil
}

// restore undoes writes in reverse order. Best effort, errors are ignored.
func (t *Transaction) restore(snaps []snapshot) {
	for i := len(snaps) - 1; i >= 0; i-- {
		s := snaps[i]
		if s.existed {
			os.WriteFile(s.path, s.content, s.mode)
		} else {
			os.Remove(s.path)
		}
	}
}
