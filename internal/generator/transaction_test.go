package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTransaction_Success(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0644)
	tx.AddFile(filepath.Join(tempDir, "file2.txt"), []byte("content2"), 0644)

	if tx.Len() != 2 {
		t.Fatalf("expected 2 staged files, got %d", tx.Len())
	}

	err := tx.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	content1, err := os.ReadFile(filepath.Join(tempDir, "file1.txt"))
	if err != nil || string(content1) != "content1" {
		t.Error("file1.txt not written correctly")
	}

	content2, err := os.ReadFile(filepath.Join(tempDir, "file2.txt"))
	if err != nil || string(content2) != "content2" {
		t.Error("file2.txt not written correctly")
	}
}

func TestTransaction_RollbackOnError(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0644)

	// Add a file to an invalid path (should fail)
	invalidPath := filepath.Join(tempDir, "\x00invalid", "file2.txt")
	tx.AddFile(invalidPath, []byte("content2"), 0644)

	err := tx.Commit()
	if err == nil {
		t.Fatal("Expected commit to fail with invalid path")
	}

	if _, err := os.Stat(filepath.Join(tempDir, "file1.txt")); !os.IsNotExist(err) {
		t.Error("file1.txt should have been rolled back")
	}
}

func TestTransaction_RestoresExistingContent(t *testing.T) {
	tempDir := t.TempDir()
	barrel := filepath.Join(tempDir, "index.ts")
	original := []byte("export * from \"./cart\";\n")

	if err := os.WriteFile(barrel, original, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tx := NewTransaction()
	tx.AddFile(barrel, []byte("export * from \"./cart\";\nexport * from \"./user\";"), 0644)

	// A directory in the way makes the second write fail.
	blocked := filepath.Join(tempDir, "user.ts")
	if err := os.Mkdir(blocked, 0755); err != nil {
		t.Fatalf("failed to create blocking dir: %v", err)
	}
	tx.AddFile(blocked, []byte("store"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("Expected commit to fail")
	}

	content, err := os.ReadFile(barrel)
	if err != nil {
		t.Fatalf("barrel should still exist: %v", err)
	}
	if string(content) != string(original) {
		t.Errorf("barrel not restored: got %q, want %q", content, original)
	}
}

func TestTransaction_CannotCommitTwice(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "file1.txt"), []byte("content1"), 0644)

	err := tx.Commit()
	if err != nil {
		t.Fatalf("First commit failed: %v", err)
	}

	err = tx.Commit()
	if !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("Expected ErrAlreadyCommitted, got %v", err)
	}
}
