package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/xform/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) { //nolint:cyclop // Test complexity is acceptable
	// Create temp directory structure
	// tmp/
	//   .git/
	//     config
	//   ignored/
	//     file
	//   src/
	//     main.go
	//   README.md

	tmpDir, err := os.MkdirTemp("", "walker_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup in test

	// Create .git directory
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("git config"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create ignored directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "ignored"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "ignored", "file"), []byte("ignored content"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create src directory
	if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750); err != nil { //nolint:gosec // Test directory permissions
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "src", "main.go"), []byte("package main"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	// Create README.md
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Readme"), 0o600); err != nil { //nolint:gosec // Test file permissions
		t.Fatal(err)
	}

	walker := fs.NewWalker()
	ignores := []string{"ignored"}

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, ignores) {
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files[rel] = true
	}

	// Assertions
	if files[".git/config"] {
		t.Error("expected .git/config to be skipped")
	}
	if files["ignored/file"] {
		t.Error("expected ignored/file to be skipped")
	}
	if !files["src/main.go"] {
		t.Error("expected src/main.go to be found")
	}
	if !files["README.md"] {
		t.Error("expected README.md to be found")
	}
}

func TestHasher_HashFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "hasher_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) //nolint:errcheck // Best effort cleanup in test

	content := []byte("hello world")
	if _, err := tmpFile.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = tmpFile.Close()

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.HashFile(tmpFile.Name())
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if hash1 == 0 {
		t.Error("expected non-zero hash")
	}

	hash2, err := hasher.HashFile(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Error("expected deterministic hash")
	}
}

func TestHasher_HashTree(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hash_tree_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup in test

	if err := os.MkdirAll(filepath.Join(tmpDir, "nested"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "nested", "b.txt"), []byte("b"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.HashTree(tmpDir)
	if err != nil {
		t.Fatalf("HashTree failed: %v", err)
	}

	hash2, err := hasher.HashTree(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Error("expected deterministic tree hash")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "nested", "b.txt"), []byte("changed"), 0o600); err != nil {
		t.Fatal(err)
	}
	hash3, err := hasher.HashTree(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 == hash3 {
		t.Error("expected hash to change when a file's content changes")
	}
}
