package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempCatalog creates a temporary snippet directory for testing
type TempCatalog struct {
	Path string
	T    *testing.T
}

// NewTempCatalog creates a new temporary snippet directory
func NewTempCatalog(t *testing.T) *TempCatalog {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "snipmux-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempCatalog{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the temporary snippet directory
func (c *TempCatalog) Cleanup() {
	c.T.Helper()
	if err := os.RemoveAll(c.Path); err != nil {
		c.T.Errorf("failed to cleanup temp catalog: %v", err)
	}
}

// WriteSnippet creates a snippet definition file. The name may contain
// subdirectories.
func (c *TempCatalog) WriteSnippet(name, content string) string {
	c.T.Helper()
	path := filepath.Join(c.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		c.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		c.T.Fatalf("failed to create snippet file: %v", err)
	}
	return path
}

// Remove deletes a snippet definition file
func (c *TempCatalog) Remove(name string) {
	c.T.Helper()
	if err := os.Remove(filepath.Join(c.Path, name)); err != nil {
		c.T.Fatalf("failed to remove snippet file: %v", err)
	}
}
