package fscheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkeranen/setupcheck/pkg/check"
)

func TestFsCheck_WritableDir(t *testing.T) {
	dir := t.TempDir()
	c := Check{Dir: dir}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Fatalf("status = %v, want OK (details: %v)", result.Status, result.Details)
	}

	// A successful probe must leave nothing behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("probe left files behind: %v", entries)
	}
}

func TestFsCheck_MissingDir(t *testing.T) {
	c := Check{Dir: filepath.Join(t.TempDir(), "does-not-exist")}

	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("status = %v, want FAIL for missing directory", result.Status)
	}
	if result.Err == nil {
		t.Error("Err = nil, want the underlying error recorded")
	}
}
