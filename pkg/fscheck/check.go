// Package fscheck probes filesystem write permissions: it creates a
// temporary file in the target directory, verifies the written payload
// round trips via a blake3 digest, and removes the file. A successful
// run leaves no state behind.
package fscheck

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/mkeranen/setupcheck/pkg/check"
)

var probePayload = []byte("setupcheck write probe\n")

// Check verifies the target directory is writable.
type Check struct {
	Dir string // directory to probe (default: current working directory)
}

// Run executes the write probe.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "file write permissions",
	}

	dir := c.Dir
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "setupcheck-*.tmp")
	if err != nil {
		return result.Failf("cannot create file: %v", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(probePayload); err != nil {
		_ = f.Close()
		return result.Failf("cannot write: %v", err)
	}
	if err := f.Close(); err != nil {
		return result.Failf("cannot close: %v", err)
	}

	readback, err := os.ReadFile(path)
	if err != nil {
		return result.Failf("cannot read back: %v", err)
	}

	want := blake3.Sum256(probePayload)
	got := blake3.Sum256(readback)
	if !bytes.Equal(want[:], got[:]) {
		return result.Failf("read back content does not match written content")
	}

	if err := os.Remove(path); err != nil {
		return result.Failf("cannot remove: %v", err)
	}

	result.AddDetailf("writable: %s", filepath.Clean(dir))
	return result.Pass()
}
