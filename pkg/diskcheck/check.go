// Package diskcheck reports free disk space for the working directory.
// The check is advisory: low space warns, it never fails the run.
package diskcheck

import (
	"fmt"

	"github.com/mkeranen/setupcheck/pkg/check"
)

// DefaultFloor is the free-space level below which the check warns.
const DefaultFloor = 500 * 1024 * 1024

// SpaceProbe abstracts free-space measurement for testability.
type SpaceProbe interface {
	FreeBytes(path string) (uint64, error)
}

// RealSpaceProbe reads free space from the filesystem.
type RealSpaceProbe struct{}

// FreeBytes returns the free bytes available on the filesystem holding
// path.
func (r *RealSpaceProbe) FreeBytes(path string) (uint64, error) {
	return freeBytes(path)
}

// Check reports free space for a directory against a warning floor.
type Check struct {
	Dir   string     // directory to probe (default: ".")
	Floor uint64     // warn below this many free bytes (default: 500 MiB)
	Probe SpaceProbe // injected for testing
}

// Run executes the advisory check. Always passes.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "free disk space",
	}

	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	floor := c.Floor
	if floor == 0 {
		floor = DefaultFloor
	}
	probe := c.Probe
	if probe == nil {
		probe = &RealSpaceProbe{}
	}

	free, err := probe.FreeBytes(dir)
	if err != nil {
		result.AddDetailf("free space: unavailable (%v)", err)
		return result.Pass()
	}

	result.AddDetailf("free space: %s", formatBytes(free))

	if free < floor {
		return result.Warnf("less than %s free disk space available", formatBytes(floor))
	}

	return result.Pass()
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
