// Package runtimecheck verifies the Go runtime the binary was built
// with meets the course's minimum version.
package runtimecheck

import (
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/mkeranen/setupcheck/pkg/check"
	"github.com/mkeranen/setupcheck/pkg/version"
)

// RuntimeInfo abstracts runtime introspection for testability.
type RuntimeInfo interface {
	Version() string
}

// RealRuntimeInfo reads the actual runtime version.
type RealRuntimeInfo struct{}

func (r *RealRuntimeInfo) Version() string { return runtime.Version() }

// Check verifies the running Go version against a minimum.
type Check struct {
	MinVersion *semver.Version // minimum required (inclusive)
	Info       RuntimeInfo     // injected for testing
}

// Run executes the runtime version check. A version string that cannot
// be parsed (e.g. a devel toolchain) fails the check rather than
// panicking.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "runtime version",
	}

	info := c.Info
	if info == nil {
		info = &RealRuntimeInfo{}
	}

	raw := info.Version()
	v, err := version.Extract(raw)
	if err != nil {
		return result.Failf("could not parse runtime version %q: %v", raw, err)
	}

	result.AddDetailf("version: %s", v)

	if c.MinVersion != nil && !version.AtLeast(v, c.MinVersion) {
		return result.Failf("version %s below minimum %s", v, c.MinVersion)
	}

	return result.Pass()
}
