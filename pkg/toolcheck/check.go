// Package toolcheck verifies that every tool in a required list
// resolves on PATH. It reports per-tool detail lines (resolved with
// discovered version, or not found) and a single aggregate outcome:
// the check passes only when all tools resolve.
package toolcheck

import (
	"context"
	"strings"
	"time"

	"github.com/mkeranen/setupcheck/pkg/check"
	"github.com/mkeranen/setupcheck/pkg/version"
)

// Check resolves a fixed list of required tools.
type Check struct {
	Tools    []string      // required tool names
	Timeout  time.Duration // per-tool version command timeout (default: 10s)
	Resolver Resolver      // injected for testing
}

// Run executes the tool presence check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "required tools",
	}

	resolver := c.Resolver
	if resolver == nil {
		resolver = &RealResolver{}
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	var missing []string
	for _, tool := range c.Tools {
		if _, err := resolver.LookPath(tool); err != nil {
			result.AddDetailf("%s: not found", tool)
			missing = append(missing, tool)
			continue
		}
		result.AddDetailf("%s %s", tool, discoverVersion(resolver, timeout, tool))
	}

	if len(missing) > 0 {
		return result.Failf("missing tools: %s", strings.Join(missing, ", "))
	}

	return result.Pass()
}

// discoverVersion runs "<tool> --version" under a bounded timeout and
// extracts a version number from the output. Discovery is best effort;
// a tool that resolves but reports no parsable version still counts as
// present.
func discoverVersion(resolver Resolver, timeout time.Duration, tool string) string {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := resolver.RunCommandContext(ctx, tool, "--version")
	if err != nil {
		return "(version unknown)"
	}

	out := stdout
	if out == "" {
		out = stderr
	}
	v, err := version.Extract(out)
	if err != nil {
		return "(version unknown)"
	}
	return "v" + v.String()
}
