package toolcheck

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds each version command invocation.
const DefaultTimeout = 10 * time.Second

// Resolver abstracts tool lookup and execution for testability.
type Resolver interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealResolver implements Resolver using the actual OS.
type RealResolver struct{}

// LookPath searches for an executable in PATH.
func (r *RealResolver) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command and returns its output.
func (r *RealResolver) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
