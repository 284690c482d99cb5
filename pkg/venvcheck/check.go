// Package venvcheck detects whether an isolated course environment is
// active. The check is advisory: it never fails the run, it only warns
// when no indicator is present.
package venvcheck

import (
	"os"
	"path/filepath"

	"github.com/mkeranen/setupcheck/pkg/check"
)

// EnvGetter abstracts environment lookups for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Indicator variables checked in order. The first one set wins.
var indicators = []string{"VIRTUAL_ENV", "CONDA_DEFAULT_ENV"}

// Check reports whether an isolated environment indicator is set.
type Check struct {
	Getter EnvGetter // injected for testing
}

// Run executes the advisory check. Always passes; warns when no
// indicator is found.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "isolated environment",
	}

	getter := c.Getter
	if getter == nil {
		getter = &RealEnvGetter{}
	}

	for _, name := range indicators {
		if value, ok := getter.LookupEnv(name); ok && value != "" {
			result.AddDetailf("active: %s", filepath.Base(value))
			return result.Pass()
		}
	}

	return result.Warnf("not running in an isolated environment (recommended but not required)")
}
