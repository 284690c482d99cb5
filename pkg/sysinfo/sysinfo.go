// Package sysinfo gathers the environment details printed after the
// verification summary.
package sysinfo

import (
	"os"
	"runtime"
)

// Info describes the process environment.
type Info struct {
	Executable string
	Workdir    string
	Platform   string
}

// Prober abstracts environment introspection for testability.
type Prober interface {
	Collect() Info
}

// RealProber reads the actual process environment.
type RealProber struct{}

// Collect gathers executable path, working directory and platform.
// Lookup failures degrade to "unknown" rather than failing; this data
// is purely informational.
func (r *RealProber) Collect() Info {
	info := Info{
		Executable: "unknown",
		Workdir:    "unknown",
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	}
	if wd, err := os.Getwd(); err == nil {
		info.Workdir = wd
	}
	return info
}
