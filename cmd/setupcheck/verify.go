package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkeranen/setupcheck/pkg/check"
	"github.com/mkeranen/setupcheck/pkg/datacheck"
	"github.com/mkeranen/setupcheck/pkg/diskcheck"
	"github.com/mkeranen/setupcheck/pkg/fscheck"
	"github.com/mkeranen/setupcheck/pkg/netcheck"
	"github.com/mkeranen/setupcheck/pkg/output"
	"github.com/mkeranen/setupcheck/pkg/plotcheck"
	"github.com/mkeranen/setupcheck/pkg/runner"
	"github.com/mkeranen/setupcheck/pkg/runtimecheck"
	"github.com/mkeranen/setupcheck/pkg/simcheck"
	"github.com/mkeranen/setupcheck/pkg/sysinfo"
	"github.com/mkeranen/setupcheck/pkg/toolcheck"
	"github.com/mkeranen/setupcheck/pkg/venvcheck"
	"github.com/mkeranen/setupcheck/pkg/version"
)

// errVerificationFailed is returned when at least one check failed.
var errVerificationFailed = errors.New("verification failed")

// minGoVersion is the oldest runtime the course material supports.
var minGoVersion = version.MustParse("1.22")

// requiredTools must all resolve on PATH for the toolchain check to pass.
var requiredTools = []string{"git", "python3", "pip3", "jupyter"}

// registryURL is probed to confirm package downloads will work.
const registryURL = "https://proxy.golang.org/golang.org/x/mod/@latest"

// step pairs a human-readable description with its check. The runner
// treats every check identically; no step depends on another's outcome.
type step struct {
	description string
	checker     check.Checker
}

type section struct {
	title string
	steps []step
}

// defaultPlan is the full fixed check sequence, in execution order.
func defaultPlan() []section {
	return []section{
		{
			title: "Runtime Environment",
			steps: []step{
				{"Go runtime version", &runtimecheck.Check{MinVersion: minGoVersion}},
				{"Isolated environment", &venvcheck.Check{}},
				{"File write permissions", &fscheck.Check{}},
				{"Free disk space", &diskcheck.Check{}},
			},
		},
		{
			title: "Toolchain",
			steps: []step{
				{"Required tools installed", &toolcheck.Check{Tools: requiredTools}},
				{"Data manipulation", &datacheck.Check{}},
				{"Visualization", &plotcheck.Check{}},
			},
		},
		{
			title: "Connectivity and Functionality",
			steps: []step{
				{"Network connectivity (module proxy)", &netcheck.Check{URL: registryURL, JSONField: "Version"}},
				{"Threat detection simulation", &simcheck.Check{}},
			},
		},
	}
}

// verify runs every check in the plan, prints the summary and the
// diagnostic trailer, and returns the aggregated state.
func verify(rep *output.Reporter, plan []section, prober sysinfo.Prober) runner.State {
	rep.Header()

	run := runner.New(rep)
	for _, sec := range plan {
		rep.Section(sec.title)
		for _, st := range sec.steps {
			run.Run(st.description, st.checker)
		}
	}

	state := run.State()
	rep.Summary(state.Successes, state.Total, state.Warnings, state.Errors)

	info := prober.Collect()
	rep.Diagnostics(info.Executable, info.Workdir, info.Platform)

	return state
}

func runVerify(_ *cobra.Command, _ []string) error {
	state := verify(output.New(os.Stdout), defaultPlan(), &sysinfo.RealProber{})
	if !state.OK() {
		return errVerificationFailed
	}
	return nil
}
