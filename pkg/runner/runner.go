// Package runner executes a fixed sequence of environment checks and
// aggregates their outcomes. No check failure, error or panic stops the
// sequence; every outcome is converted to recorded state and the run
// always continues to the summary.
package runner

import (
	"fmt"

	"github.com/mkeranen/setupcheck/pkg/check"
	"github.com/mkeranen/setupcheck/pkg/output"
)

// State aggregates check outcomes over one run.
// Warnings are advisory and orthogonal to pass/fail:
// Total == Successes + len(Errors) always holds.
type State struct {
	Successes int
	Total     int
	Warnings  []string
	Errors    []string
}

// OK reports whether the run succeeded overall. Warnings do not count.
func (s State) OK() bool {
	return len(s.Errors) == 0
}

// Func adapts a plain predicate into a Checker. A false return is a
// hard failure; a non-nil error is recorded with its message.
type Func func() (bool, error)

// Run implements check.Checker.
func (f Func) Run() check.Result {
	var r check.Result
	ok, err := f()
	if err != nil {
		return r.Fail(err.Error(), err)
	}
	if !ok {
		r.Status = check.StatusFail
		return r
	}
	return r.Pass()
}

// Runner executes checks in declared order and records their outcomes.
type Runner struct {
	rep   *output.Reporter
	state State
}

// New returns a Runner reporting through rep.
func New(rep *output.Reporter) *Runner {
	return &Runner{rep: rep}
}

// Run executes one check under the given description, records the
// outcome and prints the result line. It never propagates a panic;
// any escaping panic becomes a recorded error. The total counter is
// incremented exactly once regardless of outcome.
func (r *Runner) Run(description string, c check.Checker) bool {
	r.state.Total++

	res := invoke(c)
	res.Name = description
	r.rep.Result(res)

	switch res.Status {
	case check.StatusFail:
		if res.Err != nil {
			r.state.Errors = append(r.state.Errors, fmt.Sprintf("%s - %v", description, res.Err))
		} else {
			r.state.Errors = append(r.state.Errors, description)
		}
	case check.StatusWarn:
		r.state.Successes++
		if res.Warning != "" {
			r.state.Warnings = append(r.state.Warnings, res.Warning)
		}
	default:
		r.state.Successes++
	}

	return res.OK()
}

// Warn records and prints an advisory without touching the counters.
func (r *Runner) Warn(description string) {
	r.state.Warnings = append(r.state.Warnings, description)
	r.rep.Warning(description)
}

// State returns a copy of the aggregated run state.
func (r *Runner) State() State {
	return r.state
}

// OK reports whether no check has failed so far.
func (r *Runner) OK() bool {
	return r.state.OK()
}

// invoke runs the check inside a fault boundary.
func invoke(c check.Checker) (res check.Result) {
	defer func() {
		if p := recover(); p != nil {
			res = check.Result{
				Status: check.StatusFail,
				Err:    fmt.Errorf("%v", p),
			}
		}
	}()
	return c.Run()
}
