package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
// A WARN result is advisory: the check passed but noticed something
// worth flagging (e.g. no isolated environment active).
type Result struct {
	Name    string   // e.g., "runtime version", "required tools"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Warning string   // advisory message for WARN results
	Err     error    // underlying error for failures
}

// OK returns true if the check passed, including passes with an
// advisory warning.
func (r Result) OK() bool {
	return r.Status != StatusFail
}
