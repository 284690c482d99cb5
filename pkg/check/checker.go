package check

// Checker is implemented by all check types.
// Each check inspects one aspect of the local environment and returns
// a Result describing the outcome.
//
// Implementations:
//   - runtimecheck.Check: minimum Go runtime version
//   - venvcheck.Check: isolated-environment advisory
//   - toolcheck.Check: required tool resolution
//   - datacheck.Check: numeric library smoke test
//   - plotcheck.Check: offscreen rendering smoke test
//   - netcheck.Check: module proxy reachability
//   - fscheck.Check: filesystem write probe
//   - simcheck.Check: threshold classifier probe
//   - diskcheck.Check: free disk space advisory
type Checker interface {
	Run() Result
}
