package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/mkeranen/setupcheck/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, reset = "", "", "", ""
	}
}

const (
	bannerRule  = 60
	sectionRule = 40
)

// Verdict tier messages, selected by success rate.
const (
	VerdictTop    = "EXCELLENT! Your setup is ready for the course."
	VerdictMiddle = "GOOD! Minor issues detected, but you should be able to proceed."
	VerdictBottom = "ATTENTION! Several issues detected. Please review and fix errors."
)

// Rate computes the success rate as a percentage.
// A run with zero checks is defined as 0%, not a division error.
func Rate(successes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total) * 100
}

// Verdict maps a success rate to one of three fixed verdict tiers.
func Verdict(rate float64) string {
	switch {
	case rate >= 90:
		return VerdictTop
	case rate >= 75:
		return VerdictMiddle
	default:
		return VerdictBottom
	}
}

// Reporter renders verification progress and the final summary.
type Reporter struct {
	Out io.Writer
}

// New returns a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Header prints the verification banner.
func (p *Reporter) Header() {
	rule := strings.Repeat("=", bannerRule)
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, "SETUP VERIFICATION")
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out)
}

// Section prints a section header.
func (p *Reporter) Section(title string) {
	fmt.Fprintf(p.Out, "\n%s\n", title)
	fmt.Fprintln(p.Out, strings.Repeat("-", sectionRule))
}

// Result outputs a check result with colored status.
func (p *Reporter) Result(r check.Result) {
	switch r.Status {
	case check.StatusFail:
		if r.Err != nil {
			fmt.Fprintf(p.Out, "%s[FAIL]%s %s - %v\n", red, reset, r.Name, r.Err)
		} else {
			fmt.Fprintf(p.Out, "%s[FAIL]%s %s\n", red, reset, r.Name)
		}
	default:
		fmt.Fprintf(p.Out, "%s[OK]%s %s\n", green, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(p.Out, "      %s\n", d)
	}
	if r.Status == check.StatusWarn && r.Warning != "" {
		p.Warning(r.Warning)
	}
}

// Warning outputs an advisory line.
func (p *Reporter) Warning(msg string) {
	fmt.Fprintf(p.Out, "%s[WARN]%s %s\n", yellow, reset, msg)
}

// Summary prints the final summary block: counters, the aggregated
// warning and error lists, the success rate and the verdict tier.
func (p *Reporter) Summary(successes, total int, warnings, errors []string) {
	rule := strings.Repeat("=", bannerRule)
	fmt.Fprintf(p.Out, "\n%s\n", rule)
	fmt.Fprintln(p.Out, "VERIFICATION SUMMARY")
	fmt.Fprintln(p.Out, rule)

	rate := Rate(successes, total)
	fmt.Fprintf(p.Out, "Successful checks: %d/%d (%.1f%%)\n", successes, total, rate)

	if len(warnings) > 0 {
		fmt.Fprintf(p.Out, "Warnings: %d\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(p.Out, "  - %s\n", w)
		}
	}

	if len(errors) > 0 {
		fmt.Fprintf(p.Out, "Errors: %d\n", len(errors))
		for _, e := range errors {
			fmt.Fprintf(p.Out, "  - %s\n", e)
		}
	} else {
		fmt.Fprintln(p.Out, "No errors found.")
	}

	fmt.Fprintf(p.Out, "\n%s\n", rule)
	fmt.Fprintln(p.Out, Verdict(rate))
	fmt.Fprintln(p.Out, rule)
}

// Diagnostics prints environment information after the summary.
func (p *Reporter) Diagnostics(executable, workdir, platform string) {
	fmt.Fprintln(p.Out, "\nAdditional information:")
	fmt.Fprintf(p.Out, "  Executable: %s\n", executable)
	fmt.Fprintf(p.Out, "  Directory:  %s\n", workdir)
	fmt.Fprintf(p.Out, "  Platform:   %s\n", platform)
}
