// Package version extracts version numbers from free-form tool output
// and compares them against minimum requirements.
package version

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, go1.25.0, 18.
var versionRegex = regexp.MustCompile(`v?(\d+(?:\.\d+){0,2})`)

// Extract finds and parses the first version number in a string.
// Tool version output rarely is a bare semver ("git version 2.43.0",
// "go1.25.1"), so the surrounding text is stripped first.
func Extract(s string) (*semver.Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("no version found in: %q", s)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", m[1], err)
	}
	return v, nil
}

// AtLeast reports whether v satisfies the minimum (inclusive).
func AtLeast(v, minimum *semver.Version) bool {
	return !v.LessThan(minimum)
}

// MustParse parses a version literal, panicking on invalid input.
// Intended for fixed requirement constants.
func MustParse(s string) *semver.Version {
	return semver.MustParse(s)
}
