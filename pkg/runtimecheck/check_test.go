package runtimecheck

import (
	"testing"

	"github.com/mkeranen/setupcheck/pkg/check"
	"github.com/mkeranen/setupcheck/pkg/version"
)

type mockRuntimeInfo struct{ version string }

func (m *mockRuntimeInfo) Version() string { return m.version }

func TestRuntimeCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "version above minimum passes",
			check: Check{
				MinVersion: version.MustParse("1.22"),
				Info:       &mockRuntimeInfo{version: "go1.25.1"},
			},
			wantStatus: check.StatusOK,
			wantDetail: "version: 1.25.1",
		},
		{
			name: "version at minimum passes",
			check: Check{
				MinVersion: version.MustParse("1.22"),
				Info:       &mockRuntimeInfo{version: "go1.22.0"},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "version below minimum fails",
			check: Check{
				MinVersion: version.MustParse("1.22"),
				Info:       &mockRuntimeInfo{version: "go1.21.5"},
			},
			wantStatus: check.StatusFail,
			wantDetail: "version 1.21.5 below minimum 1.22",
		},
		{
			name: "unparsable version fails without panic",
			check: Check{
				MinVersion: version.MustParse("1.22"),
				Info:       &mockRuntimeInfo{version: "devel +abcdef"},
			},
			wantStatus: check.StatusFail,
		},
		{
			name: "no minimum reports version only",
			check: Check{
				Info: &mockRuntimeInfo{version: "go1.25.1"},
			},
			wantStatus: check.StatusOK,
			wantDetail: "version: 1.25.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}

			if tt.wantDetail != "" {
				found := false
				for _, d := range result.Details {
					if d == tt.wantDetail {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected detail %q not found in %v", tt.wantDetail, result.Details)
				}
			}
		})
	}
}

func TestRuntimeCheck_RealInfo(t *testing.T) {
	// The test binary runs on some supported toolchain, so a modest
	// minimum must pass against the real runtime.
	c := Check{MinVersion: version.MustParse("1.0")}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}
