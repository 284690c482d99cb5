package venvcheck

import (
	"testing"

	"github.com/mkeranen/setupcheck/pkg/check"
)

type mockEnvGetter struct {
	Vars map[string]string
}

func (m *mockEnvGetter) LookupEnv(key string) (string, bool) {
	val, ok := m.Vars[key]
	return val, ok
}

func TestVenvCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		vars       map[string]string
		wantStatus check.Status
		wantDetail string
	}{
		{
			name:       "virtualenv indicator passes",
			vars:       map[string]string{"VIRTUAL_ENV": "/home/student/envs/course"},
			wantStatus: check.StatusOK,
			wantDetail: "active: course",
		},
		{
			name:       "conda indicator passes",
			vars:       map[string]string{"CONDA_DEFAULT_ENV": "course"},
			wantStatus: check.StatusOK,
			wantDetail: "active: course",
		},
		{
			name:       "virtualenv preferred over conda",
			vars:       map[string]string{"VIRTUAL_ENV": "/envs/venv-name", "CONDA_DEFAULT_ENV": "conda-name"},
			wantStatus: check.StatusOK,
			wantDetail: "active: venv-name",
		},
		{
			name:       "no indicator warns but does not fail",
			vars:       map[string]string{},
			wantStatus: check.StatusWarn,
		},
		{
			name:       "empty indicator treated as absent",
			vars:       map[string]string{"VIRTUAL_ENV": ""},
			wantStatus: check.StatusWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Check{Getter: &mockEnvGetter{Vars: tt.vars}}
			result := c.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", result.Status, tt.wantStatus)
			}

			// Advisory contract: this check can never fail the run.
			if !result.OK() {
				t.Error("OK() = false; the isolated environment check is advisory only")
			}

			if tt.wantStatus == check.StatusWarn && result.Warning == "" {
				t.Error("warned result carries no advisory message")
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
