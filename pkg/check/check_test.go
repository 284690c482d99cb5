package check

import (
	"errors"
	"testing"
)

func TestResultFail(t *testing.T) {
	var r Result
	err := errors.New("boom")
	got := r.Fail("something broke", err)

	if got.Status != StatusFail {
		t.Errorf("Status = %v, want FAIL", got.Status)
	}
	if got.Err != err {
		t.Errorf("Err = %v, want %v", got.Err, err)
	}
	if len(got.Details) != 1 || got.Details[0] != "something broke" {
		t.Errorf("Details = %v, want [something broke]", got.Details)
	}
	if got.OK() {
		t.Error("OK() = true for failed result")
	}
}

func TestResultFailf(t *testing.T) {
	var r Result
	got := r.Failf("missing %d of %d", 2, 5)

	if got.Status != StatusFail {
		t.Errorf("Status = %v, want FAIL", got.Status)
	}
	if got.Err == nil || got.Err.Error() != "missing 2 of 5" {
		t.Errorf("Err = %v, want formatted message", got.Err)
	}
}

func TestResultWarnf(t *testing.T) {
	var r Result
	got := r.Warnf("no isolated environment")

	if got.Status != StatusWarn {
		t.Errorf("Status = %v, want WARN", got.Status)
	}
	if got.Warning != "no isolated environment" {
		t.Errorf("Warning = %q", got.Warning)
	}
	if !got.OK() {
		t.Error("OK() = false for warned result; warnings must not fail a check")
	}
}

func TestResultPass(t *testing.T) {
	var r Result
	r.AddDetailf("version: %s", "1.2.3")
	got := r.Pass()

	if got.Status != StatusOK {
		t.Errorf("Status = %v, want OK", got.Status)
	}
	if !got.OK() {
		t.Error("OK() = false for passed result")
	}
	if len(got.Details) != 1 || got.Details[0] != "version: 1.2.3" {
		t.Errorf("Details = %v", got.Details)
	}
}
