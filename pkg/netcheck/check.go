// Package netcheck probes network reachability with one bounded-timeout
// GET to the module registry. Timeouts, DNS failures and refused
// connections resolve to a normal check failure, never a hang.
package netcheck

import (
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mkeranen/setupcheck/pkg/check"
)

// DefaultTimeout bounds the request so an unreachable network cannot
// stall the run.
const DefaultTimeout = 5 * time.Second

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// Check verifies the registry endpoint responds with a valid version
// document.
type Check struct {
	URL       string        // target URL (required)
	JSONField string        // field that must exist in the response body
	Timeout   time.Duration // request timeout (default: 5s)
	Client    HTTPClient    // injected for testing
}

// Run executes the reachability check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "network connectivity",
	}

	if c.URL == "" {
		return result.Failf("URL is required")
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}

	req, err := http.NewRequest(http.MethodGet, c.URL, http.NoBody)
	if err != nil {
		return result.Failf("failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result.Failf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result.Failf("status %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	if c.JSONField != "" {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return result.Failf("failed to read response body: %v", err)
		}
		field := gjson.GetBytes(body, c.JSONField)
		if !field.Exists() {
			return result.Failf("response field %q not found", c.JSONField)
		}
		result.AddDetailf("%s: %s", c.JSONField, field.String())
	}

	result.AddDetailf("status %d", resp.StatusCode)
	return result.Pass()
}
