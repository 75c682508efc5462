// Package probe performs the single lightweight HTTP request used to
// measure endpoint reachability and latency. Expected failure modes
// (timeouts, auth rejections, rate limits, server errors) are data, not
// errors: every attempt produces a mapped outcome the engine can consume.
package probe

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// DefaultTimeout is the per-attempt budget when none is configured.
const DefaultTimeout = 10 * time.Second

// Result is the outcome of one probe attempt. ElapsedMs is wall-clock time
// to completion, or to the abort point for timeouts.
type Result struct {
	ElapsedMs  int
	Outcome    endpoint.Outcome
	StatusCode int
	ErrorCode  string
}

// Ping converts the result into the immutable history record.
func (r Result) Ping() endpoint.Ping {
	return endpoint.Ping{ElapsedMs: r.ElapsedMs, Outcome: r.Outcome}
}

// httpDoer is the request primitive; *http.Client satisfies it.
// Tests substitute a fake to exercise outcome mapping without a network.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Probe issues one GET against url within the timeout and maps the response
// to a closed outcome set. The credential, when present, is sent as a bearer
// token; an auth-rejected attempt still measures reachability latency.
// Probe never blocks past its budget and never returns an error for the
// expected failure modes.
func Probe(ctx context.Context, client httpDoer, url, credential string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{ElapsedMs: elapsedMs(start), Outcome: endpoint.OutcomeOther}
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := client.Do(req)
	elapsed := elapsedMs(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return Result{ElapsedMs: elapsed, Outcome: endpoint.OutcomeTimeout}
		}
		return Result{ElapsedMs: elapsed, Outcome: endpoint.OutcomeOther}
	}
	defer resp.Body.Close()

	return Result{
		ElapsedMs:  elapsed,
		Outcome:    mapStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		ErrorCode:  errorCode(resp.StatusCode),
	}
}

// mapStatus maps an HTTP status code into the closed outcome set. Any new
// raw status must land in one of these before reaching the engine.
func mapStatus(status int) endpoint.Outcome {
	switch {
	case status >= 200 && status < 300:
		return endpoint.OutcomeSuccess
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return endpoint.OutcomeAuthMissing
	case status == http.StatusTooManyRequests:
		return endpoint.OutcomeRateLimited
	case status >= 500:
		return endpoint.OutcomeServerError
	default:
		return endpoint.OutcomeOther
	}
}

// errorCode returns the status as a string for non-success responses, "" for
// successes. The endpoint record keeps the most recent one for verdicts.
func errorCode(status int) string {
	if status >= 200 && status < 300 {
		return ""
	}
	return strconv.Itoa(status)
}

func elapsedMs(start time.Time) int {
	return int(time.Since(start).Milliseconds())
}
