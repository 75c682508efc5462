package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
	"github.com/erwinh22/free-coding-models-sub000/internal/logger"
)

// fakeDoer returns a canned response or error without touching the network.
type fakeDoer struct {
	status  int
	err     error
	delay   time.Duration
	lastReq *http.Request
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req

	if f.delay > 0 {
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(f.delay):
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil
}

func TestProbe_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		outcome   endpoint.Outcome
		errorCode string
	}{
		{"200 is success", 200, endpoint.OutcomeSuccess, ""},
		{"204 is success", 204, endpoint.OutcomeSuccess, ""},
		{"401 is auth missing", 401, endpoint.OutcomeAuthMissing, "401"},
		{"403 is auth missing", 403, endpoint.OutcomeAuthMissing, "403"},
		{"429 is rate limited", 429, endpoint.OutcomeRateLimited, "429"},
		{"500 is server error", 500, endpoint.OutcomeServerError, "500"},
		{"503 is server error", 503, endpoint.OutcomeServerError, "503"},
		{"404 is other", 404, endpoint.OutcomeOther, "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeDoer{status: tt.status}
			result := Probe(context.Background(), client, "https://api.example.com/v1/models", "", time.Second)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.status, result.StatusCode)
			assert.Equal(t, tt.errorCode, result.ErrorCode)
		})
	}
}

func TestProbe_RateLimitCodeMatchesEndpointConstant(t *testing.T) {
	client := &fakeDoer{status: 429}
	result := Probe(context.Background(), client, "https://api.example.com/v1/models", "", time.Second)
	assert.Equal(t, endpoint.RateLimitCode, result.ErrorCode)
}

func TestProbe_BearerCredential(t *testing.T) {
	client := &fakeDoer{status: 200}
	Probe(context.Background(), client, "https://api.example.com/v1/models", "sk-abc", time.Second)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "Bearer sk-abc", client.lastReq.Header.Get("Authorization"))
}

func TestProbe_NoCredentialNoHeader(t *testing.T) {
	client := &fakeDoer{status: 200}
	Probe(context.Background(), client, "https://api.example.com/v1/models", "", time.Second)

	require.NotNil(t, client.lastReq)
	assert.Empty(t, client.lastReq.Header.Get("Authorization"))
}

func TestProbe_Timeout(t *testing.T) {
	client := &fakeDoer{status: 200, delay: time.Second}
	result := Probe(context.Background(), client, "https://api.example.com/v1/models", "", 20*time.Millisecond)

	assert.Equal(t, endpoint.OutcomeTimeout, result.Outcome)
}

func TestProbe_TransportError(t *testing.T) {
	client := &fakeDoer{err: io.ErrUnexpectedEOF}
	result := Probe(context.Background(), client, "https://api.example.com/v1/models", "", time.Second)

	assert.Equal(t, endpoint.OutcomeOther, result.Outcome)
}

func TestProber_Run_StreamsOneUpdatePerEntry(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "p/one", Provider: "p", URL: "https://one.example.com/v1/models"},
		{ID: "p/two", Provider: "p", URL: "https://two.example.com/v1/models"},
		{ID: "p/three", Provider: "p", URL: "https://three.example.com/v1/models"},
	}

	prober := NewProber(entries, nil, time.Second)
	prober.SetClient(&fakeDoer{status: 200})
	prober.SetLogger(logger.Noop())

	seen := make(map[string]bool)
	for u := range prober.Run(context.Background()) {
		assert.Equal(t, endpoint.OutcomeSuccess, u.Result.Outcome)
		seen[u.EndpointID] = true
	}

	assert.Len(t, seen, len(entries))
}

func TestProber_Run_EmptyEntriesClosesImmediately(t *testing.T) {
	prober := NewProber(nil, nil, time.Second)

	updates := prober.Run(context.Background())
	_, open := <-updates
	assert.False(t, open)
}

func TestProber_Run_UsesCredentialPerProvider(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "groq/model", Provider: "groq", URL: "https://api.groq.com/openai/v1/models"},
	}

	client := &fakeDoer{status: 200}
	prober := NewProber(entries, func(provider string) string {
		if provider == "groq" {
			return "gsk_test"
		}
		return ""
	}, time.Second)
	prober.SetClient(client)
	prober.SetLogger(logger.Noop())

	for range prober.Run(context.Background()) {
	}

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "Bearer gsk_test", client.lastReq.Header.Get("Authorization"))
}
