package probe

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/logger"
)

// Update carries one completed probe for one endpoint.
type Update struct {
	EndpointID string
	Result     Result
}

// CredentialFunc resolves the credential to send for a provider, or "".
type CredentialFunc func(provider string) string

// Prober runs one probe cycle across a set of catalog entries, streaming
// results as each target completes so the UI can update per endpoint
// instead of waiting for the slowest one.
type Prober struct {
	entries    []catalog.Entry
	client     httpDoer
	credential CredentialFunc
	timeout    time.Duration
	log        logger.Logger
}

// NewProber creates a prober for the given entries. credential may be nil
// when no credentials are configured.
func NewProber(entries []catalog.Entry, credential CredentialFunc, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if credential == nil {
		credential = func(string) string { return "" }
	}
	return &Prober{
		entries:    entries,
		client:     &http.Client{},
		credential: credential,
		timeout:    timeout,
		log:        logger.NewEnvLogger("[probe]"),
	}
}

// SetClient overrides the HTTP client, used by tests.
func (p *Prober) SetClient(client httpDoer) {
	p.client = client
}

// SetLogger overrides the logger.
func (p *Prober) SetLogger(log logger.Logger) {
	p.log = log
}

// Run probes every entry concurrently, one goroutine per endpoint with its
// own per-attempt timeout, and returns a channel of updates. The channel is
// closed once all probes have completed. There is no concurrency limit
// beyond the catalog size; each attempt is a single cheap request.
func (p *Prober) Run(ctx context.Context) <-chan Update {
	updates := make(chan Update, len(p.entries))

	if len(p.entries) == 0 {
		close(updates)
		return updates
	}

	var wg sync.WaitGroup
	for _, entry := range p.entries {
		wg.Add(1)
		go func(entry catalog.Entry) {
			defer wg.Done()

			result := Probe(ctx, p.client, entry.URL, p.credential(entry.Provider), p.timeout)
			p.log.Debug("probe %s: %s in %dms", entry.ID, result.Outcome, result.ElapsedMs)

			updates <- Update{EndpointID: entry.ID, Result: result}
		}(entry)
	}

	go func() {
		wg.Wait()
		close(updates)
	}()

	return updates
}
