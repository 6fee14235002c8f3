// Package rdap checks domain availability against an RDAP registry
// endpoint.
//
// RDAP answers a domain lookup with 200 when the domain is registered
// and 404 when it is not, which maps directly onto taken/available.
// Anything else (5xx, network failure, timeout) is unknown.
package rdap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nameforge/nameforge-go/oracle"
)

// DefaultBaseURL is the Verisign RDAP service for .com.
const DefaultBaseURL = "https://rdap.verisign.com/com/v1"

// DefaultTLD is appended to bare labels before lookup.
const DefaultTLD = "com"

// Checker implements oracle.Checker over RDAP.
type Checker struct {
	baseURL string
	tld     string
	client  *http.Client
}

// Config contains configuration for the RDAP checker.
type Config struct {
	// BaseURL of the RDAP service (defaults to DefaultBaseURL).
	BaseURL string

	// TLD appended to bare labels (defaults to DefaultTLD).
	TLD string

	// Timeout for each lookup.
	Timeout time.Duration
}

// New creates a new RDAP checker.
func New(config Config) *Checker {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tld := config.TLD
	if tld == "" {
		tld = DefaultTLD
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Checker{
		baseURL: baseURL,
		tld:     tld,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the oracle name.
func (c *Checker) Name() string {
	return "rdap"
}

// Check looks up name.<tld> and maps the HTTP status to a verdict.
func (c *Checker) Check(ctx context.Context, name string) (oracle.Verdict, error) {
	domain := name + "." + c.tld
	url := fmt.Sprintf("%s/domain/%s", c.baseURL, domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return oracle.Unknown, fmt.Errorf("failed to build RDAP request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("domain", domain).Msg("RDAP lookup failed")
		return oracle.Unknown, fmt.Errorf("RDAP lookup failed: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Debug().
		Str("domain", domain).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("RDAP lookup completed")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return oracle.Available, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return oracle.Taken, nil
	default:
		return oracle.Unknown, fmt.Errorf("RDAP returned status %d for %s", resp.StatusCode, domain)
	}
}
