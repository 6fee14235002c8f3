// Package loopia checks domain availability through the Loopia XML-RPC
// API.
//
// Loopia's domainIsFree call answers "OK" for a registrable domain and
// a status string for anything else. Credentials are prepended to every
// call, matching how the Loopia RPC endpoint authenticates.
package loopia

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"
	"github.com/rs/zerolog/log"

	"github.com/nameforge/nameforge-go/oracle"
)

// DefaultEndpoint is the Loopia XML-RPC endpoint.
const DefaultEndpoint = "https://api.loopia.se/RPCSERV"

// DefaultTLD is appended to bare labels before lookup.
const DefaultTLD = "com"

// caller abstracts the XML-RPC transport so tests can inject replies.
type caller interface {
	Call(serviceMethod string, args any, reply any) error
}

// Checker implements oracle.Checker against the Loopia API.
type Checker struct {
	username string
	password string
	tld      string
	rpc      caller
}

// Config contains configuration for the Loopia checker.
type Config struct {
	// Username and Password are the Loopia API credentials (required).
	Username string
	Password string

	// Endpoint of the XML-RPC service (defaults to DefaultEndpoint).
	Endpoint string

	// TLD appended to bare labels (defaults to DefaultTLD).
	TLD string

	// Timeout for each lookup.
	Timeout time.Duration
}

// New creates a new Loopia checker.
func New(config Config) (*Checker, error) {
	if config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("loopia credentials are required")
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	tld := config.TLD
	if tld == "" {
		tld = DefaultTLD
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	rpc, err := xmlrpc.NewClient(endpoint, httpClient.Transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create XML-RPC client: %w", err)
	}

	return &Checker{
		username: config.Username,
		password: config.Password,
		tld:      tld,
		rpc:      rpc,
	}, nil
}

// Name returns the oracle name.
func (c *Checker) Name() string {
	return "loopia"
}

// Check asks Loopia whether name.<tld> is free. Credentials are
// prepended as the first two call parameters.
func (c *Checker) Check(ctx context.Context, name string) (oracle.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return oracle.Unknown, err
	}

	domain := name + "." + c.tld
	args := []any{c.username, c.password, domain}

	start := time.Now()
	var reply string
	err := c.rpc.Call("domainIsFree", args, &reply)
	if err != nil {
		log.Warn().Err(err).Str("domain", domain).Msg("Loopia lookup failed")
		return oracle.Unknown, fmt.Errorf("loopia lookup failed: %w", err)
	}

	log.Debug().
		Str("domain", domain).
		Str("reply", reply).
		Dur("duration", time.Since(start)).
		Msg("Loopia lookup completed")

	switch strings.ToUpper(strings.TrimSpace(reply)) {
	case "OK":
		return oracle.Available, nil
	case "DOMAIN_OCCUPIED":
		return oracle.Taken, nil
	default:
		return oracle.Unknown, fmt.Errorf("unexpected loopia reply %q for %s", reply, domain)
	}
}
