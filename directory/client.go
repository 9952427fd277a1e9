package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/dirtrust/observe"
	"github.com/jonwraymond/dirtrust/rpc"
	"github.com/jonwraymond/dirtrust/secret"
)

// Config configures a directory client.
type Config struct {
	// Endpoint is the base URL of the directory server. Ignored when
	// Transport is set.
	Endpoint string

	// Application identifies the calling application to the server.
	Application ApplicationIdentity

	// Timeout is the per-call timeout for the default HTTP transport.
	// Default: 10 seconds.
	Timeout time.Duration

	// Transport overrides the default HTTP transport. Wrap it with
	// rpc.WithResilience or rpc.WithObservability before passing it here.
	Transport rpc.Transport

	// Secrets, when set, resolves ${ENV} and secretref: expressions in
	// Application.Secret before the handshake.
	Secrets *secret.Resolver

	// Logger receives structured records for swallowed transport faults.
	// Default: discard.
	Logger observe.Logger
}

// Client is an authenticated session with a directory server. The trust
// token is written exactly once, inside Open, and never changes afterwards;
// a Client that exists is a Client whose trust is established.
//
// A Client issues calls over one logical connection and expects one logical
// caller at a time. For concurrent use, create one Client per context or
// synchronize externally.
type Client struct {
	application string
	secret      string
	trustToken  string
	transport   rpc.Transport
	logger      observe.Logger
}

// Open establishes application-level trust with the directory server and
// returns a ready-to-use client. Construction and handshake failures are
// hard errors: a rejected identity (or a handshake answered without a
// token) wraps ErrTrustRejected, and an unreachable or misconfigured
// endpoint propagates as-is. There is no retry here; wrap the transport
// with rpc.WithResilience to add one.
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Application.Name == "" {
		return nil, ErrMissingApplication
	}
	if cfg.Application.Secret == "" {
		return nil, ErrMissingSecret
	}

	appSecret := cfg.Application.Secret
	if cfg.Secrets != nil {
		resolved, err := cfg.Secrets.ResolveValue(ctx, appSecret)
		if err != nil {
			return nil, fmt.Errorf("directory: resolve application secret: %w", err)
		}
		appSecret = resolved
	}

	transport := cfg.Transport
	if transport == nil {
		if cfg.Endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		transport = rpc.NewHTTPTransport(rpc.HTTPConfig{
			BaseURL: cfg.Endpoint,
			Timeout: cfg.Timeout,
		})
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observe.NopLogger()
	}

	resp, err := transport.EstablishTrust(ctx, rpc.EstablishTrustRequest{
		Application: cfg.Application.Name,
		Secret:      appSecret,
	})
	if err != nil {
		if rpc.IsRejection(err) {
			return nil, fmt.Errorf("%w: %v", ErrTrustRejected, err)
		}
		return nil, fmt.Errorf("directory: establish trust: %w", err)
	}
	if resp.Token == "" {
		// A handshake the server answered without a token is a credential
		// problem, not a transport success.
		return nil, fmt.Errorf("%w: server issued no token", ErrTrustRejected)
	}

	return &Client{
		application: cfg.Application.Name,
		secret:      appSecret,
		trustToken:  resp.Token,
		transport:   transport,
		logger:      logger,
	}, nil
}

// Application returns the application name this client trusts as.
func (c *Client) Application() string {
	return c.application
}

// TrustToken returns the application-level token held by this client.
func (c *Client) TrustToken() string {
	return c.trustToken
}

// Authenticate exchanges a principal's credentials plus validation factors
// for a principal token. A credential the server refuses yields
// AuthRejected; an unreachable server yields AuthUnavailable. Neither is
// an error return.
func (c *Client) Authenticate(ctx context.Context, principal, credential string, factors ValidationFactors) AuthResult {
	resp, err := c.transport.AuthenticatePrincipal(ctx, rpc.AuthenticateRequest{
		Application: c.application,
		TrustToken:  c.trustToken,
		Principal:   principal,
		Credential:  credential,
		Factors:     factors.wire(),
	})
	if err != nil {
		if rpc.IsRejection(err) {
			return AuthResult{Status: AuthRejected, Cause: err}
		}
		c.logger.Warn(ctx, "authenticate call failed",
			observe.Field{Key: "principal", Value: principal},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return AuthResult{Status: AuthUnavailable, Cause: err}
	}
	if resp.Token == "" {
		return AuthResult{Status: AuthRejected, Cause: fmt.Errorf("directory: server issued no token for %q", principal)}
	}
	return AuthResult{Status: AuthGranted, Token: resp.Token}
}

// Validate checks a principal token against the current validation factors.
// The server may extend or refresh the token as a side effect; the returned
// Validity carries the token to keep using.
func (c *Client) Validate(ctx context.Context, token string, factors ValidationFactors) Validity {
	resp, err := c.transport.ValidateToken(ctx, rpc.ValidateRequest{
		Application: c.application,
		TrustToken:  c.trustToken,
		Token:       token,
		Factors:     factors.wire(),
	})
	if err != nil {
		if rpc.IsRejection(err) {
			return Validity{State: ValidityInvalid, Cause: err}
		}
		c.logger.Warn(ctx, "validate call failed",
			observe.Field{Key: "error", Value: err.Error()},
		)
		return Validity{State: ValidityUnknown, Cause: err}
	}

	kept := resp.Token
	if kept == "" {
		kept = token
	}
	return Validity{State: ValidityValid, Token: kept}
}

// Invalidate revokes a principal token across every consumer of the
// directory server. It is idempotent: revoking an already-invalid or
// unknown token returns true. Only a transport fault returns false.
func (c *Client) Invalidate(ctx context.Context, token string) bool {
	err := c.transport.InvalidateToken(ctx, rpc.InvalidateRequest{
		Application: c.application,
		TrustToken:  c.trustToken,
		Token:       token,
	})
	if err == nil || rpc.IsRejection(err) {
		return true
	}
	c.logger.Warn(ctx, "invalidate call failed",
		observe.Field{Key: "error", Value: err.Error()},
	)
	return false
}
