package directory

import (
	"context"
	"time"

	"github.com/jonwraymond/dirtrust/health"
	"github.com/jonwraymond/dirtrust/rpc"
)

// Checker probes directory server reachability by re-running the trust
// exchange with the client's application identity. The probe never mutates
// the client; the probe's token is discarded.
type Checker struct {
	client *Client
}

// NewChecker creates a health checker for the given client.
func NewChecker(client *Client) *Checker {
	return &Checker{client: client}
}

// Name returns "directory".
func (c *Checker) Name() string {
	return "directory"
}

// Check performs the reachability probe.
func (c *Checker) Check(ctx context.Context) health.Result {
	start := time.Now()
	err := c.Ping(ctx)
	duration := time.Since(start)

	if err != nil {
		if rpc.IsRejection(err) {
			// Reachable, but our identity no longer holds: the server is up
			// and this client is broken.
			return health.Degraded("application trust no longer accepted").WithDuration(duration)
		}
		return health.Unhealthy("directory server unreachable", err).WithDuration(duration)
	}
	return health.Healthy("directory server reachable").WithDuration(duration)
}

// Ping performs one trust exchange and discards the result.
func (c *Checker) Ping(ctx context.Context) error {
	_, err := c.client.transport.EstablishTrust(ctx, rpc.EstablishTrustRequest{
		Application: c.client.application,
		Secret:      c.client.secret,
	})
	return err
}

// Ensure Checker implements health.PingChecker
var _ health.PingChecker = (*Checker)(nil)
