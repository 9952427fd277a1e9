package directory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/dirtrust/observe"
	"github.com/jonwraymond/dirtrust/rpc"
)

// FindPrincipal resolves a principal token to its identity snapshot.
// It returns nil when the server cannot confirm an answer, whether because
// the token was rejected or because the call failed in transit; nil means
// "cannot resolve", never "resolved to nothing".
func (c *Client) FindPrincipal(ctx context.Context, token string) *PrincipalRecord {
	resp, err := c.transport.FindPrincipal(ctx, rpc.PrincipalRequest{
		Application: c.application,
		TrustToken:  c.trustToken,
		Token:       token,
	})
	if err != nil {
		if !rpc.IsRejection(err) {
			c.logger.Warn(ctx, "find-principal call failed",
				observe.Field{Key: "error", Value: err.Error()},
			)
		}
		return nil
	}

	attrs := resp.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &PrincipalRecord{Name: resp.Name, Attributes: attrs}
}

// FindGroups resolves a principal token to its group memberships at query
// time. A principal with no groups yields an empty non-nil slice; the
// various wire encodings of "no groups" are indistinguishable here. A nil
// return means the lookup could not be confirmed.
func (c *Client) FindGroups(ctx context.Context, token string) []string {
	resp, err := c.transport.FindGroups(ctx, rpc.PrincipalRequest{
		Application: c.application,
		TrustToken:  c.trustToken,
		Token:       token,
	})
	if err != nil {
		if !rpc.IsRejection(err) {
			c.logger.Warn(ctx, "find-groups call failed",
				observe.Field{Key: "error", Value: err.Error()},
			)
		}
		return nil
	}
	if resp.Groups == nil {
		return []string{}
	}
	return []string(resp.Groups)
}

// FindPrincipalWithGroups resolves the identity snapshot and group
// memberships for one token concurrently. Either result is nil under the
// same conditions as its standalone lookup.
func (c *Client) FindPrincipalWithGroups(ctx context.Context, token string) (*PrincipalRecord, []string) {
	var (
		record *PrincipalRecord
		groups []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		record = c.FindPrincipal(gctx, token)
		return nil
	})
	g.Go(func() error {
		groups = c.FindGroups(gctx, token)
		return nil
	})
	_ = g.Wait()

	return record, groups
}
