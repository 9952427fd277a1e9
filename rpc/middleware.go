package rpc

import (
	"context"

	"github.com/jonwraymond/dirtrust/observe"
	"github.com/jonwraymond/dirtrust/resilience"
)

// WithResilience wraps a transport so every call runs through the given
// executor (retry, circuit breaker, timeout). Pair the executor's retry with
// IsTransient so authoritative rejections are never replayed; see
// TransientRetry for a ready-made policy.
func WithResilience(next Transport, exec *resilience.Executor) Transport {
	return &resilientTransport{next: next, exec: exec}
}

// TransientRetry returns a retry handler that replays only transient faults.
func TransientRetry(config resilience.RetryConfig) *resilience.Retry {
	if config.RetryIf == nil {
		config.RetryIf = IsTransient
	}
	return resilience.NewRetry(config)
}

type resilientTransport struct {
	next Transport
	exec *resilience.Executor
}

func (t *resilientTransport) EstablishTrust(ctx context.Context, req EstablishTrustRequest) (EstablishTrustResponse, error) {
	var resp EstablishTrustResponse
	err := t.exec.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = t.next.EstablishTrust(ctx, req)
		return err
	})
	return resp, err
}

func (t *resilientTransport) AuthenticatePrincipal(ctx context.Context, req AuthenticateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.exec.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = t.next.AuthenticatePrincipal(ctx, req)
		return err
	})
	return resp, err
}

func (t *resilientTransport) ValidateToken(ctx context.Context, req ValidateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.exec.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = t.next.ValidateToken(ctx, req)
		return err
	})
	return resp, err
}

func (t *resilientTransport) InvalidateToken(ctx context.Context, req InvalidateRequest) error {
	return t.exec.Execute(ctx, func(ctx context.Context) error {
		return t.next.InvalidateToken(ctx, req)
	})
}

func (t *resilientTransport) FindPrincipal(ctx context.Context, req PrincipalRequest) (PrincipalResponse, error) {
	var resp PrincipalResponse
	err := t.exec.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = t.next.FindPrincipal(ctx, req)
		return err
	})
	return resp, err
}

func (t *resilientTransport) FindGroups(ctx context.Context, req PrincipalRequest) (GroupsResponse, error) {
	var resp GroupsResponse
	err := t.exec.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = t.next.FindGroups(ctx, req)
		return err
	})
	return resp, err
}

// WithObservability wraps a transport so every call is traced, measured,
// and logged through the given middleware.
func WithObservability(next Transport, mw *observe.Middleware) Transport {
	return &observedTransport{next: next, mw: mw}
}

type observedTransport struct {
	next Transport
	mw   *observe.Middleware
}

func (t *observedTransport) do(ctx context.Context, op Operation, fn func(context.Context) error) error {
	return t.mw.Do(ctx, observe.CallMeta{Operation: string(op)}, fn)
}

func (t *observedTransport) EstablishTrust(ctx context.Context, req EstablishTrustRequest) (EstablishTrustResponse, error) {
	var resp EstablishTrustResponse
	err := t.do(ctx, OpEstablishTrust, func(ctx context.Context) error {
		var err error
		resp, err = t.next.EstablishTrust(ctx, req)
		return err
	})
	return resp, err
}

func (t *observedTransport) AuthenticatePrincipal(ctx context.Context, req AuthenticateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.do(ctx, OpAuthenticatePrincipal, func(ctx context.Context) error {
		var err error
		resp, err = t.next.AuthenticatePrincipal(ctx, req)
		return err
	})
	return resp, err
}

func (t *observedTransport) ValidateToken(ctx context.Context, req ValidateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.do(ctx, OpValidateToken, func(ctx context.Context) error {
		var err error
		resp, err = t.next.ValidateToken(ctx, req)
		return err
	})
	return resp, err
}

func (t *observedTransport) InvalidateToken(ctx context.Context, req InvalidateRequest) error {
	return t.do(ctx, OpInvalidateToken, func(ctx context.Context) error {
		return t.next.InvalidateToken(ctx, req)
	})
}

func (t *observedTransport) FindPrincipal(ctx context.Context, req PrincipalRequest) (PrincipalResponse, error) {
	var resp PrincipalResponse
	err := t.do(ctx, OpFindPrincipal, func(ctx context.Context) error {
		var err error
		resp, err = t.next.FindPrincipal(ctx, req)
		return err
	})
	return resp, err
}

func (t *observedTransport) FindGroups(ctx context.Context, req PrincipalRequest) (GroupsResponse, error) {
	var resp GroupsResponse
	err := t.do(ctx, OpFindGroups, func(ctx context.Context) error {
		var err error
		resp, err = t.next.FindGroups(ctx, req)
		return err
	})
	return resp, err
}

var (
	_ Transport = (*resilientTransport)(nil)
	_ Transport = (*observedTransport)(nil)
)
