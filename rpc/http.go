package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPConfig configures the JSON-over-HTTP transport.
type HTTPConfig struct {
	// BaseURL is the root URL of the directory server's REST surface.
	BaseURL string

	// Timeout is the per-request timeout.
	// Default: 10 seconds.
	Timeout time.Duration

	// HTTPClient is the HTTP client to use. If nil, a default client is used.
	HTTPClient *http.Client
}

// HTTPTransport speaks JSON over HTTP to a directory server.
//
// Application credentials travel as HTTP Basic auth on the trust exchange
// only; the trust token travels in the X-Trust-Token header on every other
// call. Rejections
// arrive as 4xx responses with a {"code","message"} body and are surfaced
// as *Fault.
type HTTPTransport struct {
	config HTTPConfig
	client *http.Client
}

// NewHTTPTransport creates an HTTP transport for the given server.
func NewHTTPTransport(config HTTPConfig) *HTTPTransport {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	return &HTTPTransport{
		config: HTTPConfig{
			BaseURL: strings.TrimRight(config.BaseURL, "/"),
			Timeout: config.Timeout,
		},
		client: client,
	}
}

// Endpoint paths for each operation.
const (
	pathEstablishTrust = "/session/trust"
	pathAuthenticate   = "/session/principal"
	pathValidate       = "/session/validate"
	pathInvalidate     = "/session/invalidate"
	pathFindPrincipal  = "/principal"
	pathFindGroups     = "/principal/groups"
)

func (t *HTTPTransport) EstablishTrust(ctx context.Context, req EstablishTrustRequest) (EstablishTrustResponse, error) {
	var resp EstablishTrustResponse
	err := t.call(ctx, OpEstablishTrust, pathEstablishTrust, req.Application, req.Secret, "", req, &resp)
	return resp, err
}

func (t *HTTPTransport) AuthenticatePrincipal(ctx context.Context, req AuthenticateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.call(ctx, OpAuthenticatePrincipal, pathAuthenticate, req.Application, "", req.TrustToken, req, &resp)
	return resp, err
}

func (t *HTTPTransport) ValidateToken(ctx context.Context, req ValidateRequest) (TokenResponse, error) {
	var resp TokenResponse
	err := t.call(ctx, OpValidateToken, pathValidate, req.Application, "", req.TrustToken, req, &resp)
	return resp, err
}

func (t *HTTPTransport) InvalidateToken(ctx context.Context, req InvalidateRequest) error {
	return t.call(ctx, OpInvalidateToken, pathInvalidate, req.Application, "", req.TrustToken, req, nil)
}

func (t *HTTPTransport) FindPrincipal(ctx context.Context, req PrincipalRequest) (PrincipalResponse, error) {
	var resp PrincipalResponse
	err := t.call(ctx, OpFindPrincipal, pathFindPrincipal, req.Application, "", req.TrustToken, req, &resp)
	return resp, err
}

func (t *HTTPTransport) FindGroups(ctx context.Context, req PrincipalRequest) (GroupsResponse, error) {
	var resp GroupsResponse
	err := t.call(ctx, OpFindGroups, pathFindGroups, req.Application, "", req.TrustToken, req, &resp)
	if resp.Groups == nil {
		// The field may be absent entirely; absent and null mean the same.
		resp.Groups = GroupList{}
	}
	return resp, err
}

// call performs one JSON POST round trip and maps the response onto out.
func (t *HTTPTransport) call(ctx context.Context, op Operation, path, application, secret, trustToken string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("rpc: encode %s request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("rpc: create %s request: %w", op, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if secret != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(application + ":" + secret))
		httpReq.Header.Set("Authorization", "Basic "+credentials)
	}
	if trustToken != "" {
		httpReq.Header.Set("X-Trust-Token", trustToken)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return &Fault{Op: op, Code: CodeUnavailable, Message: err.Error()}
	}
	defer func() { _ = httpResp.Body.Close() }()

	switch {
	case httpResp.StatusCode == http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
			return &Fault{Op: op, Code: CodeUnavailable, Message: "decode response: " + err.Error()}
		}
		return nil

	case httpResp.StatusCode >= 400 && httpResp.StatusCode < 500:
		return decodeFault(op, httpResp)

	default:
		return &Fault{Op: op, Code: CodeUnavailable, Message: fmt.Sprintf("status %d", httpResp.StatusCode)}
	}
}

// decodeFault maps a 4xx response body onto a Fault. A body that does not
// carry a recognizable code is treated as an invalid-token rejection for
// 401/403/404 and as unavailable otherwise.
func decodeFault(op Operation, resp *http.Response) error {
	var wire struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&wire)

	if wire.Code != "" {
		return &Fault{Op: op, Code: wire.Code, Message: wire.Message}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return &Fault{Op: op, Code: CodeInvalidToken, Message: wire.Message}
	default:
		return &Fault{Op: op, Code: CodeUnavailable, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
}

// Ensure HTTPTransport implements Transport
var _ Transport = (*HTTPTransport)(nil)
