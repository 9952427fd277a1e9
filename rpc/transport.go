package rpc

import "context"

// Operation names a directory server call.
type Operation string

const (
	OpEstablishTrust        Operation = "establish-trust"
	OpAuthenticatePrincipal Operation = "authenticate-principal"
	OpValidateToken         Operation = "validate-token"
	OpInvalidateToken       Operation = "invalidate-token"
	OpFindPrincipal         Operation = "find-principal"
	OpFindGroups            Operation = "find-groups"
)

// Factor is one contextual (name, value) pair bound to a principal token.
// Order is significant: servers may hash factors positionally.
type Factor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EstablishTrustRequest exchanges application credentials for a trust token.
type EstablishTrustRequest struct {
	Application string `json:"application"`
	Secret      string `json:"secret"`
}

// EstablishTrustResponse carries the trust token issued to the application.
type EstablishTrustResponse struct {
	Token string `json:"token"`
}

// AuthenticateRequest exchanges principal credentials for a session token.
type AuthenticateRequest struct {
	Application string   `json:"application"`
	TrustToken  string   `json:"-"`
	Principal   string   `json:"principal"`
	Credential  string   `json:"credential"`
	Factors     []Factor `json:"factors,omitempty"`
}

// ValidateRequest checks a principal token against current factors.
type ValidateRequest struct {
	Application string   `json:"application"`
	TrustToken  string   `json:"-"`
	Token       string   `json:"token"`
	Factors     []Factor `json:"factors,omitempty"`
}

// InvalidateRequest revokes a principal token server-side.
type InvalidateRequest struct {
	Application string `json:"application"`
	TrustToken  string `json:"-"`
	Token       string `json:"token"`
}

// PrincipalRequest resolves a principal token to identity data.
type PrincipalRequest struct {
	Application string `json:"application"`
	TrustToken  string `json:"-"`
	Token       string `json:"token"`
}

// TokenResponse carries a principal token. On validate-token an empty Token
// means the server kept the presented token; a non-empty Token is a
// refreshed representation that must replace the caller's copy.
type TokenResponse struct {
	Token string `json:"token"`
}

// PrincipalResponse is the resolved identity snapshot for a token.
type PrincipalResponse struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
}

// GroupsResponse carries the group memberships for a token. Groups is never
// nil: absent, null, and single-value wire forms all decode to a (possibly
// empty) slice.
type GroupsResponse struct {
	Groups GroupList `json:"groups"`
}

// Transport is the request/response mechanism reaching a directory server.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: calls must honor cancellation/deadlines.
// - Errors: server-side rejections surface as *Fault; anything else
//   (dial, timeout, malformed response) may be any error. Callers classify
//   with IsRejection and IsTransient.
type Transport interface {
	EstablishTrust(ctx context.Context, req EstablishTrustRequest) (EstablishTrustResponse, error)
	AuthenticatePrincipal(ctx context.Context, req AuthenticateRequest) (TokenResponse, error)
	ValidateToken(ctx context.Context, req ValidateRequest) (TokenResponse, error)
	InvalidateToken(ctx context.Context, req InvalidateRequest) error
	FindPrincipal(ctx context.Context, req PrincipalRequest) (PrincipalResponse, error)
	FindGroups(ctx context.Context, req PrincipalRequest) (GroupsResponse, error)
}
