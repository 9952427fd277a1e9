package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonwraymond/dirtrust/rpc"
)

// fakeServer is an in-memory directory server used as the transport in
// client tests. It issues tokens, tracks revocation, and can be told to
// fail any operation with a transport fault.
type fakeServer struct {
	mu sync.Mutex

	appName   string
	appSecret string

	// principal name -> credential
	credentials map[string]string
	// principal name -> groups
	groups map[string][]string
	// principal name -> attributes
	attributes map[string]map[string]string

	// issued principal tokens -> principal name; removed on invalidate
	tokens map[string]string
	seq    int

	// refreshOnValidate makes validate-token return a new token each call.
	refreshOnValidate bool

	// down marks operations that fail with a transport fault.
	down map[rpc.Operation]bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		appName:     "app1",
		appSecret:   "s3cret",
		credentials: map[string]string{"alice": "pw1"},
		groups:      map[string][]string{"alice": {"admins", "editors"}},
		attributes:  map[string]map[string]string{"alice": {"mail": "alice@example.com"}},
		tokens:      make(map[string]string),
		down:        make(map[rpc.Operation]bool),
	}
}

func (s *fakeServer) setDown(op rpc.Operation, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down[op] = down
}

func (s *fakeServer) fail(op rpc.Operation) error {
	if s.down[op] {
		return &rpc.Fault{Op: op, Code: rpc.CodeUnavailable, Message: "server down"}
	}
	return nil
}

func (s *fakeServer) EstablishTrust(_ context.Context, req rpc.EstablishTrustRequest) (rpc.EstablishTrustResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpEstablishTrust); err != nil {
		return rpc.EstablishTrustResponse{}, err
	}
	if req.Application != s.appName || req.Secret != s.appSecret {
		return rpc.EstablishTrustResponse{}, &rpc.Fault{Op: rpc.OpEstablishTrust, Code: rpc.CodeInvalidApplication}
	}
	return rpc.EstablishTrustResponse{Token: "TOK-ABC123"}, nil
}

func (s *fakeServer) AuthenticatePrincipal(_ context.Context, req rpc.AuthenticateRequest) (rpc.TokenResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpAuthenticatePrincipal); err != nil {
		return rpc.TokenResponse{}, err
	}
	if cred, ok := s.credentials[req.Principal]; !ok || cred != req.Credential {
		return rpc.TokenResponse{}, &rpc.Fault{Op: rpc.OpAuthenticatePrincipal, Code: rpc.CodeInvalidAuthentication}
	}
	s.seq++
	token := fmt.Sprintf("PTOK-%d", s.seq)
	s.tokens[token] = req.Principal
	return rpc.TokenResponse{Token: token}, nil
}

func (s *fakeServer) ValidateToken(_ context.Context, req rpc.ValidateRequest) (rpc.TokenResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpValidateToken); err != nil {
		return rpc.TokenResponse{}, err
	}
	principal, ok := s.tokens[req.Token]
	if !ok {
		return rpc.TokenResponse{}, &rpc.Fault{Op: rpc.OpValidateToken, Code: rpc.CodeInvalidToken}
	}
	if s.refreshOnValidate {
		delete(s.tokens, req.Token)
		s.seq++
		refreshed := fmt.Sprintf("PTOK-%d", s.seq)
		s.tokens[refreshed] = principal
		return rpc.TokenResponse{Token: refreshed}, nil
	}
	return rpc.TokenResponse{}, nil
}

func (s *fakeServer) InvalidateToken(_ context.Context, req rpc.InvalidateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpInvalidateToken); err != nil {
		return err
	}
	// Revoking an unknown token is not an error.
	delete(s.tokens, req.Token)
	return nil
}

func (s *fakeServer) FindPrincipal(_ context.Context, req rpc.PrincipalRequest) (rpc.PrincipalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpFindPrincipal); err != nil {
		return rpc.PrincipalResponse{}, err
	}
	principal, ok := s.tokens[req.Token]
	if !ok {
		return rpc.PrincipalResponse{}, &rpc.Fault{Op: rpc.OpFindPrincipal, Code: rpc.CodeInvalidToken}
	}
	return rpc.PrincipalResponse{Name: principal, Attributes: s.attributes[principal]}, nil
}

func (s *fakeServer) FindGroups(_ context.Context, req rpc.PrincipalRequest) (rpc.GroupsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(rpc.OpFindGroups); err != nil {
		return rpc.GroupsResponse{}, err
	}
	principal, ok := s.tokens[req.Token]
	if !ok {
		return rpc.GroupsResponse{}, &rpc.Fault{Op: rpc.OpFindGroups, Code: rpc.CodeInvalidToken}
	}
	g := s.groups[principal]
	if g == nil {
		g = []string{}
	}
	return rpc.GroupsResponse{Groups: rpc.GroupList(g)}, nil
}

var _ rpc.Transport = (*fakeServer)(nil)

// openTestClient opens a client against a fresh fake server.
func openTestClient(t interface {
	Helper()
	Fatalf(format string, args ...any)
}) (*Client, *fakeServer) {
	t.Helper()
	server := newFakeServer()
	client, err := Open(context.Background(), Config{
		Application: ApplicationIdentity{Name: "app1", Secret: "s3cret"},
		Transport:   server,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return client, server
}
