package directory

import "github.com/jonwraymond/dirtrust/rpc"

// ApplicationIdentity identifies the calling application to the directory
// server. It is consumed once, during the trust handshake in Open.
type ApplicationIdentity struct {
	// Name is the application name registered with the directory server.
	Name string

	// Secret is the application password. May be a ${ENV} or secretref:
	// expression when a secret resolver is configured.
	Secret string
}

// Well-known validation factor names. Directory servers commonly bind
// tokens to the client's network origin and agent string.
const (
	FactorRemoteAddress = "remote_address"
	FactorUserAgent     = "user_agent"
	FactorForwardedFor  = "forwarded_for"
)

// Factor is one contextual (name, value) pair.
type Factor struct {
	Name  string
	Value string
}

// ValidationFactors is the ordered set of context pairs bound to a
// principal token at issuance. The same factors must accompany validate
// and invalidate calls, in the same order, or the server may refuse them.
type ValidationFactors []Factor

// With returns a copy of the factors with one more pair appended.
func (v ValidationFactors) With(name, value string) ValidationFactors {
	out := make(ValidationFactors, len(v), len(v)+1)
	copy(out, v)
	return append(out, Factor{Name: name, Value: value})
}

// Get returns the value for a factor name, or empty string.
func (v ValidationFactors) Get(name string) string {
	for _, f := range v {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func (v ValidationFactors) wire() []rpc.Factor {
	if len(v) == 0 {
		return nil
	}
	out := make([]rpc.Factor, len(v))
	for i, f := range v {
		out[i] = rpc.Factor{Name: f.Name, Value: f.Value}
	}
	return out
}

// PrincipalRecord is a read-only snapshot of a principal's identity
// attributes at lookup time. It is never cached by the client.
type PrincipalRecord struct {
	// Name is the principal's directory name.
	Name string

	// Attributes are server-defined identity attributes.
	Attributes map[string]string
}
