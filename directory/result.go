package directory

// AuthStatus classifies the outcome of an authentication attempt.
type AuthStatus int

const (
	// AuthGranted means the server issued a principal token.
	AuthGranted AuthStatus = iota
	// AuthRejected means the server refused the credentials. This is a
	// confirmed negative, not a system fault.
	AuthRejected
	// AuthUnavailable means the server could not be reached; nothing is
	// known about the credentials.
	AuthUnavailable
)

// String returns the string representation of the status.
func (s AuthStatus) String() string {
	switch s {
	case AuthGranted:
		return "granted"
	case AuthRejected:
		return "rejected"
	case AuthUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// AuthResult is the outcome of Authenticate. Exactly one of the three
// statuses applies; callers must branch on Status (or Granted) so that a
// login-form "invalid credentials" path is never confused with a
// "service unavailable" path.
type AuthResult struct {
	// Status classifies the outcome.
	Status AuthStatus

	// Token is the issued principal token (only when Status is AuthGranted).
	Token string

	// Cause is the underlying rejection or transport error
	// (only when Status is not AuthGranted).
	Cause error
}

// Granted reports whether a token was issued.
func (r AuthResult) Granted() bool {
	return r.Status == AuthGranted
}

// ValidityState classifies the outcome of Validate.
type ValidityState int

const (
	// ValidityValid means the server confirmed the token.
	ValidityValid ValidityState = iota
	// ValidityInvalid means the server definitively rejected the token.
	ValidityInvalid
	// ValidityUnknown means a transport fault prevented an answer. Treat
	// conservatively as not valid, but it is not a confirmed rejection.
	ValidityUnknown
)

// String returns the string representation of the state.
func (s ValidityState) String() string {
	switch s {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	case ValidityUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Validity is the outcome of Validate.
type Validity struct {
	// State classifies the outcome.
	State ValidityState

	// Token is the token to keep using (only when State is ValidityValid).
	// The server may refresh the token as a side effect of validation; when
	// it does, Token differs from the presented one and must replace the
	// caller's stored copy.
	Token string

	// Cause is the underlying rejection or transport error
	// (only when State is not ValidityValid).
	Cause error
}

// Valid reports whether the server confirmed the token.
func (v Validity) Valid() bool {
	return v.State == ValidityValid
}
