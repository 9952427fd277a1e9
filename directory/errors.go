package directory

import "errors"

// Sentinel errors for client construction and token inspection.
var (
	// ErrTrustRejected indicates the directory server refused the
	// application identity during the trust handshake, or answered the
	// handshake without issuing a token.
	ErrTrustRejected = errors.New("directory: application trust rejected")

	// ErrMissingEndpoint indicates neither an endpoint nor a transport
	// was configured.
	ErrMissingEndpoint = errors.New("directory: endpoint is required")

	// ErrMissingApplication indicates the application name is empty.
	ErrMissingApplication = errors.New("directory: application name is required")

	// ErrMissingSecret indicates the application secret is empty.
	ErrMissingSecret = errors.New("directory: application secret is required")

	// ErrOpaqueToken indicates a token could not be locally inspected
	// because it is not in JWT form.
	ErrOpaqueToken = errors.New("directory: token is not a JWT")
)
