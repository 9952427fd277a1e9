package rpc

import (
	"errors"
	"fmt"
)

// Well-known fault codes returned by directory servers.
const (
	CodeInvalidApplication    = "invalid_application"
	CodeApplicationDenied     = "application_access_denied"
	CodeInvalidAuthentication = "invalid_authentication"
	CodeInactiveAccount       = "inactive_account"
	CodeInvalidToken          = "invalid_token"
	CodeExpiredToken          = "expired_token"
	CodeUnavailable           = "unavailable"
)

// Fault is a structured failure reported by the directory server or raised
// at the transport boundary. Code distinguishes an authoritative rejection
// (the server understood the request and said no) from a transient delivery
// problem.
type Fault struct {
	Op      Operation
	Code    string
	Message string
}

func (f *Fault) Error() string {
	if f.Message == "" {
		return fmt.Sprintf("rpc: %s failed: %s", f.Op, f.Code)
	}
	return fmt.Sprintf("rpc: %s failed: %s: %s", f.Op, f.Code, f.Message)
}

// rejectionCodes are authoritative negatives: retrying cannot change them.
var rejectionCodes = map[string]bool{
	CodeInvalidApplication:    true,
	CodeApplicationDenied:     true,
	CodeInvalidAuthentication: true,
	CodeInactiveAccount:       true,
	CodeInvalidToken:          true,
	CodeExpiredToken:          true,
}

// IsRejection reports whether err is a confirmed negative from the server,
// as opposed to a delivery failure.
func IsRejection(err error) bool {
	var f *Fault
	if !errors.As(err, &f) {
		return false
	}
	return rejectionCodes[f.Code]
}

// IsTransient reports whether err may succeed on retry. Any error that is
// not an authoritative rejection counts as transient: dial errors, timeouts,
// 5xx responses, and malformed payloads.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return !IsRejection(err)
}
