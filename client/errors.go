// client/errors.go
package client

import "errors"

// Failure taxonomy surfaced to the UI. All of these are recoverable: the
// worst outcome is reverting to the prior stable view.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSignupRequiresName  = errors.New("new user requires name")
	ErrEntitlementRequired = errors.New("premium entitlement required")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrAlreadyRequested    = errors.New("join request already sent")
	ErrSelfHostConflict    = errors.New("cannot request to join a hosted team")
	ErrNotFound            = errors.New("not found")
)
