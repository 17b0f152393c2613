package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "unknown user" and "wrong password".
	// The two cases are deliberately indistinguishable to callers so that
	// login responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveAccount is returned when the credentials are correct but
	// the account status forbids authentication. The HTTP layer reports it
	// to clients identically to ErrInvalidCredentials.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrTokenIsExpiredOrInvalid is the single failure reason exposed by
	// token verification: expired, forged, malformed, and
	// deactivated-account tokens all collapse into it.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
