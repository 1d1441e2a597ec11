package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingToken indicates a bearer credential was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken indicates the token format is invalid or the signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates an email/password pair did not match a
	// known identity. Deliberately covers both "no such identity" and "wrong
	// password".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIdentityExists indicates an identity with the given email is already registered.
	ErrIdentityExists = errors.New("identity already exists")

	// ErrIdentityNotFound indicates no identity exists for the given subject ID.
	ErrIdentityNotFound = errors.New("identity not found")
)
