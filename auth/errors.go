package auth

import "errors"

// Credential errors.
var (
	// ErrNoCredentials is returned when SignConfig has no Credentials
	// configured.
	ErrNoCredentials = errors.New("edgegrid: credentials must not be nil")

	// ErrMissingCredential is returned when a required credential field is
	// empty. The wrapped message names the missing field.
	ErrMissingCredential = errors.New("edgegrid: missing credential")

	// ErrInvalidEncoding is returned when a credential contains bytes that
	// are not valid UTF-8.
	ErrInvalidEncoding = errors.New("edgegrid: credential is not valid UTF-8")
)

// Signing errors.
var (
	// ErrSigning is returned when signature computation fails. A request
	// that fails to sign must not be sent.
	ErrSigning = errors.New("edgegrid: signing failed")
)
