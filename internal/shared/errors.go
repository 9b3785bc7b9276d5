// Package shared holds sentinel errors used across the server and client.
package shared

import "errors"

var (
	// validation errors, one per failing field so handlers can name it
	ErrorNameRequired     = errors.New("the name field is required")
	ErrorEmailRequired    = errors.New("the email field is required")
	ErrorPasswordRequired = errors.New("the password field is required")
	ErrorPasswordMismatch = errors.New("the password and confirmation fields do not match")

	ErrorEmailTaken = errors.New("email already registered")
	ErrorNotFound   = errors.New("user not found")

	ErrorInvalidPassword = errors.New("invalid password")

	ErrorMissingToken = errors.New("access denied")
	ErrorInvalidToken = errors.New("invalid token")

	ErrorInternal = errors.New("internal server error")
)
