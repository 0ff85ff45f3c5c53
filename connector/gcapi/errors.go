package gcapi

import "errors"

// Sentinel errors for client construction and login.
var (
	ErrMissingBaseURL     = errors.New("gcapi: base URL is required")
	ErrMissingCredentials = errors.New("gcapi: username and password are required")
	ErrLoginRejected      = errors.New("gcapi: credentials rejected")
)
