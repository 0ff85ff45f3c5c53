package connector

import "errors"

// Sentinel errors for connector registration.
var (
	ErrNilConnector = errors.New("connector: connector is nil")
	ErrDuplicate    = errors.New("connector: name already registered")
)
