package connector

import "context"

// Connector is a geocaching platform a cache can belong to.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Name and CanHandle must not panic and must not block.
type Connector interface {
	// Name returns a unique identifier for this connector.
	Name() string

	// CanHandle reports whether this connector is responsible for the
	// given geocode.
	CanHandle(geocode string) bool
}

// Login is the optional login capability of a connector.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use; callers
//   may share one connector across goroutines.
// - Context: Login may block on network I/O and must honor cancellation.
// - Errors: UserName and CachesFound read cached state and must not block.
//   CachesFound returns a negative value when the count is unknown.
type Login interface {
	// UserName returns the username of the current session, or "" when
	// not logged in.
	UserName() string

	// CachesFound returns the account's found count. Zero usually means
	// not logged in yet; negative means unknown.
	CachesFound() int

	// Login establishes or refreshes the session.
	Login(ctx context.Context) error
}

// Source resolves the connector responsible for a geocode.
type Source interface {
	// ConnectorFor returns the connector claiming geocode. It never
	// returns nil; unclaimed geocodes get Unknown().
	ConnectorFor(geocode string) Connector
}

// SourceFunc is an adapter to allow use of ordinary functions as Sources.
type SourceFunc func(geocode string) Connector

// ConnectorFor calls f.
func (f SourceFunc) ConnectorFor(geocode string) Connector {
	return f(geocode)
}

// unknownConnector is the fallback for geocodes no connector claims. It has
// no login capability, so every capability assertion against it fails.
type unknownConnector struct{}

func (unknownConnector) Name() string          { return "unknown" }
func (unknownConnector) CanHandle(string) bool { return false }

var unknown Connector = unknownConnector{}

// Unknown returns the shared fallback connector.
func Unknown() Connector {
	return unknown
}
