// Package connector defines the connector capabilities the template layer
// consumes and a registry that dispatches geocodes to connectors.
//
// A Connector identifies itself and claims geocodes; the optional Login
// capability exposes the current username and found count and can trigger a
// login. Capability detection is by type assertion, so implementations opt
// in by implementing the extra interface.
package connector
