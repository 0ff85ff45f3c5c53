// Package gcapi is an HTTP connector with login capability.
//
// A Client creates a JWT-backed session against the platform API, fetches
// the account profile (username and found count), and serves both from
// memory afterwards. Concurrent login calls are collapsed into one request;
// transient HTTP failures are retried with exponential backoff.
package gcapi
