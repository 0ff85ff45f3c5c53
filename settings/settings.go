// Package settings supplies the process-wide user configuration the
// template layer reads: the fallback username and the signature text.
//
// The template layer takes a Provider by injection rather than reaching for
// ambient globals, so tests can substitute fixed values.
package settings

import (
	"os"
	"strings"
)

// Provider exposes the configured username and signature text.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: accessors must not fail; unset values return "".
type Provider interface {
	// UserName returns the globally configured username.
	UserName() string

	// Signature returns the configured signature text, which may itself
	// contain bracketed template tokens.
	Signature() string
}

// Static is a fixed-value Provider, the zero value of which returns empty
// strings for everything.
type Static struct {
	Username      string
	SignatureText string
}

// UserName returns the configured username.
func (s Static) UserName() string { return s.Username }

// Signature returns the configured signature text.
func (s Static) Signature() string { return s.SignatureText }

// DefaultEnvPrefix is the environment variable prefix FromEnv uses when
// given an empty prefix.
const DefaultEnvPrefix = "LOGTEMPLATE"

// FromEnv returns a Provider backed by <PREFIX>_USERNAME and
// <PREFIX>_SIGNATURE environment variables, read on every call so external
// changes are picked up without reconstruction.
func FromEnv(prefix string) Provider {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "_")
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return envProvider{prefix: prefix}
}

type envProvider struct {
	prefix string
}

func (e envProvider) UserName() string {
	return os.Getenv(e.prefix + "_USERNAME")
}

func (e envProvider) Signature() string {
	return os.Getenv(e.prefix + "_SIGNATURE")
}
