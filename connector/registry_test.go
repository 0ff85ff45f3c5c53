package connector

import (
	"errors"
	"strings"
	"testing"
)

type prefixConnector struct {
	name   string
	prefix string
}

func (c prefixConnector) Name() string { return c.name }

func (c prefixConnector) CanHandle(geocode string) bool {
	return strings.HasPrefix(geocode, c.prefix)
}

func TestRegistry_DispatchesByPrefix(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(prefixConnector{name: "gc", prefix: "GC"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(prefixConnector{name: "oc", prefix: "OC"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if got := r.ConnectorFor("GC1234").Name(); got != "gc" {
		t.Fatalf("ConnectorFor(GC1234) = %q", got)
	}
	if got := r.ConnectorFor("OC99").Name(); got != "oc" {
		t.Fatalf("ConnectorFor(OC99) = %q", got)
	}
}

func TestRegistry_UnclaimedGeocodeGetsFallback(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(prefixConnector{name: "gc", prefix: "GC"})

	c := r.ConnectorFor("XX123")
	if c == nil {
		t.Fatalf("ConnectorFor() returned nil")
	}
	if c != Unknown() {
		t.Fatalf("ConnectorFor() = %v, want fallback connector", c)
	}
	if _, ok := c.(Login); ok {
		t.Fatalf("fallback connector must not expose login capability")
	}
}

func TestRegistry_RegistrationOrderIsDispatchOrder(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(prefixConnector{name: "broad", prefix: "GC"})
	_ = r.Register(prefixConnector{name: "narrow", prefix: "GC1"})

	// Both claim GC1x; the first registered wins.
	if got := r.ConnectorFor("GC1A").Name(); got != "broad" {
		t.Fatalf("ConnectorFor(GC1A) = %q, want %q", got, "broad")
	}
}

func TestRegistry_RejectsNilAndDuplicates(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(nil); !errors.Is(err, ErrNilConnector) {
		t.Fatalf("Register(nil) error = %v, want ErrNilConnector", err)
	}

	_ = r.Register(prefixConnector{name: "gc", prefix: "GC"})
	if err := r.Register(prefixConnector{name: "gc", prefix: "XX"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Register(duplicate) error = %v, want ErrDuplicate", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(prefixConnector{name: "gc", prefix: "GC"})
	_ = r.Register(prefixConnector{name: "oc", prefix: "OC"})

	names := r.Names()
	if len(names) != 2 || names[0] != "gc" || names[1] != "oc" {
		t.Fatalf("Names() = %v", names)
	}
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc(func(geocode string) Connector {
		return prefixConnector{name: "fn", prefix: ""}
	})
	if got := src.ConnectorFor("GC1").Name(); got != "fn" {
		t.Fatalf("ConnectorFor() = %q", got)
	}
}
