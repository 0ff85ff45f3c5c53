package settings

import "testing"

func TestStatic(t *testing.T) {
	s := Static{Username: "terra", SignatureText: "cheers, [USER]"}
	if got := s.UserName(); got != "terra" {
		t.Fatalf("UserName() = %q", got)
	}
	if got := s.Signature(); got != "cheers, [USER]" {
		t.Fatalf("Signature() = %q", got)
	}
}

func TestStatic_ZeroValue(t *testing.T) {
	var s Static
	if s.UserName() != "" || s.Signature() != "" {
		t.Fatalf("zero value must return empty strings")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEOTEST_USERNAME", "envuser")
	t.Setenv("GEOTEST_SIGNATURE", "[DATE] greetings")

	p := FromEnv("GEOTEST")
	if got := p.UserName(); got != "envuser" {
		t.Fatalf("UserName() = %q", got)
	}
	if got := p.Signature(); got != "[DATE] greetings" {
		t.Fatalf("Signature() = %q", got)
	}
}

func TestFromEnv_PrefixNormalization(t *testing.T) {
	t.Setenv("GEOTEST_USERNAME", "envuser")

	// Trailing underscore and surrounding whitespace are tolerated.
	if got := FromEnv(" GEOTEST_ ").UserName(); got != "envuser" {
		t.Fatalf("UserName() = %q", got)
	}

	t.Setenv(DefaultEnvPrefix+"_USERNAME", "defaultuser")
	if got := FromEnv("").UserName(); got != "defaultuser" {
		t.Fatalf("UserName() with empty prefix = %q", got)
	}
}

func TestFromEnv_ReadsFreshValues(t *testing.T) {
	t.Setenv("GEOTEST_SIGNATURE", "first")
	p := FromEnv("GEOTEST")
	if got := p.Signature(); got != "first" {
		t.Fatalf("Signature() = %q", got)
	}

	t.Setenv("GEOTEST_SIGNATURE", "second")
	if got := p.Signature(); got != "second" {
		t.Fatalf("Signature() after change = %q", got)
	}
}
