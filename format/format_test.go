package format

import (
	"testing"
	"time"
)

var sample = time.Date(2025, time.June, 7, 14, 30, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	f := New(Config{})

	if got := f.FullDate(sample); got != "Saturday, June 7, 2025" {
		t.Fatalf("FullDate() = %q", got)
	}
	if got := f.Time(sample); got != "14:30" {
		t.Fatalf("Time() = %q", got)
	}
}

func TestNew_CustomLayouts(t *testing.T) {
	f := New(Config{DateLayout: "2006-01-02", TimeLayout: "3:04 PM"})

	if got := f.FullDate(sample); got != "2025-06-07" {
		t.Fatalf("FullDate() = %q", got)
	}
	if got := f.Time(sample); got != "2:30 PM" {
		t.Fatalf("Time() = %q", got)
	}
}
