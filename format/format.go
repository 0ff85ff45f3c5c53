// Package format renders timestamps for template output. The layouts are
// the host's display convention; substitution logic never inspects them.
package format

import "time"

// Default layouts, matching a full spelled-out date and a 24h clock.
const (
	DefaultDateLayout = "Monday, January 2, 2006"
	DefaultTimeLayout = "15:04"
)

// Formatter renders the date and time values templates substitute.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: rendering must not fail; implementations return best-effort text.
type Formatter interface {
	// FullDate renders t using the host's full-date convention.
	FullDate(t time.Time) string

	// Time renders t using the host's time-of-day convention.
	Time(t time.Time) string
}

// Config selects the layouts a Formatter renders with.
type Config struct {
	// DateLayout is a time layout string for FullDate.
	// Default: DefaultDateLayout.
	DateLayout string

	// TimeLayout is a time layout string for Time.
	// Default: DefaultTimeLayout.
	TimeLayout string
}

// New creates a Formatter with the given layouts, applying defaults for
// empty fields.
func New(cfg Config) Formatter {
	if cfg.DateLayout == "" {
		cfg.DateLayout = DefaultDateLayout
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = DefaultTimeLayout
	}
	return layoutFormatter{cfg: cfg}
}

type layoutFormatter struct {
	cfg Config
}

func (f layoutFormatter) FullDate(t time.Time) string {
	return t.Format(f.cfg.DateLayout)
}

func (f layoutFormatter) Time(t time.Time) string {
	return t.Format(f.cfg.TimeLayout)
}
