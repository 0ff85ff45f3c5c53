package template

import (
	"context"
	"strings"
	"time"

	"github.com/geotrail/logtemplate/connector"
	"github.com/geotrail/logtemplate/format"
	"github.com/geotrail/logtemplate/observe"
	"github.com/geotrail/logtemplate/settings"
)

// Config holds the collaborators a Provider resolves templates with.
// Every field is optional; missing collaborators degrade to empty output
// (settings, connectors) or process defaults (formatter, clock), never to
// an error.
type Config struct {
	// Connectors maps a geocode to its connector. Defaults to a source
	// that returns a connector with no login capability.
	Connectors connector.Source

	// Settings supplies the configured username and signature text.
	// Defaults to empty values.
	Settings settings.Provider

	// Formatter renders the DATE and TIME values. Defaults to
	// format.New with host-convention layouts.
	Formatter format.Formatter

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives structured diagnostics. Defaults to a no-op logger.
	Logger observe.Logger

	// Metrics records template applications and login attempts.
	// Defaults to a no-op implementation.
	Metrics observe.Metrics

	// Tracer wraps Apply calls in spans. Defaults to a no-op tracer.
	Tracer observe.Tracer
}

// Provider builds template registries and applies them to text.
//
// Contract:
// - Concurrency: safe for concurrent use; registries are rebuilt fresh per
//   call and share no mutable state.
// - Context: ctx is forwarded to the connector login call, the only
//   blocking operation in this package.
// - Errors: public operations never fail; failures resolve to "" or to
//   InvalidSignatureMarker.
type Provider struct {
	connectors connector.Source
	settings   settings.Provider
	formatter  format.Formatter
	clock      func() time.Time
	logger     observe.Logger
	metrics    observe.Metrics
	tracer     observe.Tracer
}

// New creates a Provider, filling in defaults for absent collaborators.
func New(cfg Config) *Provider {
	if cfg.Connectors == nil {
		cfg.Connectors = connector.SourceFunc(func(string) connector.Connector {
			return connector.Unknown()
		})
	}
	if cfg.Settings == nil {
		cfg.Settings = settings.Static{}
	}
	if cfg.Formatter == nil {
		cfg.Formatter = format.New(format.Config{})
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observe.NopMetrics()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = observe.NopTracer()
	}

	return &Provider{
		connectors: cfg.Connectors,
		settings:   cfg.Settings,
		formatter:  cfg.Formatter,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		tracer:     cfg.Tracer,
	}
}

// connectorFor resolves the connector responsible for a cache.
func (p *Provider) connectorFor(cache CacheView) connector.Connector {
	return p.connectors.ConnectorFor(cache.Geocode())
}

// TemplatesWithoutSignature returns the user-facing templates, excluding the
// signature template itself. The order is fixed and is the order Apply
// processes templates in.
func (p *Provider) TemplatesWithoutSignature() []*Template {
	return []*Template{
		newTemplate("DATE", LabelDate, func(_ context.Context, _ LogContext) string {
			return p.formatter.FullDate(p.clock())
		}),
		newTemplate("TIME", LabelTime, func(_ context.Context, _ LogContext) string {
			return p.formatter.Time(p.clock())
		}),
		newTemplate("DATETIME", LabelDateTime, func(_ context.Context, _ LogContext) string {
			now := p.clock()
			return p.formatter.FullDate(now) + " " + p.formatter.Time(now)
		}),
		newTemplate("USER", LabelUser, func(_ context.Context, logCtx LogContext) string {
			if logCtx.Cache != nil {
				if login, ok := p.connectorFor(logCtx.Cache).(connector.Login); ok {
					return login.UserName()
				}
			}
			return p.settings.UserName()
		}),
		newTemplate(tokenNumber, LabelNumber, func(ctx context.Context, logCtx LogContext) string {
			return p.counter(ctx, logCtx, true)
		}),
		newTemplate("OWNER", LabelOwner, func(_ context.Context, logCtx LogContext) string {
			if logCtx.Trackable != nil {
				return logCtx.Trackable.Owner()
			}
			if logCtx.Cache != nil {
				return logCtx.Cache.OwnerDisplayName()
			}
			return ""
		}),
		newTemplate("NAME", LabelName, func(_ context.Context, logCtx LogContext) string {
			if logCtx.Trackable != nil {
				return logCtx.Trackable.Name()
			}
			if logCtx.Cache != nil {
				return logCtx.Cache.Name()
			}
			return ""
		}),
		newTemplate("URL", LabelURL, func(_ context.Context, logCtx LogContext) string {
			if logCtx.Trackable != nil {
				return logCtx.Trackable.URL()
			}
			if logCtx.Cache != nil {
				return logCtx.Cache.URL()
			}
			return ""
		}),
		newTemplate("LOG", LabelLog, func(_ context.Context, logCtx LogContext) string {
			if logCtx.LogEntry != nil {
				return logCtx.LogEntry.DisplayText()
			}
			return ""
		}),
	}
}

// TemplatesWithSignature returns the user-facing templates including the
// signature template, appended last. SIGNATURE must come after the primitive
// templates: its value is expanded recursively and may itself reintroduce
// bracket syntax that earlier positions would miss.
func (p *Provider) TemplatesWithSignature() []*Template {
	templates := p.TemplatesWithoutSignature()
	return append(templates, newTemplate(tokenSignature, LabelSignature, func(ctx context.Context, logCtx LogContext) string {
		nested := p.settings.Signature()
		if strings.Contains(nested, tokenSignature) {
			return InvalidSignatureMarker
		}
		return p.Apply(ctx, nested, logCtx)
	}))
}

// allTemplates returns every template Apply processes, including the
// internal no-increment counter variant that is never user facing.
func (p *Provider) allTemplates() []*Template {
	templates := p.TemplatesWithSignature()
	return append(templates, newTemplate(tokenNoIncrement, labelNone, func(ctx context.Context, logCtx LogContext) string {
		return p.counter(ctx, logCtx, false)
	}))
}

// TemplateInfo is the listing view of a template for UI presentation.
type TemplateInfo struct {
	Token string
	Label Label
}

// ListTemplates returns the tokens and display-label handles of the
// user-facing templates, in registry order.
func (p *Provider) ListTemplates(includeSignature bool) []TemplateInfo {
	var templates []*Template
	if includeSignature {
		templates = p.TemplatesWithSignature()
	} else {
		templates = p.TemplatesWithoutSignature()
	}

	infos := make([]TemplateInfo, 0, len(templates))
	for _, t := range templates {
		infos = append(infos, TemplateInfo{Token: t.Token(), Label: t.Label()})
	}
	return infos
}

// TemplateByItemID looks up a template by its token-derived identifier,
// independent of registry position.
func (p *Provider) TemplateByItemID(id uint32) (*Template, bool) {
	for _, t := range p.allTemplates() {
		if t.ItemID() == id {
			return t, true
		}
	}
	return nil, false
}
