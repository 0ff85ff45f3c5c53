package template

import (
	"context"
	"strconv"
	"time"

	"github.com/geotrail/logtemplate/connector"
	"github.com/geotrail/logtemplate/observe"
)

// counter resolves the NUMBER family of templates: the found count of the
// cache's connector, incremented for the log being composed.
//
// The login call is the only network-triggering action in this package. It
// fires at most once per invocation, only when the reported count is zero,
// and never when the context is offline.
func (p *Provider) counter(ctx context.Context, logCtx LogContext, increment bool) string {
	if logCtx.Cache == nil {
		return ""
	}

	conn := p.connectorFor(logCtx.Cache)
	login, hasLogin := conn.(connector.Login)

	current := 0
	if hasLogin {
		current = login.CachesFound()
	}

	// A zero count usually means the connector has not logged in yet.
	if current == 0 {
		if logCtx.Offline {
			return ""
		}
		if hasLogin {
			start := time.Now()
			err := login.Login(ctx)
			p.metrics.RecordLogin(ctx, conn.Name(), time.Since(start), err)
			if err != nil {
				// Outcome is best-effort; the count read below decides.
				p.logger.Warn(ctx, "connector login failed",
					observe.Field{Key: "connector", Value: conn.Name()},
					observe.Field{Key: "error", Value: err.Error()},
				)
			}
			current = login.CachesFound()
		}
	}

	if current < 0 {
		// Negative is the connector's "unknown" sentinel.
		return ""
	}
	if increment {
		current++
	}
	return strconv.Itoa(current)
}
