package template

import (
	"context"
	"strings"
	"time"

	"github.com/geotrail/logtemplate/observe"
)

// Apply replaces every bracketed occurrence of every registered token in
// text with that token's resolved value.
//
// Templates are processed in registry order, each at most once, and each
// scan runs against the current accumulated text: a value produced by an
// earlier template that contains a later template's bracket syntax is
// substituted in the same pass. SIGNATURE's nested expansion relies on this.
//
// Resolution is lazy. A resolver only runs when its bracketed token is
// present, so absent tokens never trigger cost or side effects. The engine
// imposes no recursion limit; SIGNATURE's self-reference guard is the sole
// cycle-breaker.
func (p *Provider) Apply(ctx context.Context, text string, logCtx LogContext) string {
	ctx, span := p.tracer.StartSpan(ctx, "template.apply")
	defer p.tracer.EndSpan(span, nil)

	result := text
	for _, t := range p.allTemplates() {
		if !t.contains(result) {
			continue
		}

		start := time.Now()
		value := t.Resolve(ctx, logCtx)
		p.metrics.RecordApply(ctx, t.Token(), time.Since(start))
		p.logger.Debug(ctx, "template applied",
			observe.Field{Key: "token", Value: t.Token()},
		)

		result = strings.ReplaceAll(result, t.bracketed(), value)
	}
	return result
}

// ApplyNoIncrement renders text like Apply but without advancing the found
// counter, by rewriting every literal [NUMBER] to the internal no-increment
// variant first. Use it to re-render an already composed preview.
func (p *Provider) ApplyNoIncrement(ctx context.Context, text string, logCtx LogContext) string {
	rewritten := strings.ReplaceAll(text, "["+tokenNumber+"]", "["+tokenNoIncrement+"]")
	return p.Apply(ctx, rewritten, logCtx)
}
