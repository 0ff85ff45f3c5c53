package template

import (
	"context"
	"hash/fnv"
	"strings"
)

// Label is an opaque display-label handle for a template. The host
// application maps it to localized text; this package only passes it
// through. The zero value marks a template that is never user facing.
type Label string

// Display-label handles for the built-in templates.
const (
	LabelDate      Label = "template_date"
	LabelTime      Label = "template_time"
	LabelDateTime  Label = "template_datetime"
	LabelUser      Label = "template_user"
	LabelNumber    Label = "template_number"
	LabelOwner     Label = "template_owner"
	LabelName      Label = "template_name"
	LabelURL       Label = "template_url"
	LabelLog       Label = "template_log"
	LabelSignature Label = "template_signature"

	labelNone Label = ""
)

// Well-known tokens referenced outside the registry tables.
const (
	tokenNumber      = "NUMBER"
	tokenNoIncrement = "NUMBER$NOINC"
	tokenSignature   = "SIGNATURE"
)

// InvalidSignatureMarker is substituted for [SIGNATURE] when the configured
// signature text references SIGNATURE itself, which would recurse forever.
const InvalidSignatureMarker = "invalid signature template"

// ResolveFunc produces a template's value for one resolution call.
type ResolveFunc func(ctx context.Context, logCtx LogContext) string

// Template is a named, resolvable unit: a token, a display-label handle,
// and a resolver. Templates are stateless after construction; a fresh set
// is built for every registry call.
type Template struct {
	token   string
	label   Label
	resolve ResolveFunc
}

func newTemplate(token string, label Label, resolve ResolveFunc) *Template {
	return &Template{token: token, label: label, resolve: resolve}
}

// Token returns the bare token name, without brackets.
func (t *Template) Token() string {
	return t.token
}

// Label returns the template's display-label handle.
func (t *Template) Label() Label {
	return t.label
}

// UserFacing reports whether the template may be shown in template pickers.
func (t *Template) UserFacing() bool {
	return t.label != labelNone
}

// ItemID returns a stable identifier derived from the token. Two registry
// constructions yield the same ID for the same token.
func (t *Template) ItemID() uint32 {
	h := fnv.New32a()
	h.Write([]byte(t.token))
	return h.Sum32()
}

// Resolve runs the template's resolver against logCtx.
func (t *Template) Resolve(ctx context.Context, logCtx LogContext) string {
	return t.resolve(ctx, logCtx)
}

// bracketed returns the literal substring the engine scans for.
func (t *Template) bracketed() string {
	return "[" + t.token + "]"
}

// contains reports whether text holds at least one bracketed occurrence.
func (t *Template) contains(text string) bool {
	return strings.Contains(text, t.bracketed())
}
