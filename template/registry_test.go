package template

import (
	"testing"

	"github.com/geotrail/logtemplate/settings"
)

var wantOrder = []string{"DATE", "TIME", "DATETIME", "USER", "NUMBER", "OWNER", "NAME", "URL", "LOG"}

func tokensOf(templates []*Template) []string {
	tokens := make([]string, 0, len(templates))
	for _, t := range templates {
		tokens = append(tokens, t.Token())
	}
	return tokens
}

func equalTokens(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTemplatesWithoutSignature_Order(t *testing.T) {
	p := newTestProvider(nil, settings.Static{})

	got := tokensOf(p.TemplatesWithoutSignature())
	if !equalTokens(got, wantOrder) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestTemplatesWithSignature_AppendsSignatureLast(t *testing.T) {
	p := newTestProvider(nil, settings.Static{})

	got := tokensOf(p.TemplatesWithSignature())
	if !equalTokens(got, append(append([]string{}, wantOrder...), "SIGNATURE")) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestAllTemplates_AppendsInternalVariantLast(t *testing.T) {
	p := newTestProvider(nil, settings.Static{})

	templates := p.allTemplates()
	last := templates[len(templates)-1]
	if last.Token() != "NUMBER$NOINC" {
		t.Fatalf("last template = %q, want NUMBER$NOINC", last.Token())
	}
	if last.UserFacing() {
		t.Fatalf("NUMBER$NOINC must not be user facing")
	}
}

func TestListTemplates_ExcludesInternalVariant(t *testing.T) {
	p := newTestProvider(nil, settings.Static{})

	for _, includeSignature := range []bool{false, true} {
		for _, info := range p.ListTemplates(includeSignature) {
			if info.Token == "NUMBER$NOINC" {
				t.Fatalf("internal variant exposed with includeSignature=%v", includeSignature)
			}
			if info.Label == labelNone {
				t.Fatalf("listed template %q has no label", info.Token)
			}
		}
	}

	if n := len(p.ListTemplates(false)); n != len(wantOrder) {
		t.Fatalf("ListTemplates(false) returned %d entries, want %d", n, len(wantOrder))
	}
	if n := len(p.ListTemplates(true)); n != len(wantOrder)+1 {
		t.Fatalf("ListTemplates(true) returned %d entries, want %d", n, len(wantOrder)+1)
	}
}

func TestTemplateByItemID_StableAcrossRegistries(t *testing.T) {
	p1 := newTestProvider(nil, settings.Static{})
	p2 := newTestProvider(nil, settings.Static{})

	for _, tmpl := range p1.allTemplates() {
		found, ok := p2.TemplateByItemID(tmpl.ItemID())
		if !ok {
			t.Fatalf("TemplateByItemID(%d) missed for %q", tmpl.ItemID(), tmpl.Token())
		}
		if found.Token() != tmpl.Token() {
			t.Fatalf("TemplateByItemID(%d) = %q, want %q", tmpl.ItemID(), found.Token(), tmpl.Token())
		}
	}
}

func TestTemplateByItemID_Unknown(t *testing.T) {
	p := newTestProvider(nil, settings.Static{})

	if _, ok := p.TemplateByItemID(0); ok {
		t.Fatalf("expected miss for unknown item id")
	}
}
