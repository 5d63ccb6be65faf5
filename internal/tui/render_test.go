package tui

import (
	"strings"
	"testing"

	"docket-cli/internal/model"
	"docket-cli/internal/view"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderTree(t *testing.T) {
	setGlyphs(glyphSetUnicode)

	s := seedState()
	out := xansi.Strip(RenderTree(view.Project(s), 80))
	for _, want := range []string{"Home page", "New entry", "Save", "Cancel", "make todo list", "details1", "make calendar", "details2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}

	s.OverlayVisible = false
	out = xansi.Strip(RenderTree(view.Project(s), 80))
	if strings.Contains(out, "New entry") || strings.Contains(out, "Save") {
		t.Fatalf("hidden overlay rendered:\n%s", out)
	}
	if !strings.Contains(out, "make todo list") {
		t.Fatalf("entries missing:\n%s", out)
	}
}

func TestRenderTree_Empty(t *testing.T) {
	out := xansi.Strip(RenderTree(view.Project(model.State{}), 0))
	if !strings.Contains(out, "Home page") || !strings.Contains(out, "No entries.") {
		t.Fatalf("unexpected empty render:\n%s", out)
	}
}

func TestRenderCard_NameAndDetailsOnly(t *testing.T) {
	setGlyphs(glyphSetUnicode)

	s := model.State{Entries: []model.Entry{
		{ID: "p", Name: "parent", Details: "body", Status: model.StatusOnHold, Children: []model.ID{"c"}, Category: "home"},
		{ID: "c", Name: "child", Status: model.StatusDone},
	}}
	card, ok := view.Find(view.Project(s), view.EntryNodeID("p"))
	if !ok {
		t.Fatalf("card not projected")
	}

	out := xansi.Strip(renderCard(card, 60, false))
	if !strings.Contains(out, "parent") || !strings.Contains(out, "body") {
		t.Fatalf("expected name and details:\n%s", out)
	}
	for _, hidden := range []string{"On hold", "home", "child"} {
		if strings.Contains(out, hidden) {
			t.Fatalf("card should not show %q:\n%s", hidden, out)
		}
	}
	rows := cardDelegate{}.Height()
	if n := len(strings.Split(out, "\n")); n != rows {
		t.Fatalf("card should be %d rows, got %d:\n%s", rows, n, out)
	}
}

func TestFitLine(t *testing.T) {
	setGlyphs(glyphSetUnicode)

	if got := fitLine("abc", 5); got != "abc  " {
		t.Fatalf("pad: %q", got)
	}
	if got := fitLine("abcdef", 4); got != "abc…" {
		t.Fatalf("cut: %q", got)
	}
	if got := fitLine("a\nb", 3); got != "a b" {
		t.Fatalf("newline: %q", got)
	}
	if got := fitLine("x", 0); got != "" {
		t.Fatalf("zero width: %q", got)
	}
	if got := fitLine(strings.Repeat("a", 10000), 5); got != "aaaa…" {
		t.Fatalf("long input should end in an ellipsis: %q", got)
	}
}
