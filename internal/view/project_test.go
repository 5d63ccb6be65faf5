package view

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"docket-cli/internal/model"
	"docket-cli/internal/msg"

	"github.com/google/go-cmp/cmp"
)

func TestProject_EmptyHiddenState(t *testing.T) {
	t.Parallel()

	tree := Project(model.State{Entries: []model.Entry{}, OverlayVisible: false})

	list, ok := Find(tree, IDList)
	if !ok {
		t.Fatalf("expected a list container")
	}
	if list.Kind != KindList {
		t.Fatalf("expected list kind, got %q", list.Kind)
	}
	if n := len(findAll(tree, KindCard)); n != 0 {
		t.Fatalf("expected zero cards, got %d", n)
	}

	overlay, ok := Find(tree, IDOverlay)
	if !ok {
		t.Fatalf("overlay must stay in the tree when hidden")
	}
	if !overlay.Hidden {
		t.Fatalf("expected overlay hidden")
	}
	for _, id := range []string{IDTitle, IDDescription, IDSave, IDCancel} {
		if _, ok := Find(overlay, id); !ok {
			t.Fatalf("hidden overlay is missing %s", id)
		}
	}
}

func TestProject_OverlayVisibleFollowsState(t *testing.T) {
	t.Parallel()

	overlay, _ := Find(Project(model.State{OverlayVisible: true}), IDOverlay)
	if overlay.Hidden {
		t.Fatalf("expected overlay shown")
	}
	if title, _ := Find(overlay, IDTitle); title.Placeholder != "Title" || title.Kind != KindInput {
		t.Fatalf("unexpected title node: %+v", title)
	}
	if desc, _ := Find(overlay, IDDescription); desc.Placeholder != "Description" || desc.Kind != KindTextArea {
		t.Fatalf("unexpected description node: %+v", desc)
	}
}

func TestProject_CancelEmitsHideOverlay(t *testing.T) {
	t.Parallel()

	tree := Project(model.Seed())
	cancel, ok := Find(tree, IDCancel)
	if !ok {
		t.Fatalf("missing cancel button")
	}
	m, ok := cancel.Activate()
	if !ok {
		t.Fatalf("cancel must emit a message")
	}
	if m != (msg.ToggleOverlay{Visible: false}) {
		t.Fatalf("expected ToggleOverlay(false), got %#v", m)
	}

	save, _ := Find(tree, IDSave)
	if m, ok := save.Activate(); !ok || m != (msg.CreateTodo{}) {
		t.Fatalf("expected save to emit CreateTodo, got %#v (ok=%v)", m, ok)
	}

	heading, _ := tree.Child(KindHeading)
	if _, ok := heading.Activate(); ok {
		t.Fatalf("heading must be passive")
	}
}

func TestProject_EntryFidelity(t *testing.T) {
	t.Parallel()

	s := model.State{Entries: []model.Entry{{ID: "one", Name: "X", Details: "Y", Status: model.StatusTodo}}}
	cards := findAll(Project(s), KindCard)
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}
	title, ok := cards[0].Child(KindTitle)
	if !ok || title.Text != "X" {
		t.Fatalf("expected title %q, got %+v", "X", title)
	}
	body, ok := cards[0].Child(KindBody)
	if !ok || body.Text != "Y" {
		t.Fatalf("expected body %q, got %+v", "Y", body)
	}
	if cards[0].ID != EntryNodeID("one") {
		t.Fatalf("unexpected card id %q", cards[0].ID)
	}
}

func TestProject_KeepsEntryOrder(t *testing.T) {
	t.Parallel()

	s := model.SeedWith(time.Now(), model.NewID)
	cards := findAll(Project(s), KindCard)
	if len(cards) != len(s.Entries) {
		t.Fatalf("expected %d cards, got %d", len(s.Entries), len(cards))
	}
	for i, c := range cards {
		if c.ID != EntryNodeID(s.Entries[i].ID) {
			t.Fatalf("card %d out of order: %q", i, c.ID)
		}
	}
}

func TestProject_DanglingChildrenRenderLikeNoChildren(t *testing.T) {
	t.Parallel()

	base := model.Entry{ID: "e", Name: "parent", Details: "d", Status: model.StatusDone, Category: "c"}
	dangling := base
	dangling.Children = []model.ID{"ghost-1", "ghost-2"}
	empty := base
	empty.Children = []model.ID{}

	got := Project(model.State{Entries: []model.Entry{dangling}})
	want := Project(model.State{Entries: []model.Entry{empty}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dangling children changed projection (-want +got):\n%s", diff)
	}
}

func TestProject_CardShowsNameAndDetailsOnly(t *testing.T) {
	t.Parallel()

	s := model.State{Entries: []model.Entry{
		{ID: "p", Name: "parent", Details: "d", Status: model.StatusOnHold, Category: "home", Children: []model.ID{"k"}},
		{ID: "k", Name: "kid", Status: model.StatusDone},
	}}
	card, ok := Find(Project(s), EntryNodeID("p"))
	if !ok {
		t.Fatalf("card not projected")
	}
	want := []Node{
		{Kind: KindTitle, Text: "parent"},
		{Kind: KindBody, Text: "d"},
	}
	if diff := cmp.Diff(want, card.Children); diff != "" {
		t.Fatalf("card children (-want +got):\n%s", diff)
	}
}

func TestProject_DoesNotMutateState(t *testing.T) {
	t.Parallel()

	s := model.Seed()
	before := s.Clone()
	_ = Project(s)
	if diff := cmp.Diff(before, s); diff != "" {
		t.Fatalf("Project mutated state:\n%s", diff)
	}
}

func TestNode_MarshalJSON_Emits(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Project(model.State{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"id":"overlay.cancel"`,
		`"emits":{"kind":"toggle_overlay","payload":{"visible":false}}`,
		`"emits":{"kind":"create_todo","payload":{}}`,
		`"hidden":true`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}
}

func findAll(root Node, kind Kind) []Node {
	var out []Node
	Walk(root, func(n Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}
