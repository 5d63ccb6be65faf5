package update

import (
	"testing"
	"time"

	"docket-cli/internal/model"
	"docket-cli/internal/msg"

	"github.com/google/go-cmp/cmp"
)

func fixtureStates() map[string]model.State {
	now := time.Date(2025, 12, 21, 8, 0, 0, 0, time.UTC)
	n := 0
	seed := model.SeedWith(now, func() model.ID {
		n++
		return model.ID([]string{"", "id-a", "id-b"}[n])
	})
	hidden := seed.Clone()
	hidden.OverlayVisible = false
	return map[string]model.State{
		"seed":   seed,
		"hidden": hidden,
		"empty":  {},
		"grouped": {
			Entries: []model.Entry{
				{ID: "p", Name: "parent", Status: model.StatusInProgress, Children: []model.ID{"c", "gone"}, Category: "work", Timestamp: now},
				{ID: "c", Name: "child", Status: model.StatusOnHold, Category: "work", Timestamp: now},
			},
			OverlayVisible: true,
		},
	}
}

func TestToggleOverlay_Idempotent(t *testing.T) {
	t.Parallel()

	for name, s := range fixtureStates() {
		for _, b := range []bool{true, false} {
			once := Transition(msg.ToggleOverlay{Visible: b}, s)
			twice := Transition(msg.ToggleOverlay{Visible: b}, once)
			if once.OverlayVisible != b || twice.OverlayVisible != b {
				t.Fatalf("%s: ToggleOverlay(%v) once=%v twice=%v", name, b, once.OverlayVisible, twice.OverlayVisible)
			}
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("%s: second toggle changed state (-once +twice):\n%s", name, diff)
			}
		}
	}
}

func TestToggleOverlay_LeavesEntriesAlone(t *testing.T) {
	t.Parallel()

	for name, s := range fixtureStates() {
		before := s.Clone()
		for _, b := range []bool{true, false} {
			got := Transition(msg.ToggleOverlay{Visible: b}, s)
			if diff := cmp.Diff(s.Entries, got.Entries); diff != "" {
				t.Fatalf("%s: entries changed (-want +got):\n%s", name, diff)
			}
		}
		// Input must not be mutated either.
		if diff := cmp.Diff(before, s); diff != "" {
			t.Fatalf("%s: input mutated (-before +after):\n%s", name, diff)
		}
	}
}

// Regression: CreateTodo is a placeholder. Update this test once the create
// flow exists.
func TestCreateTodo_IsNoOp(t *testing.T) {
	t.Parallel()

	for name, s := range fixtureStates() {
		got := Transition(msg.CreateTodo{}, s)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Fatalf("%s: CreateTodo changed state (-want +got):\n%s", name, diff)
		}
	}
}

func TestTransition_NilMsg(t *testing.T) {
	s := fixtureStates()["seed"]
	if diff := cmp.Diff(s, Transition(nil, s)); diff != "" {
		t.Fatalf("nil msg changed state:\n%s", diff)
	}
}

func TestTransition_FoldsInOrder(t *testing.T) {
	s := fixtureStates()["seed"]
	got := apply(s,
		msg.ToggleOverlay{Visible: false},
		msg.CreateTodo{},
		msg.ToggleOverlay{Visible: true},
		msg.ToggleOverlay{Visible: false},
	)
	if got.OverlayVisible {
		t.Fatalf("expected overlay hidden after last toggle")
	}
	if len(got.Entries) != 2 {
		t.Fatalf("expected entries unchanged, got %d", len(got.Entries))
	}
}

func apply(s model.State, msgs ...msg.Msg) model.State {
	for _, m := range msgs {
		s = Transition(m, s)
	}
	return s
}
