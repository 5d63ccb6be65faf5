// Package msg defines the closed set of messages the application reacts to.
//
// Every message implements Accept, which calls the matching Visitor method.
// Adding a message kind means adding a Visitor method, so every consumer
// fails to compile until it handles the new kind.
package msg

import "encoding/json"

// Msg is a user intent or system event.
type Msg interface {
	Accept(v Visitor)
}

// Visitor has one method per message kind.
type Visitor interface {
	VisitCreateTodo(CreateTodo)
	VisitToggleOverlay(ToggleOverlay)
}

// CreateTodo asks for a new entry from the overlay form. Currently a no-op.
type CreateTodo struct{}

func (m CreateTodo) Accept(v Visitor) { v.VisitCreateTodo(m) }

// ToggleOverlay shows or hides the entry-creation overlay.
type ToggleOverlay struct {
	Visible bool `json:"visible"`
}

func (m ToggleOverlay) Accept(v Visitor) { v.VisitToggleOverlay(m) }

const (
	KindCreateTodo    = "create_todo"
	KindToggleOverlay = "toggle_overlay"
)

type kindOf struct{ kind string }

func (k *kindOf) VisitCreateTodo(CreateTodo)       { k.kind = KindCreateTodo }
func (k *kindOf) VisitToggleOverlay(ToggleOverlay) { k.kind = KindToggleOverlay }

// Kind returns the stable name of m's kind, or "" for nil.
func Kind(m Msg) string {
	if m == nil {
		return ""
	}
	var k kindOf
	m.Accept(&k)
	return k.kind
}

// Encode returns the kind name and JSON payload of m.
func Encode(m Msg) (kind string, payload []byte, err error) {
	kind = Kind(m)
	if kind == "" {
		return "", nil, errNilMsg
	}
	payload, err = json.Marshal(m)
	if err != nil {
		return "", nil, err
	}
	return kind, payload, nil
}
