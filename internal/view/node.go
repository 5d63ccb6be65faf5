// Package view projects application state into a display tree.
//
// The tree is renderer-agnostic: the terminal UI draws it with lipgloss, and
// the CLI can print it as JSON or EDN. Interactive nodes carry the message
// they emit when activated.
package view

import (
	"encoding/json"

	"docket-cli/internal/msg"
)

type Kind string

const (
	KindRoot     Kind = "root"
	KindHeading  Kind = "heading"
	KindOverlay  Kind = "overlay"
	KindInput    Kind = "input"
	KindTextArea Kind = "textarea"
	KindButton   Kind = "button"
	KindList     Kind = "list"
	KindCard     Kind = "card"
	KindTitle    Kind = "title"
	KindBody     Kind = "body"
)

type Node struct {
	ID          string
	Kind        Kind
	Text        string
	Placeholder string
	// Label is an accessible name for nodes without visible text.
	Label string
	// Hidden marks a subtree that is present but not shown.
	Hidden bool
	// OnActivate is the message emitted when the node is activated. Nil for
	// passive nodes.
	OnActivate msg.Msg
	Children   []Node
}

// Activate returns the message the node emits, if any.
func (n Node) Activate() (msg.Msg, bool) {
	if n.OnActivate == nil {
		return nil, false
	}
	return n.OnActivate, true
}

// Child returns the first direct child of the given kind.
func (n Node) Child(kind Kind) (Node, bool) {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c, true
		}
	}
	return Node{}, false
}

// Walk visits root and its descendants depth-first in order. Returning false
// from fn skips the node's children.
func Walk(root Node, fn func(Node) bool) {
	if !fn(root) {
		return
	}
	for _, c := range root.Children {
		Walk(c, fn)
	}
}

func Find(root Node, id string) (Node, bool) {
	var (
		out   Node
		found bool
	)
	Walk(root, func(n Node) bool {
		if found {
			return false
		}
		if n.ID == id {
			out, found = n, true
			return false
		}
		return true
	})
	return out, found
}

type emitsJSON struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

type nodeJSON struct {
	ID          string     `json:"id,omitempty"`
	Kind        Kind       `json:"kind"`
	Text        string     `json:"text,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Label       string     `json:"label,omitempty"`
	Hidden      bool       `json:"hidden,omitempty"`
	Emits       *emitsJSON `json:"emits,omitempty"`
	Children    []Node     `json:"children,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		ID:          n.ID,
		Kind:        n.Kind,
		Text:        n.Text,
		Placeholder: n.Placeholder,
		Label:       n.Label,
		Hidden:      n.Hidden,
		Children:    n.Children,
	}
	if n.OnActivate != nil {
		kind, payload, err := msg.Encode(n.OnActivate)
		if err != nil {
			return nil, err
		}
		out.Emits = &emitsJSON{Kind: kind, Payload: payload}
	}
	return json.Marshal(out)
}
