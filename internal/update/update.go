// Package update holds the pure state transition step.
package update

import (
	"docket-cli/internal/model"
	"docket-cli/internal/msg"
)

// Transition returns the state that results from applying m to s.
//
// It never mutates s. Parts of the state that m does not touch (the entries
// slice in particular) are shared with the input.
func Transition(m msg.Msg, s model.State) model.State {
	if m == nil {
		return s
	}
	t := transition{state: s}
	m.Accept(&t)
	return t.state
}

type transition struct {
	state model.State
}

// VisitCreateTodo is a placeholder for the create flow and changes nothing.
func (t *transition) VisitCreateTodo(msg.CreateTodo) {}

func (t *transition) VisitToggleOverlay(m msg.ToggleOverlay) {
	t.state.OverlayVisible = m.Visible
}
