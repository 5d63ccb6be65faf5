package tui

import "docket-cli/internal/view"

// overlayFocus is the focused control while the overlay is open. Order is
// the tab order.
type overlayFocus int

const (
	focusTitle overlayFocus = iota
	focusDescription
	focusSave
	focusCancel
	focusClose

	overlayFocusCount
)

var overlayFocusIDs = [overlayFocusCount]string{
	focusTitle:       view.IDTitle,
	focusDescription: view.IDDescription,
	focusSave:        view.IDSave,
	focusCancel:      view.IDCancel,
	focusClose:       view.IDClose,
}

// nodeID is the id of the display node the focus sits on.
func (f overlayFocus) nodeID() string {
	if f < 0 || f >= overlayFocusCount {
		return ""
	}
	return overlayFocusIDs[f]
}

func (f overlayFocus) next() overlayFocus { return (f + 1) % overlayFocusCount }
func (f overlayFocus) prev() overlayFocus {
	return (f + overlayFocusCount - 1) % overlayFocusCount
}

func (f overlayFocus) isButton() bool { return f >= focusSave && f < overlayFocusCount }
