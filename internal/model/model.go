package model

import (
	"time"

	"github.com/google/uuid"
)

// ID identifies an Entry. IDs are UUIDv7 strings, so their lexical order
// follows creation time.
type ID string

// NewID returns a fresh, time-ordered entry id.
func NewID() ID {
	return ID(uuid.Must(uuid.NewV7()).String())
}

func (id ID) String() string { return string(id) }

// Entry is a task- or event-like record.
type Entry struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`

	// Children groups sub-entries under this one. References may dangle;
	// readers skip ids that are not in the store.
	Children []ID   `json:"children"`
	Category string `json:"category"`
}

// State is the whole application state owned by the driver loop.
type State struct {
	Entries        []Entry `json:"entries"`
	OverlayVisible bool    `json:"overlayVisible"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{OverlayVisible: s.OverlayVisible}
	if s.Entries == nil {
		return out
	}
	out.Entries = make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		if e.Children != nil {
			e.Children = append([]ID(nil), e.Children...)
		}
		out.Entries[i] = e
	}
	return out
}
