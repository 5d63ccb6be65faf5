package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an Entry.
//
// Any status may be assigned from any other; there is no transition table.
type Status int

const (
	StatusInProgress Status = iota
	StatusTodo
	StatusDone
	StatusCancelled
	StatusOnHold
)

var statusDefs = []struct {
	status Status
	id     string
	label  string
	goName string
}{
	{StatusInProgress, "in_progress", "In progress", "InProgress"},
	{StatusTodo, "todo", "Todo", "Todo"},
	{StatusDone, "done", "Done", "Done"},
	{StatusCancelled, "cancelled", "Cancelled", "Cancelled"},
	{StatusOnHold, "on_hold", "On hold", "OnHold"},
}

// Statuses lists every status in declaration order.
func Statuses() []Status {
	out := make([]Status, 0, len(statusDefs))
	for _, d := range statusDefs {
		out = append(out, d.status)
	}
	return out
}

func (s Status) valid() bool { return s >= StatusInProgress && s <= StatusOnHold }

// String returns the stable text id (e.g. "on_hold").
func (s Status) String() string {
	if !s.valid() {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusDefs[s].id
}

// Label returns the human-readable name (e.g. "On hold").
func (s Status) Label() string {
	if !s.valid() {
		return s.String()
	}
	return statusDefs[s].label
}

// ParseStatus accepts the text id, the label, or the Go-style name,
// ignoring case and surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid status: empty")
	}
	for _, d := range statusDefs {
		if strings.EqualFold(v, d.id) || strings.EqualFold(v, d.label) || strings.EqualFold(v, d.goName) {
			return d.status, nil
		}
	}
	return 0, fmt.Errorf("invalid status: %q (want one of %s)", raw, statusChoices())
}

// statusChoices lists the accepted spellings for error messages.
func statusChoices() string {
	parts := make([]string, 0, len(statusDefs))
	for _, st := range Statuses() {
		parts = append(parts, fmt.Sprintf("%s (%s)", st, st.Label()))
	}
	return strings.Join(parts, ", ")
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid status: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
