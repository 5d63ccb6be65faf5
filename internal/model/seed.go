package model

import "time"

// Seed returns the initial application state. The driver calls it once.
func Seed() State {
	return SeedWith(time.Now(), NewID)
}

// SeedWith is Seed with an injectable clock reading and id source.
func SeedWith(now time.Time, newID func() ID) State {
	return State{
		Entries: []Entry{
			{
				ID:        newID(),
				Name:      "make todo list",
				Details:   "details1",
				Timestamp: now,
				Status:    StatusTodo,
				Children:  []ID{},
				Category:  "todo",
			},
			{
				ID:        newID(),
				Name:      "make calendar",
				Details:   "details2",
				Timestamp: now,
				Status:    StatusTodo,
				Children:  []ID{},
				Category:  "todo",
			},
		},
		OverlayVisible: true,
	}
}
