package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID     = errors.New("entry has empty id")
	ErrDuplicateID = errors.New("duplicate entry id")
	ErrChildCycle  = errors.New("entry is its own descendant")
)

// Validate checks structural well-formedness of a state read from outside
// the program: ids are non-empty and unique, and no entry reaches itself
// through Children. Dangling child ids are allowed.
func (s State) Validate() error {
	idx := make(map[ID]int, len(s.Entries))
	for i, e := range s.Entries {
		if strings.TrimSpace(string(e.ID)) == "" {
			return fmt.Errorf("entries[%d]: %w", i, ErrEmptyID)
		}
		if _, dup := idx[e.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		idx[e.ID] = i
	}

	// Iterative DFS with colouring; grey nodes are on the current path.
	const (
		white = iota
		grey
		black
	)
	colour := make([]int, len(s.Entries))
	type frame struct {
		at   int
		next int
	}
	for root := range s.Entries {
		if colour[root] != white {
			continue
		}
		stack := []frame{{at: root}}
		colour[root] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := s.Entries[top.at].Children
			if top.next >= len(children) {
				colour[top.at] = black
				stack = stack[:len(stack)-1]
				continue
			}
			cid := children[top.next]
			top.next++
			ci, ok := idx[cid]
			if !ok {
				continue
			}
			switch colour[ci] {
			case grey:
				return fmt.Errorf("%w: %s", ErrChildCycle, cid)
			case white:
				colour[ci] = grey
				stack = append(stack, frame{at: ci})
			}
		}
	}
	return nil
}
