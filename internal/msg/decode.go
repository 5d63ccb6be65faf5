package msg

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errNilMsg      = errors.New("nil message")
	ErrUnknownKind = errors.New("unknown message kind")
)

// Decode rebuilds a message from the output of Encode.
func Decode(kind string, payload []byte) (Msg, error) {
	switch kind {
	case KindCreateTodo:
		return CreateTodo{}, nil
	case KindToggleOverlay:
		var m ToggleOverlay
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &m); err != nil {
				return nil, fmt.Errorf("decode %s: %w", kind, err)
			}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
