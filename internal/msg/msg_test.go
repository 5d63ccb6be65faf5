package msg

import (
	"errors"
	"testing"
)

func TestKind(t *testing.T) {
	cases := []struct {
		in   Msg
		want string
	}{
		{CreateTodo{}, KindCreateTodo},
		{ToggleOverlay{Visible: true}, KindToggleOverlay},
		{ToggleOverlay{}, KindToggleOverlay},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := Kind(tc.in); got != tc.want {
			t.Fatalf("Kind(%#v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, m := range []Msg{CreateTodo{}, ToggleOverlay{Visible: true}, ToggleOverlay{Visible: false}} {
		kind, payload, err := Encode(m)
		if err != nil {
			t.Fatalf("Encode(%#v): %v", m, err)
		}
		back, err := Decode(kind, payload)
		if err != nil {
			t.Fatalf("Decode(%q, %s): %v", kind, payload, err)
		}
		if back != m {
			t.Fatalf("expected %#v, got %#v", m, back)
		}
	}

	_, payload, _ := Encode(ToggleOverlay{Visible: true})
	if string(payload) != `{"visible":true}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestEncode_Nil(t *testing.T) {
	if _, _, err := Encode(nil); err == nil {
		t.Fatalf("expected error for nil message")
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode("delete_everything", nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := Decode(KindToggleOverlay, []byte("{")); err == nil {
		t.Fatalf("expected error for bad payload")
	}
}
