package board

import (
	"errors"
	"testing"
)

func TestKeyRoundTrip(t *testing.T) {
	seen := make(map[string]Square)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := NewSquare(row, col)
			key := sq.Key()
			if prev, ok := seen[key]; ok {
				t.Fatalf("Key %q collides for %v and %v", key, prev, sq)
			}
			seen[key] = sq

			got, err := ParseKey(key)
			if err != nil {
				t.Fatalf("ParseKey(%q): %v", key, err)
			}
			if got != sq {
				t.Errorf("ParseKey(%q) = %v, want %v", key, got, sq)
			}
		}
	}
	if NewSquare(1, 4).Key() != "1-4" {
		t.Errorf("Unexpected key format %q", NewSquare(1, 4).Key())
	}
}

func TestParseKeyRejects(t *testing.T) {
	for _, key := range []string{"", "1", "1-", "-1", "8-0", "0-8", "-1-2", "01-2", "a-b", "1-2-3"} {
		if _, err := ParseKey(key); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseKey(%q) error = %v, want ErrInvalidSquare", key, err)
		}
	}
}

func TestAlgebraic(t *testing.T) {
	tests := []struct {
		s  string
		sq Square
	}{
		{"a1", Square{0, 0}},
		{"e2", Square{1, 4}},
		{"h8", Square{7, 7}},
		{"d5", Square{4, 3}},
	}
	for _, tc := range tests {
		got, err := ParseSquare(tc.s)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.s, err)
		}
		if got != tc.sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", tc.s, got, tc.sq)
		}
		if tc.sq.String() != tc.s {
			t.Errorf("%v.String() = %q, want %q", tc.sq, tc.sq.String(), tc.s)
		}
	}

	for _, s := range []string{"", "i1", "a9", "a0", "e22", "E2"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should fail", s)
		}
	}
	if (Square{8, 0}).String() != "-" {
		t.Error("Off-board square should print as -")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.From != (Square{1, 4}) || m.To != (Square{3, 4}) {
		t.Errorf("ParseMove(e2e4) = %+v", m)
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q", m.String())
	}
	for _, s := range []string{"e2", "e2e9", "z1e4", "e2e4q"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}
