// Package board implements an 8x8 mailbox chess position that computes
// check status and the safe destination squares of the side to move.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Square is a (row, column) coordinate. Row 0 is White's back rank and
// column 0 is the a-file. Validity is a predicate, see Valid.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Valid returns true if the square lies on the board.
func (sq Square) Valid() bool {
	return inBounds(sq.Row, sq.Col)
}

// Key returns the safe-squares map key for the square, "row-col".
func (sq Square) Key() string {
	return strconv.Itoa(sq.Row) + "-" + strconv.Itoa(sq.Col)
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (Square, error) {
	r, c, ok := strings.Cut(key, "-")
	if !ok {
		return Square{}, fmt.Errorf("%w: key %q", ErrInvalidSquare, key)
	}
	row, err := strconv.Atoi(r)
	if err != nil {
		return Square{}, fmt.Errorf("%w: key %q", ErrInvalidSquare, key)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return Square{}, fmt.Errorf("%w: key %q", ErrInvalidSquare, key)
	}
	sq := NewSquare(row, col)
	if !sq.Valid() || sq.Key() != key {
		return Square{}, fmt.Errorf("%w: key %q", ErrInvalidSquare, key)
	}
	return sq, nil
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '1'+sq.Row)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %s", ErrInvalidSquare, s)
	}

	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'

	if !inBounds(row, col) {
		return Square{}, fmt.Errorf("%w: %s", ErrInvalidSquare, s)
	}

	return NewSquare(row, col), nil
}

// IsSquareDark reports whether (row, col) is a dark square: both
// coordinates even or both odd.
func IsSquareDark(row, col int) bool {
	return row%2 == 0 && col%2 == 0 || row%2 == 1 && col%2 == 1
}
