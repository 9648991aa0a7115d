package board

import "fmt"

// Move is an origin and destination pair.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move in coordinate notation (e.g., "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move: %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return NewMove(from, to), nil
}

// Moves flattens the safe-squares map into a move list, origins in
// row-major order.
func (b *Board) Moves() []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			from := NewSquare(row, col)
			for _, to := range b.safeSquares[from.Key()] {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

// Play applies m if it is listed in the safe-squares map and returns the
// resulting board, with the other side to move and its safe squares
// computed. The receiver is not modified. Castling, en passant and
// promotion are not modelled.
func (b *Board) Play(m Move) (*Board, error) {
	if !m.From.Valid() || !m.To.Valid() || !b.IsSafe(m.From, m.To) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	grid := b.squares
	grid[m.To.Row][m.To.Col] = grid[m.From.Row][m.From.Col]
	grid[m.From.Row][m.From.Col] = NoPiece

	return newBoard(grid, b.playerColor.Other()), nil
}
