package board

import (
	"fmt"
	"strings"
)

// SafeSquares maps an origin key (see Square.Key) to the ordered list of
// destinations the piece on that square may move to without leaving its
// own king in check.
type SafeSquares map[string][]Square

// Clone returns a deep copy of the map.
func (s SafeSquares) Clone() SafeSquares {
	out := make(SafeSquares, len(s))
	for k, v := range s {
		out[k] = append([]Square(nil), v...)
	}
	return out
}

// View is the exported display grid: each cell holds a piece symbol, or
// the empty string for an empty square. It is a value, so callers never
// share the engine's grid.
type View [Size][Size]string

// Board is an 8x8 grid of pieces plus the safe-squares map of the side to
// move. The map is computed once, when the board is built.
//
// A Board is not safe for concurrent use: safe-square computation briefly
// edits the grid. Confine each Board to one owner or serialize access.
type Board struct {
	squares     [Size][Size]Piece
	playerColor Color
	safeSquares SafeSquares
}

// startLayout is the standard initial placement, row 0 first.
var startLayout = [Size][Size]Piece{
	{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook},
	{WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn},
	{},
	{},
	{},
	{},
	{BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn},
	{BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook},
}

// NewBoard creates the standard starting position with White to move.
func NewBoard() *Board {
	return newBoard(startLayout, White)
}

// newBoard takes ownership of grid and computes the safe squares for side.
func newBoard(grid [Size][Size]Piece, side Color) *Board {
	b := &Board{
		squares:     grid,
		playerColor: side,
	}
	b.safeSquares = b.computeSafeSquares()
	return b
}

// PlayerColor returns the side whose safe squares were computed.
func (b *Board) PlayerColor() Color {
	return b.playerColor
}

// PieceAt returns the piece at sq, or NoPiece if empty or off the board.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

// View returns a copy of the grid mapped to export symbols.
func (b *Board) View() View {
	var v View
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			v[row][col] = b.squares[row][col].Symbol()
		}
	}
	return v
}

// SafeSquares returns a copy of the safe-squares map.
func (b *Board) SafeSquares() SafeSquares {
	return b.safeSquares.Clone()
}

// SafeSquaresFrom returns the safe destinations of the piece on sq, or nil.
func (b *Board) SafeSquaresFrom(sq Square) []Square {
	dests := b.safeSquares[sq.Key()]
	if len(dests) == 0 {
		return nil
	}
	return append([]Square(nil), dests...)
}

// IsSafe reports whether to is listed as a safe destination for from.
func (b *Board) IsSafe(from, to Square) bool {
	for _, sq := range b.safeSquares[from.Key()] {
		if sq == to {
			return true
		}
	}
	return false
}

// String returns a visual representation of the board, row 7 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := Size - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < Size; col++ {
			piece := b.squares[row][col]
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.Symbol() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.playerColor)
	fmt.Fprintf(&sb, "In check: %v\n", b.IsInCheck(b.playerColor))
	return sb.String()
}
