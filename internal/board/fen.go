package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN builds a Board from the piece placement and side-to-move fields
// of a FEN string. The side defaults to White; castling, en passant and the
// move counters are ignored. Safe squares are computed as in NewBoard.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	grid, err := parsePiecePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	side := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			side = White
		case "b":
			side = Black
		default:
			return nil, fmt.Errorf("%w: invalid side to move: %s", ErrInvalidFEN, parts[1])
		}
	}

	return newBoard(grid, side), nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(placement string) ([Size][Size]Piece, error) {
	var grid [Size][Size]Piece

	ranks := strings.Split(placement, "/")
	if len(ranks) != Size {
		return grid, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		row := Size - 1 - i // FEN starts from rank 8
		col := 0

		// Bytes, not runes: a multi-byte character must not alias a piece
		// letter through its low byte.
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if col >= Size {
				return grid, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, row+1)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return grid, fmt.Errorf("%w: invalid piece character: %q", ErrInvalidFEN, c)
			}
			grid[row][col] = piece
			col++
		}

		if col != Size {
			return grid, fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidFEN, row+1, col)
		}
	}

	return grid, nil
}

// FEN returns the FEN representation of the board. Castling and en passant
// are not modelled, so those fields are always "-".
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := Size - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < Size; col++ {
			piece := b.squares[row][col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.playerColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}
