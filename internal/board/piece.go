package board

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// Forward returns the row delta of a single pawn advance for this color.
// White advances toward increasing row index, Black toward decreasing.
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row a pawn of this color starts on.
func (c Color) HomeRow() int {
	if c == White {
		return 1
	}
	return Size - 2
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// ParseColor accepts "white"/"black" in lower, title or upper case, or the
// FEN letters "w"/"b".
func ParseColor(s string) (Color, error) {
	switch s {
	case "w", "white", "White", "WHITE":
		return White, nil
	case "b", "black", "Black", "BLACK":
		return Black, nil
	}
	return NoColor, fmt.Errorf("invalid color: %q", s)
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Sliding reports whether the piece repeats its directions until blocked.
func (pt PieceType) Sliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// Direction is a relative (row, column) step.
type Direction struct {
	DRow int
	DCol int
}

// Direction tables. Sliding pieces reuse the same unit vectors and the
// engine repeats them.
var (
	kingDirections = []Direction{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	rookDirections   = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirections = []Direction{
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	}
	pawnDirections = [2][]Direction{
		White: pawnDirectionsFor(White),
		Black: pawnDirectionsFor(Black),
	}
)

// pawnDirectionsFor lists a pawn's single advance, double advance and the
// two capture diagonals, all pointing toward c's forward direction.
func pawnDirectionsFor(c Color) []Direction {
	f := c.Forward()
	return []Direction{{f, 0}, {2 * f, 0}, {f, -1}, {f, 1}}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: 1 + pieceType + color*6, so the zero value is NoPiece and an
// empty grid needs no initialisation.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = 1 + Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = 1 + Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = 1 + Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = 1 + Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = 1 + Piece(King) + Piece(White)*6
	BlackPawn   Piece = 1 + Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = 1 + Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = 1 + Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = 1 + Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = 1 + Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = 1 + Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return 1 + Piece(pt) + Piece(c)*6
}

func (p Piece) valid() bool {
	return p > NoPiece && p <= BlackKing
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if !p.valid() {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if !p.valid() {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// Symbol returns the export symbol: the FEN character, uppercase for white
// and lowercase for black. Empty for NoPiece.
func (p Piece) Symbol() string {
	if !p.valid() {
		return ""
	}
	const chars = "PNBRQKpnbrqk"
	return string(chars[p-1])
}

// String returns the symbol, or a blank for NoPiece.
func (p Piece) String() string {
	if !p.valid() {
		return " "
	}
	return p.Symbol()
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// directions returns the shared direction table for the piece. Callers
// must not modify it.
func (p Piece) directions() []Direction {
	switch p.Type() {
	case Pawn:
		return pawnDirections[p.Color()]
	case Knight:
		return knightDirections
	case Bishop:
		return bishopDirections
	case Rook:
		return rookDirections
	case Queen, King:
		return kingDirections
	default:
		return nil
	}
}

// Directions returns a copy of the piece's ordered movement directions.
func (p Piece) Directions() []Direction {
	dirs := p.directions()
	if dirs == nil {
		return nil
	}
	return append([]Direction(nil), dirs...)
}
