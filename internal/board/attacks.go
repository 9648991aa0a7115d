package board

// IsInCheck reports whether any piece not of color c attacks a king of
// color c. Stepping pieces only look one step away and a pawn only attacks
// along its two diagonals. Sliding pieces walk each direction until the
// first occupied square.
//
// The whole board is scanned on every call; nothing is cached.
func (b *Board) IsInCheck(c Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := b.squares[row][col]
			if piece == NoPiece || piece.Color() == c {
				continue
			}
			if b.attacksKing(piece, row, col, c) {
				return true
			}
		}
	}
	return false
}

// attacksKing reports whether piece, standing on (row, col), attacks a king
// of color c.
func (b *Board) attacksKing(piece Piece, row, col int, c Color) bool {
	sliding := piece.Type().Sliding()

	for _, d := range piece.directions() {
		r, f := row+d.DRow, col+d.DCol
		if !inBounds(r, f) {
			continue
		}

		if !sliding {
			// Pawns only attack diagonally.
			if piece.Type() == Pawn && d.DCol == 0 {
				continue
			}
			if b.isKing(r, f, c) {
				return true
			}
			continue
		}

		for inBounds(r, f) {
			if b.isKing(r, f, c) {
				return true
			}
			if b.squares[r][f] != NoPiece {
				break
			}
			r += d.DRow
			f += d.DCol
		}
	}
	return false
}

// isKing reports whether (row, col) holds a king of color c. The caller
// has already checked bounds.
func (b *Board) isKing(row, col int, c Color) bool {
	target := b.squares[row][col]
	return target.Type() == King && target.Color() == c
}
