package board

// isPositionSafeAfterMove temporarily moves piece from one square to
// another, captures included, and reports whether its own king is then
// out of check. A destination holding a friendly piece is never safe.
//
// The grid is restored to its exact prior state before returning.
func (b *Board) isPositionSafeAfterMove(piece Piece, from, to Square) bool {
	target := b.squares[to.Row][to.Col]
	if target != NoPiece && target.Color() == piece.Color() {
		return false
	}

	origin := b.squares[from.Row][from.Col]
	defer func() {
		b.squares[from.Row][from.Col] = origin
		b.squares[to.Row][to.Col] = target
	}()

	b.squares[from.Row][from.Col] = NoPiece
	b.squares[to.Row][to.Col] = piece

	return !b.IsInCheck(piece.Color())
}

// computeSafeSquares builds the safe-squares map for the side to move.
// Origins are visited row-major, then in direction order, then in sliding
// step order. Origins without any safe destination are left out.
func (b *Board) computeSafeSquares() SafeSquares {
	safe := make(SafeSquares)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := b.squares[row][col]
			if piece == NoPiece || piece.Color() != b.playerColor {
				continue
			}

			from := NewSquare(row, col)
			var dests []Square
			if piece.Type().Sliding() {
				dests = b.slidingSafeSquares(piece, from)
			} else {
				dests = b.steppingSafeSquares(piece, from)
			}

			if len(dests) > 0 {
				safe[from.Key()] = dests
			}
		}
	}

	return safe
}

// steppingSafeSquares handles pawns, knights and kings.
func (b *Board) steppingSafeSquares(piece Piece, from Square) []Square {
	var dests []Square

	for _, d := range piece.directions() {
		to := NewSquare(from.Row+d.DRow, from.Col+d.DCol)
		if !to.Valid() {
			continue
		}

		target := b.squares[to.Row][to.Col]
		if target != NoPiece && target.Color() == piece.Color() {
			continue
		}

		if piece.Type() == Pawn && !b.pawnStepAllowed(piece, from, to, d) {
			continue
		}

		if b.isPositionSafeAfterMove(piece, from, to) {
			dests = append(dests, to)
		}
	}

	return dests
}

// pawnStepAllowed applies the pawn geometry: advances need empty squares,
// diagonals need an enemy piece to capture.
func (b *Board) pawnStepAllowed(piece Piece, from, to Square, d Direction) bool {
	target := b.squares[to.Row][to.Col]

	switch {
	case d.DCol != 0:
		return target != NoPiece && target.Color() != piece.Color()

	case d.DRow == 2 || d.DRow == -2:
		if from.Row != piece.Color().HomeRow() {
			return false
		}
		if target != NoPiece {
			return false
		}
		// Intermediate square, half the offset. Bounded by from and to.
		return b.squares[from.Row+d.DRow/2][from.Col] == NoPiece

	default:
		return target == NoPiece
	}
}

// slidingSafeSquares walks each direction of a bishop, rook or queen. A
// friendly piece stops the walk before its square; an enemy piece stops it
// after its square has been tested.
func (b *Board) slidingSafeSquares(piece Piece, from Square) []Square {
	var dests []Square

	for _, d := range piece.directions() {
		to := NewSquare(from.Row+d.DRow, from.Col+d.DCol)

		for to.Valid() {
			target := b.squares[to.Row][to.Col]
			if target != NoPiece && target.Color() == piece.Color() {
				break
			}

			if b.isPositionSafeAfterMove(piece, from, to) {
				dests = append(dests, to)
			}

			if target != NoPiece {
				break
			}

			to = NewSquare(to.Row+d.DRow, to.Col+d.DCol)
		}
	}

	return dests
}
