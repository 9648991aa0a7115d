package board

// Perft counts the leaf nodes of the move tree to the given depth by
// replaying every safe move. Castling, en passant and promotion are not
// modelled, so counts only match standard chess while none can occur.
func Perft(b *Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := b.Moves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next, err := b.Play(m)
		if err != nil {
			// Moves only lists playable moves.
			panic(err)
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}
