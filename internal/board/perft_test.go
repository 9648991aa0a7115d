package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected int64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		if testing.Short() && tc.depth > 2 {
			t.Skip("skipping deep perft in short mode")
		}
		if got := Perft(NewBoard(), tc.depth); got != tc.expected {
			t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// referenceMoves returns the sorted from-to pairs dragontoothmg considers
// legal. Promotions collapse to a single pair.
func referenceMoves(fen string) []string {
	db := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	var out []string
	for _, m := range db.GenerateLegalMoves() {
		from := NewSquare(int(m.From())/8, int(m.From())%8)
		to := NewSquare(int(m.To())/8, int(m.To())%8)
		s := NewMove(from, to).String()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func ourMoves(b *Board) []string {
	var out []string
	for _, m := range b.Moves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestSafeSquaresMatchReference cross-checks safe squares against an
// independent bitboard move generator. Positions carry no castling rights
// or en passant square, which this board does not model.
func TestSafeSquaresMatchReference(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/3PP3/r3K2R w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			got := ourMoves(b)
			want := referenceMoves(fen)
			if len(got) != len(want) {
				t.Fatalf("got %d moves %v, want %d moves %v", len(got), got, len(want), want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("move lists differ at %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}
