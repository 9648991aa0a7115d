// Package console implements a line-oriented text protocol for inspecting
// and playing positions.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hailam/chesscore/internal/board"
)

// Console reads commands and writes replies to out.
type Console struct {
	board *board.Board
	out   io.Writer
}

// New creates a console on the standard starting position.
func New(out io.Writer) *Console {
	return &Console{
		board: board.NewBoard(),
		out:   out,
	}
}

// Board returns the current position.
func (c *Console) Board() *board.Board {
	return c.board
}

// Run processes commands from in until "quit" or end of input.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "d":
			fmt.Fprint(c.out, c.board.String())
		case "fen":
			fmt.Fprintln(c.out, c.board.FEN())
		case "position":
			c.handlePosition(args)
		case "moves":
			c.handleMoves()
		case "select":
			c.handleSelect(args)
		case "move":
			c.handleMove(args)
		case "check":
			c.handleCheck(args)
		case "perft":
			c.handlePerft(args)
		case "quit":
			return nil
		default:
			c.errorf("unknown command: %s", cmd)
		}
	}

	return scanner.Err()
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "error: "+format+"\n", args...)
}

// handlePosition sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (c *Console) handlePosition(args []string) {
	if len(args) == 0 {
		c.errorf("position needs startpos or fen")
		return
	}

	movesAt := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesAt = i
			break
		}
	}

	var b *board.Board
	switch args[0] {
	case "startpos":
		b = board.NewBoard()
	case "fen":
		var err error
		b, err = board.ParseFEN(strings.Join(args[1:movesAt], " "))
		if err != nil {
			c.errorf("%v", err)
			return
		}
	default:
		c.errorf("position needs startpos or fen")
		return
	}

	if movesAt < len(args) {
		for _, s := range args[movesAt+1:] {
			m, err := board.ParseMove(s)
			if err != nil {
				c.errorf("%v", err)
				return
			}
			next, err := b.Play(m)
			if err != nil {
				c.errorf("%v", err)
				return
			}
			b = next
		}
	}

	c.board = b
}

// handleMoves prints every origin with its safe destinations, one per line
// in row-major order.
func (c *Console) handleMoves() {
	safe := c.board.SafeSquares()
	keys := maps.Keys(safe)
	slices.Sort(keys)

	for _, key := range keys {
		from, err := board.ParseKey(key)
		if err != nil {
			c.errorf("%v", err)
			continue
		}
		fmt.Fprintf(c.out, "%s: %s\n", from, joinSquares(safe[key]))
	}
	if len(keys) == 0 {
		fmt.Fprintln(c.out, "no moves")
	}
}

func (c *Console) handleSelect(args []string) {
	if len(args) != 1 {
		c.errorf("usage: select <square>")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		c.errorf("%v", err)
		return
	}
	piece := c.board.PieceAt(sq)
	if piece == board.NoPiece {
		c.errorf("no piece on %s", sq)
		return
	}
	if piece.Color() != c.board.PlayerColor() {
		c.errorf("%s to move", c.board.PlayerColor())
		return
	}
	fmt.Fprintf(c.out, "%s: %s\n", sq, joinSquares(c.board.SafeSquaresFrom(sq)))
}

// handleMove accepts "move e2e4" or "move e2 e4".
func (c *Console) handleMove(args []string) {
	m, err := board.ParseMove(strings.Join(args, ""))
	if err != nil {
		c.errorf("%v", err)
		return
	}
	next, err := c.board.Play(m)
	if err != nil {
		c.errorf("%v", err)
		return
	}
	c.board = next
	fmt.Fprintf(c.out, "%s played, %s to move\n", m, next.PlayerColor())
}

func (c *Console) handleCheck(args []string) {
	color := c.board.PlayerColor()
	if len(args) > 0 {
		var err error
		if color, err = board.ParseColor(args[0]); err != nil {
			c.errorf("%v", err)
			return
		}
	}
	fmt.Fprintf(c.out, "%s in check: %v\n", color, c.board.IsInCheck(color))
}

// handlePerft counts move-tree leaves from the current position.
func (c *Console) handlePerft(args []string) {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			c.errorf("invalid depth: %s", args[0])
			return
		}
		depth = d
	}

	start := time.Now()
	nodes := board.Perft(c.board, depth)
	elapsed := time.Since(start)

	fmt.Fprintf(c.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(c.out, "Time: %v\n", elapsed)
}

func joinSquares(squares []board.Square) string {
	if len(squares) == 0 {
		return "-"
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}
