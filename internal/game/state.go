package game

import (
	"strings"
	"sync"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// Session is one game. Its board is only touched while mu is held, so
// concurrent requests never observe the grid mid-simulation.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	board     *board.Board
	updatedAt time.Time
	deleted   bool
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	ID          string
	FEN         string
	View        board.View
	PlayerColor board.Color
	InCheck     bool
	SafeSquares board.SafeSquares
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newSession(id string, b *board.Board, created, updated time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: created,
		board:     b,
		updatedAt: updated,
	}
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	b := s.board
	return Snapshot{
		ID:          s.ID,
		FEN:         b.FEN(),
		View:        b.View(),
		PlayerColor: b.PlayerColor(),
		InCheck:     b.IsInCheck(b.PlayerColor()),
		SafeSquares: b.SafeSquares(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.updatedAt,
	}
}

// Select returns the safe destinations of the piece on sq. Uppercase
// symbols are white pieces, lowercase black.
func (s *Session) Select(sq board.Square) ([]board.Square, error) {
	if !sq.Valid() {
		return nil, board.ErrInvalidSquare
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := s.board.View()[sq.Row][sq.Col]
	if symbol == "" {
		return nil, ErrEmptySquare
	}
	if isWrongPieceSelected(symbol, s.board.PlayerColor()) {
		return nil, ErrWrongColor
	}

	dests := s.board.SafeSquaresFrom(sq)
	if dests == nil {
		dests = []board.Square{}
	}
	return dests, nil
}

func isWrongPieceSelected(symbol string, side board.Color) bool {
	white := symbol == strings.ToUpper(symbol)
	return white && side == board.Black || !white && side == board.White
}

// markDeleted waits for any move in progress, then stops further moves
// from being applied or saved.
func (s *Session) markDeleted() {
	s.mu.Lock()
	s.deleted = true
	s.mu.Unlock()
}

// play applies m and hands the new state to save while still holding the
// lock, so stored states follow the order moves were made. A failed save
// leaves the session unchanged.
func (s *Session) play(m board.Move, now time.Time, save func(Snapshot) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A move that raced a delete must not write the game back.
	if s.deleted {
		return Snapshot{}, ErrGameNotFound
	}

	next, err := s.board.Play(m)
	if err != nil {
		return Snapshot{}, err
	}

	prev, prevUpdated := s.board, s.updatedAt
	s.board = next
	s.updatedAt = now

	snap := s.snapshotLocked()
	if err := save(snap); err != nil {
		s.board = prev
		s.updatedAt = prevUpdated
		return Snapshot{}, err
	}
	return snap, nil
}
