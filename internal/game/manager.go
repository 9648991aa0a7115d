// Package game keeps track of game sessions, each owning one board, and
// persists them through an optional Store.
package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
)

// Store persists sessions. *storage.Storage satisfies it.
type Store interface {
	SaveSession(rec storage.SessionRecord) error
	LoadSession(id string) (storage.SessionRecord, error)
	DeleteSession(id string) error
}

// lister is implemented by stores that can enumerate their sessions.
type lister interface {
	ListSessions() ([]storage.SessionRecord, error)
}

// Manager owns the live game sessions and writes every change through to
// an optional Store. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store    Store
	startFEN string
	now      func() time.Time
}

// NewManager creates a manager. store may be nil for a purely in-memory
// manager. startFEN selects the position new games start from; empty means
// the standard layout.
func NewManager(store Store, startFEN string) (*Manager, error) {
	if startFEN != "" {
		if _, err := board.ParseFEN(startFEN); err != nil {
			return nil, fmt.Errorf("start position: %w", err)
		}
	}
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		startFEN: startFEN,
		now:      time.Now,
	}, nil
}

func (m *Manager) newBoard() *board.Board {
	if m.startFEN == "" {
		return board.NewBoard()
	}
	// Validated in NewManager.
	b, _ := board.ParseFEN(m.startFEN)
	return b
}

// NewGame starts a session from the configured start position.
func (m *Manager) NewGame() (Snapshot, error) {
	now := m.now()
	s := newSession(uuid.NewString(), m.newBoard(), now, now)
	snap := s.Snapshot()

	if err := m.persist(snap); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	log.Printf("game %s: new game, %s to move", s.ID, snap.PlayerColor)
	return snap, nil
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// Select returns the safe destinations of the piece on sq.
func (m *Manager) Select(id string, sq board.Square) ([]board.Square, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	return s.Select(sq)
}

// Move plays from->to if it is a safe move for the side to move, then
// hands the turn to the other side.
func (m *Manager) Move(id string, from, to board.Square) (Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return Snapshot{}, err
	}

	mv := board.NewMove(from, to)
	snap, err := s.play(mv, m.now(), m.persist)
	if err != nil {
		return Snapshot{}, err
	}

	log.Printf("game %s: %s, %s to move", id, mv, snap.PlayerColor)
	return snap, nil
}

// Delete forgets a session and removes it from the store. A move still
// running on the session finishes first; later moves fail with
// ErrGameNotFound. With a store, deleting an unknown id succeeds.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
		s.markDeleted()
	}

	if m.store == nil {
		if !ok {
			return ErrGameNotFound
		}
		return nil
	}
	return m.store.DeleteSession(id)
}

// List returns the ids of all games held in memory or in the store,
// sorted.
func (m *Manager) List() ([]string, error) {
	ids := make(map[string]struct{})
	m.mu.RLock()
	for id := range m.sessions {
		ids[id] = struct{}{}
	}
	m.mu.RUnlock()

	if l, ok := m.store.(lister); ok {
		recs, err := l.ListSessions()
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		for _, rec := range recs {
			ids[rec.ID] = struct{}{}
		}
	}

	out := maps.Keys(ids)
	slices.Sort(out)
	return out, nil
}

// session looks a session up in memory, then in the store.
func (m *Manager) session(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	if m.store == nil {
		return nil, ErrGameNotFound
	}

	// Loads hold the write lock so they cannot interleave with Delete.
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		return existing, nil
	}

	rec, err := m.store.LoadSession(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	b, err := board.ParseFEN(rec.FEN)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	s = newSession(rec.ID, b, rec.CreatedAt, rec.UpdatedAt)
	m.sessions[id] = s
	return s, nil
}

func (m *Manager) persist(snap Snapshot) error {
	if m.store == nil {
		return nil
	}
	rec := storage.SessionRecord{
		ID:        snap.ID,
		FEN:       snap.FEN,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
	if err := m.store.SaveSession(rec); err != nil {
		return fmt.Errorf("save game %s: %w", snap.ID, err)
	}
	return nil
}
