// Package server exposes game sessions over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

const maxJSONBodyBytes int64 = 1 << 16

// Server wires the HTTP layer to the game manager.
type Server struct {
	mgr *game.Manager
	srv *http.Server
}

// NewServer creates a Server for mgr that will listen on addr.
func NewServer(mgr *game.Manager, addr string) *Server {
	s := &Server{mgr: mgr}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Listen serves until Close is called. It returns at once if Close already
// ran.
func (s *Server) Listen() error {
	log.Printf("HTTP listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/new_game", s.withJSON(http.MethodPost, s.handleNewGame))
	mux.HandleFunc("/api/state", s.withJSON(http.MethodPost, s.handleState))
	mux.HandleFunc("/api/select", s.withJSON(http.MethodPost, s.handleSelect))
	mux.HandleFunc("/api/move", s.withJSON(http.MethodPost, s.handleMove))
	mux.HandleFunc("/api/delete_game", s.withJSON(http.MethodPost, s.handleDeleteGame))
	mux.HandleFunc("/api/games", s.withJSON(http.MethodGet, s.handleGames))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(method string, h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Method != method {
			w.Header().Set("Allow", method)
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

// decodeJSON reads the request body into v and reports failures to the
// client. It returns false if the handler should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// writeGameError maps game and board errors onto status codes.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, board.ErrIllegalMove),
		errors.Is(err, board.ErrInvalidSquare),
		errors.Is(err, game.ErrEmptySquare),
		errors.Is(err, game.ErrWrongColor):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("api: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ---- API ----

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.mgr.NewGame()
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, newGameResponse{GameID: snap.ID, State: toStateDTO(snap)})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, err := s.mgr.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateResponse{State: toStateDTO(snap)})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sq, err := board.ParseSquare(req.Square)
	if err != nil {
		writeGameError(w, err)
		return
	}
	targets, err := s.mgr.Select(req.GameID, sq)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, selectResponse{Square: sq.String(), Targets: squareNames(targets)})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	from, err := board.ParseSquare(req.From)
	if err != nil {
		writeGameError(w, err)
		return
	}
	to, err := board.ParseSquare(req.To)
	if err != nil {
		writeGameError(w, err)
		return
	}
	snap, err := s.mgr.Move(req.GameID, from, to)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, stateResponse{State: toStateDTO(snap)})
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.mgr.Delete(req.GameID); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	ids, err := s.mgr.List()
	if err != nil {
		writeGameError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, gamesResponse{Games: ids})
}
