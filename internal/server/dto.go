package server

import (
	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

type gameRequest struct {
	GameID string `json:"game_id"`
}

type selectRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"` // algebraic, e.g. "e2"
}

type moveRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// StateDTO is the board state sent to clients. View entries are null on
// empty squares. SafeSquares maps "row-col" origin keys to algebraic
// destinations.
type StateDTO struct {
	GameID      string                          `json:"game_id"`
	FEN         string                          `json:"fen"`
	View        [board.Size][board.Size]*string `json:"view"`
	PlayerColor string                          `json:"player_color"`
	InCheck     bool                            `json:"in_check"`
	SafeSquares map[string][]string             `json:"safe_squares"`
	Dark        [board.Size][board.Size]bool    `json:"dark"`
}

type newGameResponse struct {
	GameID string   `json:"game_id"`
	State  StateDTO `json:"state"`
}

type stateResponse struct {
	State StateDTO `json:"state"`
}

type selectResponse struct {
	Square  string   `json:"square"`
	Targets []string `json:"targets"`
}

type gamesResponse struct {
	Games []string `json:"games"`
}

func toStateDTO(snap game.Snapshot) StateDTO {
	dto := StateDTO{
		GameID:      snap.ID,
		FEN:         snap.FEN,
		PlayerColor: snap.PlayerColor.String(),
		InCheck:     snap.InCheck,
		SafeSquares: make(map[string][]string, len(snap.SafeSquares)),
	}
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			if s := snap.View[row][col]; s != "" {
				dto.View[row][col] = &s
			}
			dto.Dark[row][col] = board.IsSquareDark(row, col)
		}
	}
	for key, dests := range snap.SafeSquares {
		dto.SafeSquares[key] = squareNames(dests)
	}
	return dto
}

func squareNames(squares []board.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}
