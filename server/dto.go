package server

import (
	"time"

	"github.com/gorilla/schema"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// NewGameDTO holds the optional query parameters of POST /games. Absent
// values fall back to the server configuration.
type NewGameDTO struct {
	Rows                *int     `schema:"rows"`
	Cols                *int     `schema:"cols"`
	ObstacleProbability *float64 `schema:"obstacle_probability"`
	SlowProbability     *float64 `schema:"slow_probability"`
	MoveLimit           *int     `schema:"move_limit"`
	MaxAttempts         *int     `schema:"max_attempts"`
	Seed                *uint64  `schema:"seed"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type MoveDTO struct {
	Direction string `schema:"direction,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type SolveDTO struct {
	Strategy  string `schema:"strategy"`
	Symmetric bool   `schema:"symmetric"`
}

func ParseSolveDTO(src map[string][]string) (SolveDTO, error) {
	var dto SolveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type EditorParamsDTO struct {
	Rows *int `schema:"rows"`
	Cols *int `schema:"cols"`
}

func ParseEditorParamsDTO(src map[string][]string) (EditorParamsDTO, error) {
	var dto EditorParamsDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// PathDTO is a JSON-safe PathResult; Cost is nil when unreachable.
type PathDTO struct {
	Reachable bool                   `json:"reachable"`
	Cost      *float64               `json:"cost,omitempty"`
	Path      []gridgraph.Coordinate `json:"path,omitempty"`
	Overlay   string                 `json:"overlay,omitempty"`
}

func NewPathDTO(res dijkstra.PathResult, g *gridgraph.Grid) PathDTO {
	if !res.Reachable() {
		return PathDTO{}
	}
	cost := res.Cost
	return PathDTO{
		Reachable: true,
		Cost:      &cost,
		Path:      res.Path,
		Overlay:   res.Render(g),
	}
}

type ReportDTO struct {
	Outcome game.Outcome       `json:"outcome"`
	Reason  game.FailureReason `json:"reason,omitempty"`
	Moves   int                `json:"moves"`
	Optimal PathDTO            `json:"optimal"`
}

func NewReportDTO(rep game.Report, g *gridgraph.Grid) ReportDTO {
	return ReportDTO{
		Outcome: rep.Outcome,
		Reason:  rep.Reason,
		Moves:   rep.Moves,
		Optimal: NewPathDTO(rep.Optimal, g),
	}
}

type SessionDTO struct {
	ID        string               `json:"id"`
	Rows      int                  `json:"rows"`
	Cols      int                  `json:"cols"`
	Grid      string               `json:"grid"`
	Board     string               `json:"board"`
	Player    gridgraph.Coordinate `json:"player"`
	Moves     int                  `json:"moves"`
	MoveLimit int                  `json:"move_limit"`
	MovesLeft int                  `json:"moves_left"`
	Outcome   game.Outcome         `json:"outcome"`
	Reason    game.FailureReason   `json:"reason,omitempty"`
	Attempts  int                  `json:"attempts"`
	StartedAt time.Time            `json:"started_at"`
	EndedAt   *time.Time           `json:"ended_at,omitempty"`
	Report    *ReportDTO           `json:"report,omitempty"`
}

// NewSessionDTO snapshots h. Callers hold h.mu.
func NewSessionDTO(h *hostedGame) SessionDTO {
	s := h.session
	dto := SessionDTO{
		ID:        h.id.String(),
		Rows:      s.Grid().Rows(),
		Cols:      s.Grid().Cols(),
		Grid:      s.Grid().String(),
		Board:     s.Render(),
		Player:    s.Player(),
		Moves:     s.Moves(),
		MoveLimit: s.MoveLimit(),
		MovesLeft: s.MovesLeft(),
		Outcome:   s.Outcome(),
		Reason:    s.Reason(),
		Attempts:  s.Attempts(),
		StartedAt: h.startedAt,
		EndedAt:   h.endedAt,
	}
	if rep, err := s.Report(); err == nil {
		r := NewReportDTO(rep, s.Grid())
		dto.Report = &r
	}
	return dto
}

type MoveResultDTO struct {
	game.MoveResult
	Session SessionDTO `json:"session"`
}

// GameReplyDTO answers one game websocket message. Move holds the result of
// the last direction command in the message, if any.
type GameReplyDTO struct {
	SessionDTO
	Move *game.MoveResult `json:"move,omitempty"`
}

type EditorDTO struct {
	Grid    string   `json:"grid"`
	Status  string   `json:"status"`
	Tool    string   `json:"tool"`
	Regions int      `json:"regions"`
	Path    *PathDTO `json:"path,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func NewEditorDTO(e *editor.Editor) EditorDTO {
	return EditorDTO{
		Grid:    e.Grid().String(),
		Status:  e.Status(),
		Tool:    e.Selection().String(),
		Regions: e.Regions(),
	}
}
