// Package server exposes game sessions, the solver and the level editor
// over HTTP and WebSocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// MaxDimension bounds requested grid sizes.
const MaxDimension = 200

// MaxAttempts bounds the max_attempts a client may request.
const MaxAttempts = 1000

// maxBodyBytes bounds POST /solve bodies.
const maxBodyBytes = 1 << 20

var (
	errNotFound   = errors.New("server: session not found")
	errBadRequest = errors.New("server: bad request")
	errTooLarge   = errors.New("server: request exceeds limit")
	errBadCommand = errors.New("server: unknown command")
	errBadArgs    = errors.New("server: invalid number of arguments")
)

type Server struct {
	log      *logrus.Logger
	cfg      *config.Config
	router   *way.Router
	games    *registry
	upgrader websocket.Upgrader

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New builds a server for cfg. Sessions and editors it creates log to log;
// the package loggers of game and editor are left alone.
func New(cfg *config.Config, log *logrus.Logger) *Server {
	s := &Server{
		log:   log,
		cfg:   cfg,
		games: newRegistry(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		rnd: createRand(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", "/games", s.handleNewGame)
	s.router.HandleFunc("GET", "/games/:id", s.handleFetchGame)
	s.router.HandleFunc("POST", "/games/:id/moves", s.handleMove)
	s.router.HandleFunc("POST", "/games/:id/forfeit", s.handleForfeit)
	s.router.HandleFunc("GET", "/games/:id/report", s.handleReport)
	s.router.HandleFunc("GET", "/games/:id/connect", s.handleGameConnect)
	s.router.HandleFunc("POST", "/solve", s.handleSolve)
	s.router.HandleFunc("GET", "/editor/connect", s.handleEditorConnect)
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.sendError(w, http.StatusNotFound, errors.New("not found :("))
	})
}

// Handler returns the routed handler wrapped in logging and CORS.
func (s *Server) Handler() http.Handler {
	return Wrap(s.router, Logging(s.log), Cors(s.cfg.Server.AllowedOrigins))
}

// Sessions returns the number of hosted sessions.
func (s *Server) Sessions() int {
	return s.games.len()
}

// childRand derives an independent generator for one session.
func (s *Server) childRand() *rand.Rand {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return rand.New(rand.NewPCG(s.rnd.Uint64(), s.rnd.Uint64()))
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.log.WithError(err).Error("failed to marshal json")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		s.log.WithError(err).Error("failed to send data")
	}
}

func (s *Server) sendError(w http.ResponseWriter, status int, e error) {
	s.sendJSON(w, status, map[string]string{"error": e.Error()})
}

// fail maps err to a status code and replies.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	s.sendError(w, status, err)
}

func statusFor(err error) int {
	var multi schema.MultiError
	switch {
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGenerationFailed),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, game.ErrSessionOver), errors.Is(err, game.ErrSessionActive):
		return http.StatusConflict
	case errors.Is(err, dijkstra.ErrMissingEndpoint):
		return http.StatusUnprocessableEntity
	case errors.As(err, &multi),
		errors.Is(err, errBadRequest),
		errors.Is(err, errTooLarge),
		errors.Is(err, game.ErrBadDirection),
		errors.Is(err, game.ErrBadMoveLimit),
		errors.Is(err, game.ErrBadAttempts),
		errors.Is(err, gridgraph.ErrUnknownDirection),
		errors.Is(err, gridgraph.ErrBadProbability),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrUnknownSymbol),
		errors.Is(err, gridgraph.ErrDuplicateEndpoint),
		errors.Is(err, gridgraph.ErrOutOfBounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
