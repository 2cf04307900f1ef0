package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/server"
)

const warehouse = `S . . . .
X X . X .
. P P . .
. X . . D
. . . X .
`

// session mirrors the session JSON with plain field types.
type session struct {
	ID        string               `json:"id"`
	Grid      string               `json:"grid"`
	Board     string               `json:"board"`
	Player    gridgraph.Coordinate `json:"player"`
	Moves     int                  `json:"moves"`
	MovesLeft int                  `json:"moves_left"`
	Outcome   string               `json:"outcome"`
	Reason    string               `json:"reason"`
	EndedAt   *string              `json:"ended_at"`
	Report    *report              `json:"report"`
	Move      *moveResult          `json:"move"`
	Error     string               `json:"error"`
}

type moveResult struct {
	Accepted bool                 `json:"accepted"`
	Position gridgraph.Coordinate `json:"position"`
	Moves    int                  `json:"moves"`
}

type path struct {
	Reachable bool                   `json:"reachable"`
	Cost      *float64               `json:"cost"`
	Path      []gridgraph.Coordinate `json:"path"`
	Overlay   string                 `json:"overlay"`
	Error     string                 `json:"error"`
}

type report struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason"`
	Moves   int    `json:"moves"`
	Optimal path   `json:"optimal"`
}

type editorState struct {
	Grid    string `json:"grid"`
	Status  string `json:"status"`
	Tool    string `json:"tool"`
	Regions int    `json:"regions"`
	Path    *path  `json:"path"`
	Error   string `json:"error"`
}

type ServerSuite struct {
	suite.Suite
	srv *server.Server
	ts  *httptest.Server
}

func (s *ServerSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s.srv = server.New(config.Default(), log)
	s.ts = httptest.NewServer(s.srv.Handler())
}

func (s *ServerSuite) TearDownTest() {
	s.ts.Close()
}

func (s *ServerSuite) do(method, uri, body string, out any) int {
	req, err := http.NewRequest(method, s.ts.URL+uri, strings.NewReader(body))
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *ServerSuite) newGame(query string) session {
	var sess session
	code := s.do(http.MethodPost, "/games?"+query, "", &sess)
	s.Require().Equal(http.StatusCreated, code, sess.Error)
	return sess
}

func (s *ServerSuite) dial(uri string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.ts.URL, "http") + uri
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return c
}

// ------------------------------------------------------------------------
// 1. Game sessions over HTTP
// ------------------------------------------------------------------------

func (s *ServerSuite) TestPlayOptimalRoute() {
	sess := s.newGame("rows=6&cols=6&seed=3&move_limit=500")
	s.Equal("unresolved", sess.Outcome)
	s.Equal(1, s.srv.Sessions())
	_, err := uuid.Parse(sess.ID)
	s.Require().NoError(err)

	g, err := gridgraph.Parse(sess.Grid)
	s.Require().NoError(err)
	opt, err := dijkstra.SolveGrid(g)
	s.Require().NoError(err)
	s.Require().True(opt.Reachable(), "served grids are always solvable")

	var last struct {
		Accepted bool    `json:"accepted"`
		Outcome  string  `json:"outcome"`
		Session  session `json:"session"`
	}
	for _, d := range opt.Steps() {
		code := s.do(http.MethodPost, "/games/"+sess.ID+"/moves?direction="+strings.ToLower(d.String()), "", &last)
		s.Require().Equal(http.StatusOK, code)
		s.True(last.Accepted)
	}
	s.Equal("success", last.Outcome)
	s.NotNil(last.Session.EndedAt)

	var rep report
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/games/"+sess.ID+"/report", "", &rep))
	s.Equal("success", rep.Outcome)
	s.Equal(len(opt.Steps()), rep.Moves)
	s.Require().NotNil(rep.Optimal.Cost)
	s.Equal(opt.Cost, *rep.Optimal.Cost)

	var again session
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/games/"+sess.ID+"/moves?direction=n", "", &again))
}

func (s *ServerSuite) TestFetchAndForfeit() {
	sess := s.newGame("seed=11")

	var fetched session
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/games/"+sess.ID, "", &fetched))
	s.Equal(sess.Grid, fetched.Grid)
	s.Equal(30, fetched.MovesLeft)

	var rep report
	s.Equal(http.StatusConflict, s.do(http.MethodGet, "/games/"+sess.ID+"/report", "", &rep))

	var forfeited session
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/games/"+sess.ID+"/forfeit", "", &forfeited))
	s.Equal("failure", forfeited.Outcome)
	s.Equal("forfeited", forfeited.Reason)
	s.Require().NotNil(forfeited.Report)
	s.True(forfeited.Report.Optimal.Reachable)

	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/games/"+sess.ID+"/forfeit", "", nil))
}

func (s *ServerSuite) TestGameErrors() {
	var body map[string]string

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/games/not-a-uuid", "", &body))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/games/"+uuid.NewString(), "", &body))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games?rows=abc", "", &body))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games?rows=1000", "", &body))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games?obstacle_probability=0.8&slow_probability=0.5", "", &body))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games?move_limit=0", "", &body))
	s.Equal(http.StatusServiceUnavailable,
		s.do(http.MethodPost, "/games?rows=3&cols=3&obstacle_probability=1&max_attempts=3", "", &body))
	s.Contains(body["error"], "no solvable grid")

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost,
		"/games?rows=200&cols=200&obstacle_probability=0.45&max_attempts=2000000000", "", &body))
	s.Contains(body["error"], "max_attempts")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games?obstacle_probability=NaN", "", &body))
	s.Zero(s.srv.Sessions())

	sess := s.newGame("seed=5")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games/"+sess.ID+"/moves?direction=up-left", "", &body))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/games/"+sess.ID+"/moves", "", &body))
}

// ------------------------------------------------------------------------
// 2. Solver endpoint
// ------------------------------------------------------------------------

func (s *ServerSuite) TestSolve() {
	var res path
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/solve", warehouse, &res))
	s.True(res.Reachable)
	s.Require().NotNil(res.Cost)
	s.Equal(6.5, *res.Cost)
	s.Len(res.Path, 8)
	s.Contains(res.Overlay, "S * * . .")

	var scan path
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/solve?strategy=scan", warehouse, &scan))
	s.Equal(res.Path, scan.Path)

	var sym path
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/solve?symmetric=true", "D S\n", &sym))
	s.Equal(1.0, *sym.Cost)

	var none path
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/solve", "S X D\n", &none))
	s.False(none.Reachable)
	s.Nil(none.Cost)

	var bad path
	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/solve", ". . D\n", &bad))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/solve", "S . D\n. .\n", &bad))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/solve", "S Q D\n", &bad))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/solve?strategy=astar", warehouse, &bad))
	s.NotEmpty(bad.Error)
}

// ------------------------------------------------------------------------
// 3. WebSocket protocols
// ------------------------------------------------------------------------

func (s *ServerSuite) TestGameWebSocket() {
	sess := s.newGame("seed=21")
	c := s.dial("/games/" + sess.ID + "/connect")
	defer c.Close()

	var state session
	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("g")))
	s.Require().NoError(c.ReadJSON(&state))
	s.Equal(sess.ID, state.ID)
	s.Equal("unresolved", state.Outcome)
	s.Nil(state.Move)

	// The player starts in the top-left corner, so north leaves the grid.
	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("n")))
	state = session{}
	s.Require().NoError(c.ReadJSON(&state))
	s.Require().NotNil(state.Move)
	s.False(state.Move.Accepted)
	s.Equal(gridgraph.At(0, 0), state.Move.Position)
	s.Zero(state.Moves)

	g, err := gridgraph.Parse(sess.Grid)
	s.Require().NoError(err)
	opt, err := dijkstra.SolveGrid(g)
	s.Require().NoError(err)
	first := opt.Steps()[0]
	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte(strings.ToLower(first.String()[:1]))))
	state = session{}
	s.Require().NoError(c.ReadJSON(&state))
	s.Require().NotNil(state.Move)
	s.True(state.Move.Accepted)
	s.Equal(opt.Path[1], state.Move.Position)
	s.Equal(1, state.Moves)

	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("x")))
	state = session{}
	s.Require().NoError(c.ReadJSON(&state))
	s.Contains(state.Error, "unknown command")

	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("q")))
	state = session{}
	s.Require().NoError(c.ReadJSON(&state))
	s.Equal("failure", state.Outcome)
	s.Equal("forfeited", state.Reason)

	s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("n")))
	state = session{}
	s.Require().NoError(c.ReadJSON(&state))
	s.Contains(state.Error, "session is over")
}

func (s *ServerSuite) TestEditorWebSocket() {
	c := s.dial("/editor/connect?rows=3&cols=3")
	defer c.Close()

	send := func(msg string) editorState {
		s.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte(msg)))
		var st editorState
		s.Require().NoError(c.ReadJSON(&st))
		return st
	}

	st := send("paint 0 0")
	s.Equal("Start placed.", st.Status)
	s.Equal("Start", st.Tool)

	st = send("select D\npaint 2 2")
	s.Equal("Destination placed.", st.Status)

	st = send("paint 1 1")
	s.Equal("Destination already placed!", st.Status)
	s.Contains(st.Error, "endpoint already placed")

	st = send("select X\npaint 1 1\nsolve")
	s.Empty(st.Error)
	s.Equal("Path found! Cost: 4", st.Status)
	s.Require().NotNil(st.Path)
	s.Equal(4.0, *st.Path.Cost)
	s.Equal("S . .\n. X .\n. . D\n", st.Grid)

	st = send("clear\nsolve")
	s.Equal("Start and Destination not set!", st.Status)
	s.NotEmpty(st.Error)

	st = send("select S\npaint 0 0\nselect D\npaint 0 2\nselect X\npaint 0 1\npaint 1 1\npaint 2 1")
	s.Equal(2, st.Regions)
	st = send("solve")
	s.Equal("No path found.", st.Status)

	st = send("repair")
	s.Empty(st.Error)
	s.Equal("Removed 1 walls.", st.Status)
	s.Equal(1, st.Regions)

	st = send("paint one 1")
	s.Contains(st.Error, "row must be an int")

	st = send("fly")
	s.Contains(st.Error, "unknown command")
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestCorsPreflight(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"http://example.com"}
	ts := httptest.NewServer(server.New(cfg, log).Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/solve", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "http://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServerKeepsPackageLoggers(t *testing.T) {
	gameLog, editorLog := game.Log, editor.Log

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	ts := httptest.NewServer(server.New(config.Default(), log).Handler())
	defer ts.Close()

	require.Same(t, gameLog, game.Log)
	require.Same(t, editorLog, editor.Log)

	resp, err := http.Post(ts.URL+"/games?seed=4", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, hook.Entries, "server log receives request entries")
}
