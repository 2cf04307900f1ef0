package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// gameCommandNargs lists the game protocol: a direction moves, "g" only
// fetches state, "q" forfeits.
var gameCommandNargs = map[string]int{
	"n": 0,
	"s": 0,
	"e": 0,
	"w": 0,
	"g": 0,
	"q": 0,
}

var editorCommandNargs = map[string]int{
	"select": 1,
	"paint":  2,
	"erase":  2,
	"clear":  0,
	"solve":  0,
	"repair": 0,
	"g":      0,
}

// splitCommand checks the verb and argument count of one protocol line.
func splitCommand(line string, nargs map[string]int) ([]string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty line", errBadCommand)
	}
	want, ok := nargs[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errBadCommand, parts[0])
	}
	if want != len(parts)-1 {
		return nil, fmt.Errorf("%w: %q takes %d", errBadArgs, parts[0], want)
	}
	return parts, nil
}

func parseRowCol(args []string) (gridgraph.Coordinate, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("%w: row must be an int", errBadCommand)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("%w: column must be an int", errBadCommand)
	}
	return gridgraph.At(row, col), nil
}

// applyGameCommand runs one line against h and returns the move result for
// direction commands. Callers hold h.mu.
func applyGameCommand(h *hostedGame, line string) (*game.MoveResult, error) {
	parts, err := splitCommand(line, gameCommandNargs)
	if err != nil {
		return nil, err
	}
	switch parts[0] {
	case "g":
		return nil, nil
	case "q":
		return nil, h.session.Forfeit()
	default:
		d, err := gridgraph.ParseDirection(parts[0])
		if err != nil {
			return nil, err
		}
		mr, err := h.session.ProcessMove(d)
		if err != nil {
			return nil, err
		}
		return &mr, nil
	}
}

func (s *Server) handleGameConnect(w http.ResponseWriter, r *http.Request) {
	h, ok := s.lookup(w, r)
	if !ok {
		return
	}

	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	log := s.log.WithField("id", h.id.String())
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		text := strings.TrimSpace(string(message))
		log.Debugf("\t> %s", text)

		h.mu.Lock()
		var (
			move   *game.MoveResult
			cmdErr error
		)
		for _, line := range strings.Split(text, "\n") {
			var mr *game.MoveResult
			if mr, cmdErr = applyGameCommand(h, line); cmdErr != nil {
				break
			}
			if mr != nil {
				move = mr
			}
			if h.session.Over() {
				break
			}
		}
		h.markEnded()
		reply := any(GameReplyDTO{SessionDTO: NewSessionDTO(h), Move: move})
		h.mu.Unlock()

		if cmdErr != nil {
			log.WithError(cmdErr).Debug("unable to process command")
			reply = map[string]string{"error": cmdErr.Error()}
		}
		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("unable to write json")
			return
		}
		log.Debug("\t< <session data>")
	}
}

// applyEditorCommand runs one line against e and returns the reply.
func applyEditorCommand(e *editor.Editor, line string) EditorDTO {
	parts, err := splitCommand(line, editorCommandNargs)
	if err != nil {
		dto := NewEditorDTO(e)
		dto.Error = err.Error()
		return dto
	}

	var path *PathDTO
	switch parts[0] {
	case "select":
		var tool editor.Tool
		if tool, err = editor.ParseTool(parts[1]); err == nil {
			e.Select(tool)
		}
	case "paint", "erase":
		var c gridgraph.Coordinate
		if c, err = parseRowCol(parts[1:]); err != nil {
			break
		}
		if parts[0] == "paint" {
			err = e.Paint(c)
		} else {
			err = e.Erase(c)
		}
	case "clear":
		e.Clear()
	case "repair":
		_, err = e.Repair()
	case "solve":
		res, solveErr := e.Solve()
		err = solveErr
		if err == nil {
			p := NewPathDTO(res, e.Grid())
			path = &p
		}
	}

	dto := NewEditorDTO(e)
	dto.Path = path
	if err != nil {
		dto.Error = err.Error()
	}
	return dto
}

func (s *Server) handleEditorConnect(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseEditorParamsDTO(r.URL.Query())
	if err != nil {
		s.fail(w, err)
		return
	}
	rows, cols := s.cfg.Game.Rows, s.cfg.Game.Cols
	if dto.Rows != nil {
		rows = *dto.Rows
	}
	if dto.Cols != nil {
		cols = *dto.Cols
	}
	if rows > MaxDimension || cols > MaxDimension {
		s.fail(w, fmt.Errorf("%w: %dx%d", errTooLarge, rows, cols))
		return
	}
	log := s.log.WithFields(logrus.Fields{"rows": rows, "cols": cols})
	e, err := editor.NewBlank(rows, cols,
		editor.WithPathOptions(s.cfg.PathOptions()...),
		editor.WithLogger(log),
	)
	if err != nil {
		s.fail(w, err)
		return
	}

	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	log.Debug("editor connected")
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		text := strings.TrimSpace(string(message))
		log.Debugf("\t> %s", text)

		var reply EditorDTO
		for _, line := range strings.Split(text, "\n") {
			reply = applyEditorCommand(e, line)
			if reply.Error != "" {
				break
			}
		}
		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("unable to write json")
			return
		}
	}
}
