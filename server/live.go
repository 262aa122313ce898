package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rift/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// liveMessage is one frame on the live stream: every timeline event in
// order, then a final frame carrying the result summary.
type liveMessage struct {
	Kind   string         `json:"kind"` // "event" or "result"
	Event  *engine.Event  `json:"event,omitempty"`
	Result *liveResult    `json:"result,omitempty"`
}

type liveResult struct {
	MatchID            string  `json:"match_id"`
	Winner             string  `json:"winner"`
	DurationSeconds    float64 `json:"duration_seconds"`
	BlueWinProbability float64 `json:"blue_win_probability"`
}

// handleLive simulates a match between two default drafts and streams its
// timeline over a websocket. An optional seed query pin makes the stream
// reproducible.
func (s *Server) handleLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake error.
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var options []engine.Option
	if raw := c.Query("seed"); raw != "" {
		if seed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			options = append(options, engine.WithSeed(seed))
		}
	}
	options = append(options, engine.WithLogger(s.logger))

	blue := c.DefaultQuery("blue", "BLUE")
	red := c.DefaultQuery("red", "RED")
	state := engine.NewMatchState(blue, red, defaultDraft(), defaultDraft(), "")
	result := engine.NewSimulator(options...).Run(state)

	for i := range result.Timeline {
		msg := liveMessage{Kind: "event", Event: &result.Timeline[i]}
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug().Err(err).Msg("live stream closed by client")
			return
		}
	}

	final := liveMessage{Kind: "result", Result: &liveResult{
		MatchID:            result.MatchID,
		Winner:             result.Winner,
		DurationSeconds:    result.DurationSeconds,
		BlueWinProbability: result.BlueWinProbability,
	}}
	if err := conn.WriteJSON(final); err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over"))
}

func defaultDraft() []engine.DraftEntry {
	return []engine.DraftEntry{
		{ChampionID: "Aatrox", Role: engine.RoleTop},
		{ChampionID: "LeeSin", Role: engine.RoleJungle},
		{ChampionID: "Ahri", Role: engine.RoleMid},
		{ChampionID: "Jinx", Role: engine.RoleADC},
		{ChampionID: "Thresh", Role: engine.RoleSupport},
	}
}
