package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"rift/config"
	"rift/engine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Search.Iterations = 200 // keep handler tests fast
	return New(cfg, zerolog.Nop())
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAdviseReturnsRecommendation(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(42)
	rec := postJSON(t, s, "/advise", AdviseRequest{
		State:   map[string]any{"my_hp": 550.0, "enemy_hp": 300.0},
		Options: SearchOptions{Seed: &seed},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdviseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Recommendation.Action)
	require.Equal(t, 200, resp.Recommendation.Iterations)
	require.NotEmpty(t, resp.Recommendation.ActionScores)
	require.NotEmpty(t, resp.Explanation.DoThis)
	require.NotEmpty(t, resp.Explanation.Confidence)
}

func TestAdviseDefaultsMalformedStateFields(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(1)
	rec := postJSON(t, s, "/advise", AdviseRequest{
		State:   map[string]any{"my_hp": "not-a-number", "no_such_field": 12},
		Options: SearchOptions{Seed: &seed},
	})

	// Baseline defaulting: malformed fields never produce a 400.
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdviseRejectsUnknownPolicy(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/advise", AdviseRequest{
		Options: SearchOptions{Policy: "aggressive"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, CodeUnknownPolicy, resp.Code)
}

func TestAdviseRejectsNegativeBudget(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/advise", AdviseRequest{
		Options: SearchOptions{Iterations: -5},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, CodeNegativeBudget, resp.Code)
}

func TestAdviseClampsOversizedBudget(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(3)
	rec := postJSON(t, s, "/advise", AdviseRequest{
		Options: SearchOptions{Iterations: 50000, Seed: &seed},
	})

	// Over-cap budgets are clamped, not rejected.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdviseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5000, resp.Recommendation.Iterations)
}

func TestPlanReturnsChainedSteps(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(9)
	rec := postJSON(t, s, "/plan", PlanRequest{
		Steps:   3,
		Options: SearchOptions{Seed: &seed},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, 3)
	require.Equal(t, 1, resp.Steps[0].Step)
}

func testDraft() []engine.DraftEntry {
	return []engine.DraftEntry{
		{ChampionID: "blue-top", Role: engine.RoleTop},
		{ChampionID: "blue-jungle", Role: engine.RoleJungle},
		{ChampionID: "blue-mid", Role: engine.RoleMid},
		{ChampionID: "blue-adc", Role: engine.RoleADC},
		{ChampionID: "blue-support", Role: engine.RoleSupport},
	}
}

func TestSimulateReturnsResult(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(7)
	rec := postJSON(t, s, "/simulate", SimulateRequest{
		BlueTeamID: "T1",
		RedTeamID:  "GEN",
		BlueDraft:  testDraft(),
		RedDraft:   testDraft(),
		Seed:       &seed,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Contains(t, []string{"blue", "red"}, result.Winner)
	require.NotEmpty(t, result.MatchID)
	require.Len(t, result.Scoreboard, 10)
}

func TestSimulateRejectsEmptyDraft(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s, "/simulate", SimulateRequest{BlueTeamID: "T1", RedTeamID: "GEN"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, CodeEmptyDraft, resp.Code)
}

func TestMetricsEndpointCountsSearches(t *testing.T) {
	s := newTestServer(t)
	seed := uint64(5)
	postJSON(t, s, "/advise", AdviseRequest{Options: SearchOptions{Seed: &seed}})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "rift_searches_total 1")
}

func TestLiveStreamsEventsThenResult(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live?seed=11"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	sawResult := false
	for {
		var msg liveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Kind {
		case "event":
			require.NotNil(t, msg.Event)
		case "result":
			require.NotNil(t, msg.Result)
			require.Contains(t, []string{"blue", "red"}, msg.Result.Winner)
			sawResult = true
		}
		if sawResult {
			break
		}
	}
	require.True(t, sawResult, "stream should end with a result frame")
}
