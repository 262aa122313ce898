package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rift/engine"
	"rift/explain"
	"rift/lane"
	"rift/searcher"
)

// Error codes returned alongside 4xx responses.
const (
	CodeBadRequest     = "bad_request"
	CodeUnknownPolicy  = "unknown_policy"
	CodeNegativeBudget = "negative_budget"
	CodeEmptyDraft     = "empty_draft"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: code, Message: message})
}

// SearchOptions are the knobs a request may override. Zero values fall back
// to the server's configured defaults.
type SearchOptions struct {
	Iterations   int     `json:"iterations"`
	RolloutDepth int     `json:"rollout_depth"`
	Exploration  float64 `json:"exploration"`
	Workers      int     `json:"workers"`
	Policy       string  `json:"policy"`
	Seed         *uint64 `json:"seed"`
}

// buildSearch validates options against the config defaults and constructs
// the search. Iteration budgets over the cap are clamped, not rejected.
func (s *Server) buildSearch(c *gin.Context, opts SearchOptions) (*searcher.MCTS, bool) {
	if opts.Iterations < 0 {
		badRequest(c, CodeNegativeBudget, "iterations must not be negative")
		return nil, false
	}
	if opts.Iterations == 0 {
		opts.Iterations = s.cfg.Search.Iterations
	}
	if opts.RolloutDepth <= 0 {
		opts.RolloutDepth = s.cfg.Search.RolloutDepth
	}
	if opts.Exploration <= 0 {
		opts.Exploration = s.cfg.Search.Exploration
	}
	if opts.Workers <= 0 {
		opts.Workers = s.cfg.Search.Workers
	}
	if opts.Policy == "" {
		opts.Policy = s.cfg.Search.Policy
	}

	policy, err := lane.ParseOpponentPolicy(opts.Policy)
	if err != nil {
		badRequest(c, CodeUnknownPolicy, err.Error())
		return nil, false
	}

	options := []searcher.Option{
		searcher.WithIterations(opts.Iterations),
		searcher.WithRolloutDepth(opts.RolloutDepth),
		searcher.WithExploration(opts.Exploration),
		searcher.WithWorkers(opts.Workers),
		searcher.WithPolicy(policy),
		searcher.WithMetrics(),
	}
	if opts.Seed != nil {
		options = append(options, searcher.WithSeed(*opts.Seed))
	}
	return searcher.NewMCTS(options...), true
}

// AdviseRequest carries the observed lane state plus search options. Missing
// or malformed state fields default to the baseline rather than erroring.
type AdviseRequest struct {
	State   map[string]any `json:"state"`
	Options SearchOptions  `json:"options"`
}

type AdviseResponse struct {
	Recommendation searcher.Recommendation `json:"recommendation"`
	Explanation    explain.Explanation     `json:"explanation"`
}

func (s *Server) handleAdvise(c *gin.Context) {
	var req AdviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, CodeBadRequest, err.Error())
		return
	}

	search, ok := s.buildSearch(c, req.Options)
	if !ok {
		return
	}

	state := lane.FromFields(req.State)
	rec := search.Search(state)
	s.metrics.observe(rec.Metrics)

	c.JSON(http.StatusOK, AdviseResponse{
		Recommendation: rec,
		Explanation:    explain.Explain(&state, rec),
	})
}

// PlanRequest asks for a chained multi-step plan.
type PlanRequest struct {
	State   map[string]any `json:"state"`
	Steps   int            `json:"steps"`
	Options SearchOptions  `json:"options"`
}

type PlanResponse struct {
	Steps []searcher.PlanStep `json:"steps"`
}

func (s *Server) handlePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, CodeBadRequest, err.Error())
		return
	}
	if req.Steps < 0 {
		badRequest(c, CodeNegativeBudget, "steps must not be negative")
		return
	}
	if req.Steps == 0 {
		req.Steps = 3
	}

	search, ok := s.buildSearch(c, req.Options)
	if !ok {
		return
	}

	state := lane.FromFields(req.State)
	c.JSON(http.StatusOK, PlanResponse{Steps: search.Plan(state, req.Steps)})
}

// SimulateRequest describes a full 5v5 draft to simulate.
type SimulateRequest struct {
	BlueTeamID string              `json:"blue_team_id"`
	RedTeamID  string              `json:"red_team_id"`
	BlueDraft  []engine.DraftEntry `json:"blue_draft"`
	RedDraft   []engine.DraftEntry `json:"red_draft"`
	Patch      string              `json:"patch"`
	Seed       *uint64             `json:"seed"`
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, CodeBadRequest, err.Error())
		return
	}
	if len(req.BlueDraft) == 0 || len(req.RedDraft) == 0 {
		badRequest(c, CodeEmptyDraft, "both drafts need at least one pick")
		return
	}

	var options []engine.Option
	if req.Seed != nil {
		options = append(options, engine.WithSeed(*req.Seed))
	}
	options = append(options, engine.WithLogger(s.logger))

	sim := engine.NewSimulator(options...)
	state := engine.NewMatchState(req.BlueTeamID, req.RedTeamID, req.BlueDraft, req.RedDraft, req.Patch)
	c.JSON(http.StatusOK, sim.Run(state))
}
