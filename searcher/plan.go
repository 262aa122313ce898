package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"rift/lane"
)

// PlanStep is one projected decision in a multi-step plan.
type PlanStep struct {
	Step       int     `json:"step"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
	GameTime   float64 `json:"game_time"`
	HPPct      float64 `json:"hp_pct"`
	Gold       float64 `json:"gold"`
}

// Plan chains full searches: run a search, apply the winning action through
// the forward simulator, repeat. Each invocation is independent; no tree
// state survives between steps. Planning stops early if the projected state
// dies.
func (m *MCTS) Plan(state lane.LaneState, steps int) []PlanStep {
	seed := m.seed
	if !m.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	plan := make([]PlanStep, 0, steps)
	current := state

	for i := 0; i < steps; i++ {
		if current.HP <= 0 {
			break
		}

		step := *m
		step.seed = seed + uint64(i)
		step.seeded = true
		rec := step.Search(current)

		action, _ := lane.ParseAction(rec.Action)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		current = lane.Advance(current, action, m.policy, rng)

		plan = append(plan, PlanStep{
			Step:       i + 1,
			Action:     rec.Action,
			Confidence: rec.Confidence,
			GameTime:   current.GameTime,
			HPPct:      round(current.HPPct(), 1),
			Gold:       round(current.Gold, 0),
		})
	}

	return plan
}
