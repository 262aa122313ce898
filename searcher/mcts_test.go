package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rift/lane"
)

func TestSearchVisitConservation(t *testing.T) {
	// Backprop touches the root on every iteration, so root.visits == N
	for _, n := range []int{1, 10, 250} {
		m := NewMCTS(WithIterations(n), WithSeed(11))
		root := m.buildTree(lane.NewLaneState(), 11, n)

		require.Equal(t, n, root.visits, "Root visits must equal the iteration budget")

		childVisits := 0
		for _, child := range root.children {
			childVisits += child.visits
		}
		require.Equal(t, n, childVisits, "Every iteration lands in exactly one root child")
	}
}

func TestSearchDeterminismUnderSeed(t *testing.T) {
	state := lane.NewLaneState()

	a := NewMCTS(WithIterations(400), WithSeed(1337)).Search(state)
	b := NewMCTS(WithIterations(400), WithSeed(1337)).Search(state)

	require.Equal(t, a.Action, b.Action, "Pinned seeds must reproduce the chosen action")
	require.Equal(t, a.ActionScores, b.ActionScores, "Pinned seeds must reproduce the full score map")
	require.Equal(t, a.BestSequence, b.BestSequence)
}

func TestSearchConfidenceBound(t *testing.T) {
	rec := NewMCTS(WithIterations(300), WithSeed(5)).Search(lane.NewLaneState())

	require.GreaterOrEqual(t, rec.Confidence, 0.0)
	require.LessOrEqual(t, rec.Confidence, 1.0)

	best := rec.ActionScores[rec.Action]
	total := 0
	for _, stats := range rec.ActionScores {
		total += stats.Visits
	}
	require.InDelta(t, float64(best.Visits)/float64(total), rec.Confidence, 0.001,
		"Confidence is the winner's visit share")
}

func TestSearchLevelOneParityPrefersFarming(t *testing.T) {
	// Level 1, both sides full HP and mana, no cooldowns, average opponent:
	// early all-in at parity must not dominate safe farming
	state := lane.NewLaneState()
	m := NewMCTS(WithIterations(1000), WithPolicy(lane.PolicyAverage), WithSeed(2024))

	rec := m.Search(state)

	farming := map[string]bool{
		lane.FarmSafe.String():  true,
		lane.FarmPush.String():  true,
		lane.Freeze.String():    true,
		lane.ThinWave.String():  true,
		lane.ResetWave.String(): true,
	}
	trades := map[string]bool{
		lane.ShortTrade.String():    true,
		lane.ExtendedTrade.String(): true,
		lane.AllIn.String():         true,
	}
	require.False(t, trades[rec.Action], "Trading must not win the level-1 parity scenario, got %s", rec.Action)
	require.True(t, farming[rec.Action], "A farm-family action should win at level-1 parity, got %s", rec.Action)
}

func TestSearchIterationClamp(t *testing.T) {
	m := NewMCTS(WithIterations(50000), WithSeed(3))

	require.Equal(t, MaxIterations, m.iterations, "Budgets beyond the cap are clamped, not rejected")

	rec := m.Search(lane.NewLaneState())
	require.Equal(t, MaxIterations, rec.Iterations)
}

func TestSearchFallbackWithoutChildren(t *testing.T) {
	// Should not occur in practice; the degraded contract still holds
	root := newNode(lane.NewLaneState(), nil, lane.FarmSafe)
	root.children = nil

	rec := buildRecommendation(root, 0)

	require.Equal(t, lane.FarmSafe.String(), rec.Action)
	require.Equal(t, 0.0, rec.Confidence)
	require.Empty(t, rec.ActionScores)
	require.Equal(t, []string{lane.FarmSafe.String()}, rec.BestSequence)
}

func TestSearchParallelMergeConserves(t *testing.T) {
	state := lane.NewLaneState()
	m := NewMCTS(WithIterations(600), WithWorkers(4), WithSeed(77))

	root := m.searchParallel(state, 77)

	require.Equal(t, 600, root.visits, "Merged visit counts must not lose updates")

	childVisits := 0
	seen := map[lane.Action]bool{}
	for _, child := range root.children {
		childVisits += child.visits
		require.False(t, seen[child.action], "Action identity is the only merge key")
		seen[child.action] = true
	}
	require.Equal(t, 600, childVisits)
}

func TestSearchParallelDeterminism(t *testing.T) {
	state := lane.NewLaneState()

	a := NewMCTS(WithIterations(400), WithWorkers(4), WithSeed(8)).Search(state)
	b := NewMCTS(WithIterations(400), WithWorkers(4), WithSeed(8)).Search(state)

	require.Equal(t, a.ActionScores, b.ActionScores,
		"Per-worker seeds and a commutative merge make parallel search deterministic")
}

func TestUCBPrefersUnvisited(t *testing.T) {
	parent := newNode(lane.NewLaneState(), nil, lane.FarmSafe)
	parent.visits = 10
	visited := &node{action: lane.FarmSafe, visits: 5, totalScore: 100, parent: parent}
	fresh := &node{action: lane.Freeze, parent: parent}
	parent.children = []*node{visited, fresh}

	require.Equal(t, fresh, parent.bestChild(DefaultExploration),
		"Zero-visit nodes carry infinite priority")
}

func TestPlanChaining(t *testing.T) {
	m := NewMCTS(WithIterations(200), WithSeed(21))

	plan := m.Plan(lane.NewLaneState(), 3)

	require.Len(t, plan, 3)
	for i, step := range plan {
		require.Equal(t, i+1, step.Step)
		require.NotEmpty(t, step.Action)
		require.GreaterOrEqual(t, step.Confidence, 0.0)
		require.LessOrEqual(t, step.Confidence, 1.0)
	}
	require.Greater(t, plan[2].GameTime, plan[0].GameTime, "Each step advances simulated time")
}

func TestPlanStopsOnDeath(t *testing.T) {
	m := NewMCTS(WithIterations(50), WithSeed(9))
	dead := lane.NewLaneState()
	dead.HP = 0

	require.Empty(t, m.Plan(dead, 5), "Planning from a dead state yields nothing")
}
