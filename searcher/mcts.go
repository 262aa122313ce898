package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"rift/lane"
)

// Search hyperparameter defaults and caps. Iteration budgets beyond the cap
// are clamped, not rejected: the caller is latency-sensitive.
const (
	DefaultIterations   = 1000
	MaxIterations       = 5000
	DefaultRolloutDepth = 6 // 6 steps of 20s = two minutes of lookahead
	DefaultExploration  = 1.41

	rolloutDeathPenalty = -50.0
	staticTailWeight    = 0.3 // Leaf estimate counts less than accumulated scores
)

type Option func(m *MCTS)

// MCTS owns the search configuration. One Search invocation builds a fresh
// tree (or one private tree per worker) and discards it afterward; nothing
// is shared across invocations.
type MCTS struct {
	iterations   int
	rolloutDepth int
	exploration  float64
	policy       lane.OpponentPolicy
	workers      int
	seed         uint64
	seeded       bool
	metrics      Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = min(iterations, MaxIterations)
		}
	}
}

func WithRolloutDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.rolloutDepth = depth
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithPolicy(policy lane.OpponentPolicy) Option {
	return func(m *MCTS) {
		m.policy = policy
	}
}

// WithWorkers runs independent iteration batches on private trees merged at
// the end by summing visit and score statistics per action.
func WithWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

// WithSeed pins the random stream so identical inputs reproduce identical
// trees. Without it every search draws a fresh seed from the clock.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		iterations:   DefaultIterations,
		rolloutDepth: DefaultRolloutDepth,
		exploration:  DefaultExploration,
		policy:       lane.PolicyAverage,
		workers:      1,
		metrics:      NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search runs the iteration budget from the given state and returns the
// ranked action distribution. The root's most-visited child wins.
func (m *MCTS) Search(state lane.LaneState) Recommendation {
	seed := m.seed
	if !m.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	m.metrics.Start()
	var root *node
	if m.workers > 1 {
		root = m.searchParallel(state, seed)
	} else {
		root = m.buildTree(state, seed, m.iterations)
	}
	metric := m.metrics.Complete()

	rec := buildRecommendation(root, m.iterations)
	rec.Metrics = metric
	log.Debug().Msgf("search picked %s (confidence %.2f) after %d iterations in %s",
		rec.Action, rec.Confidence, metric.Iterations, metric.Duration)
	return rec
}

// buildTree runs a batch of iterations on a private tree with a private
// random stream.
func (m *MCTS) buildTree(state lane.LaneState, seed uint64, iterations int) *node {
	rng := rand.New(rand.NewSource(seed))
	root := newNode(state, nil, lane.FarmSafe)
	for i := 0; i < iterations; i++ {
		m.simulate(root, rng)
		m.metrics.AddIteration()
	}
	return root
}

// simulate is one full cycle: selection, expansion, rollout, backup.
func (m *MCTS) simulate(root *node, rng *rand.Rand) {
	n := root

	// Selection: descend through fully expanded nodes by UCB1
	for n.fullyExpanded() && len(n.children) > 0 {
		n = n.bestChild(m.exploration)
	}

	// Expansion: pop an untried action uniformly at random
	if len(n.untried) > 0 {
		i := rng.Intn(len(n.untried))
		action := n.untried[i]
		n.untried[i] = n.untried[len(n.untried)-1]
		n.untried = n.untried[:len(n.untried)-1]

		state := lane.Advance(n.state, action, m.policy, rng)
		child := newNode(state, n, action)
		n.children = append(n.children, child)
		n = child
	}

	score := m.rollout(n.state, rng)

	// Backup: every ancestor, the new node included, absorbs the score
	for ; n != nil; n = n.parent {
		n.visits++
		n.totalScore += score
	}
}

// rollout plays random legal actions for the lookahead depth, accumulating
// transition scores, and adds a down-weighted static estimate of wherever
// it lands. Death ends it early with a fixed penalty.
func (m *MCTS) rollout(state lane.LaneState, rng *rand.Rand) float64 {
	total := 0.0
	current := state

	for i := 0; i < m.rolloutDepth; i++ {
		if current.HP <= 0 {
			total += rolloutDeathPenalty
			m.metrics.AddRolloutDeath()
			break
		}

		actions := lane.LegalActions(&current)
		action := actions[rng.Intn(len(actions))]
		next := lane.Advance(current, action, m.policy, rng)
		total += lane.TransitionScore(&current, &next)
		current = next
		m.metrics.AddRolloutStep()
	}

	return total + lane.StaticEvaluate(&current)*staticTailWeight
}
