package searcher

import (
	"math"

	"rift/lane"
)

// node is one point in the explored tree: a state snapshot, the action that
// produced it, owned children and a non-owning back-reference to the parent
// for backpropagation. Each worker owns a private tree, so nodes need no
// locks; sharing happens only in the root merge after a search.
type node struct {
	state    lane.LaneState
	action   lane.Action // Action that led here; meaningless on the root
	parent   *node
	children []*node

	visits     int
	totalScore float64
	untried    []lane.Action
}

func newNode(state lane.LaneState, parent *node, action lane.Action) *node {
	return &node{
		state:   state,
		action:  action,
		parent:  parent,
		untried: lane.LegalActions(&state),
	}
}

func (n *node) avgScore() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.totalScore / float64(n.visits)
}

// fullyExpanded reports whether every legal action has been tried at least
// once, making the node eligible for pure selection by statistic.
func (n *node) fullyExpanded() bool { return len(n.untried) == 0 }

// score is the UCB1 value given the precomputed c^2 * ln(parentVisits)
// numerator. Unvisited nodes get infinite priority.
func (n *node) score(c2LnN float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.avgScore() + math.Sqrt(c2LnN/float64(n.visits))
}

// bestChild picks the child maximizing UCB1: exploit strong observed
// averages, explore under-sampled branches.
func (n *node) bestChild(exploration float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	c2LnN := exploration * exploration * math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		s := child.score(c2LnN)
		if s == math.Inf(1) {
			return child
		}
		if s > maxScore {
			maxScore = s
			best = child
		}
	}
	return best
}

// mostVisitedChild is the final-answer criterion: visit count is more robust
// than average score against a lucky high-variance branch.
func (n *node) mostVisitedChild() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}

func (n *node) childFor(action lane.Action) *node {
	for _, child := range n.children {
		if child.action == action {
			return child
		}
	}
	return nil
}
