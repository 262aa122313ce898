package searcher

import (
	"math"

	"rift/lane"
)

// planDepth caps the greedy best-sequence read off the tree.
const planDepth = 3

// ActionStats summarizes one root child for the recommendation consumer.
type ActionStats struct {
	Visits   int     `json:"visits"`
	AvgScore float64 `json:"avg_score"`
	VisitPct float64 `json:"visit_pct"`
}

// Recommendation is what a search returns: the winning action by its stable
// identifier, a visit-share confidence, the full per-action breakdown, and
// a short greedy plan. The explanation layer consumes this verbatim.
type Recommendation struct {
	Action       string                 `json:"action"`
	Confidence   float64                `json:"confidence"`
	ActionScores map[string]ActionStats `json:"action_scores"`
	Iterations   int                    `json:"iterations_run"`
	BestSequence []string               `json:"best_sequence"`
	Metrics      SearchMetrics          `json:"-"`
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func buildRecommendation(root *node, iterations int) Recommendation {
	if len(root.children) == 0 {
		// Cannot happen while FarmSafe stays unconditionally legal, but
		// degrade to the fallback rather than fail
		return Recommendation{
			Action:       lane.FarmSafe.String(),
			Confidence:   0,
			ActionScores: map[string]ActionStats{},
			Iterations:   iterations,
			BestSequence: []string{lane.FarmSafe.String()},
		}
	}

	best := root.mostVisitedChild()

	totalVisits := 0
	for _, child := range root.children {
		totalVisits += child.visits
	}

	scores := make(map[string]ActionStats, len(root.children))
	for _, child := range root.children {
		scores[child.action.String()] = ActionStats{
			Visits:   child.visits,
			AvgScore: round(child.avgScore(), 2),
			VisitPct: round(float64(child.visits)/float64(max(1, totalVisits))*100, 1),
		}
	}

	// Greedy most-visited descent for the short plan
	sequence := []string{best.action.String()}
	n := best
	for i := 0; i < planDepth-1; i++ {
		next := n.mostVisitedChild()
		if next == nil {
			break
		}
		sequence = append(sequence, next.action.String())
		n = next
	}

	return Recommendation{
		Action:       best.action.String(),
		Confidence:   round(float64(best.visits)/float64(max(1, totalVisits)), 3),
		ActionScores: scores,
		Iterations:   iterations,
		BestSequence: sequence,
	}
}
