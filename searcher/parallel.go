package searcher

import "rift/lane"

// Root-parallel search: each worker builds a private tree from the same
// state with its own seeded random stream, then the trees are merged by
// summing visit and score statistics. Action identity is the only merge
// key, so no statistics are lost and no locks are needed during search.

func (m *MCTS) searchParallel(state lane.LaneState, seed uint64) *node {
	perWorker := m.iterations / m.workers
	extra := m.iterations % m.workers

	roots := make([]*node, m.workers)
	done := make(chan int, m.workers)
	for w := 0; w < m.workers; w++ {
		batch := perWorker
		if w < extra {
			batch++
		}
		go func(w, batch int) {
			roots[w] = m.buildTree(state, seed+uint64(w), batch)
			done <- w
		}(w, batch)
	}
	for range roots {
		<-done
	}

	// Merge in worker order so the result is independent of scheduling
	merged := roots[0]
	for _, root := range roots[1:] {
		mergeNodes(merged, root)
	}
	return merged
}

// mergeNodes folds src's statistics into dst, recursively matching children
// by action. Subtrees for actions dst never expanded are adopted wholesale.
func mergeNodes(dst, src *node) {
	dst.visits += src.visits
	dst.totalScore += src.totalScore

	for _, child := range src.children {
		if existing := dst.childFor(child.action); existing != nil {
			mergeNodes(existing, child)
		} else {
			child.parent = dst
			dst.children = append(dst.children, child)
		}
	}
}
