package pointtopoint

// nodeHeap is a container/heap.Interface ordering Nodes so the lowest
// cost+heuristic pops first; among equal f-scores, the higher true cost
// pops first (closer to the goal, per A*'s usual tie-break).
type nodeHeap []Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].CostPlusHeuristic != h[j].CostPlusHeuristic {
		return h[i].CostPlusHeuristic < h[j].CostPlusHeuristic
	}
	return h[i].Cost > h[j].Cost
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(Node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
