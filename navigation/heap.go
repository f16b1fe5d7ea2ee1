package navigation

// --- Min-heap for A* and Dijkstra ---

type heapEntry struct {
	idx  int // Flat grid index (y*width + x)
	cost int // Priority: f for A*, distance for Dijkstra
	g    int // Path cost at push time, detects stale entries
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].less((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].less((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// less orders by cost, preferring deeper entries on ties to keep A* moving toward the goal
func (e heapEntry) less(o heapEntry) bool {
	if e.cost != o.cost {
		return e.cost < o.cost
	}
	return e.g > o.g
}
