package scheduler

// JobHeap orders jobs by NextRun, earliest first. Jobs due at the same
// instant run in the order they were added.
type JobHeap []*Job

func (h JobHeap) Len() int { return len(h) }

func (h JobHeap) Less(i, j int) bool {
	if h[i].NextRun.Equal(h[j].NextRun) {
		return h[i].seq < h[j].seq
	}
	return h[i].NextRun.Before(h[j].NextRun)
}

func (h JobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *JobHeap) Push(x any) {
	*h = append(*h, x.(*Job))
}

func (h *JobHeap) Pop() any {
	old := *h
	n := len(old)
	job := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return job
}
