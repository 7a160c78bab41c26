package tree

import "slices"

// candidate is a merge candidate ordered by (weight, id).
type candidate struct {
	id     NodeID
	weight float64
}

func (c candidate) less(o candidate) bool {
	if c.weight != o.weight {
		return c.weight < o.weight
	}

	return c.id < o.id
}

// candidateQueue is a min-heap of candidates for container/heap.
type candidateQueue []candidate

func (q candidateQueue) Len() int           { return len(q) }
func (q candidateQueue) Less(i, j int) bool { return q[i].less(q[j]) }
func (q candidateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x any) {
	c, _ := x.(candidate)
	*q = append(*q, c)
}

func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

func sortCandidates(cs []candidate) {
	slices.SortFunc(cs, func(a, b candidate) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		default:
			return 0
		}
	})
}
