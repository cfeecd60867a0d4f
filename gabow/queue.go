package gabow

// partition is an unmaterialized class of spanning trees: the trees that
// contain every IN edge, avoid every OUT edge and differ from arena tree T.
// Its best member is T − e + f with weight key.
type partition struct {
	tree    int
	in, out *edgeList
	e, f    int
	key     float64
	seq     uint64
}

// partitionQueue implements heap.Interface as a min-heap ordered by (key, seq).
type partitionQueue []*partition

func (q partitionQueue) Len() int { return len(q) }

func (q partitionQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}

	return q[i].seq < q[j].seq
}

func (q partitionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *partitionQueue) Push(x interface{}) { *q = append(*q, x.(*partition)) }

func (q *partitionQueue) Pop() interface{} {
	old := *q
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return p
}
