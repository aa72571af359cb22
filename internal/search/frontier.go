package search

// minCompact is the smallest consumed prefix worth reclaiming.
const minCompact = 64

// QueueFrontier is a FIFO of search nodes awaiting expansion.
type QueueFrontier struct {
	nodes  []*Node
	head   int
	states map[string]int // state -> queued count
}

// NewQueueFrontier creates an empty frontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{states: make(map[string]int)}
}

// Add appends n to the back of the queue.
func (f *QueueFrontier) Add(n *Node) {
	f.nodes = append(f.nodes, n)
	f.states[n.State]++
}

// Remove pops the node at the front of the queue.
// It returns ErrEmptyFrontier when nothing is queued.
func (f *QueueFrontier) Remove() (*Node, error) {
	if f.Empty() {
		return nil, ErrEmptyFrontier
	}

	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++

	if c := f.states[n.State]; c <= 1 {
		delete(f.states, n.State)
	} else {
		f.states[n.State] = c - 1
	}

	// Drop the consumed prefix once it dominates the backing array.
	if f.head >= minCompact && f.head*2 >= len(f.nodes) {
		f.nodes = append(f.nodes[:0], f.nodes[f.head:]...)
		f.head = 0
	}

	return n, nil
}

// Empty reports whether the queue holds no nodes.
func (f *QueueFrontier) Empty() bool {
	return f.head >= len(f.nodes)
}

// Len returns the number of queued nodes.
func (f *QueueFrontier) Len() int {
	return len(f.nodes) - f.head
}

// Contains reports whether a node with the given state is queued.
func (f *QueueFrontier) Contains(state string) bool {
	return f.states[state] > 0
}
