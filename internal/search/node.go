package search

import (
	"slices"

	"github.com/persistorai/degrees/internal/models"
)

// Node is one discovered person in a search tree. The root has no Parent and
// an empty Action; every other node records the movie that reached it.
type Node struct {
	State  string // person id
	Action string // connecting movie id
	Parent *Node
	Depth  int
}

// newRoot creates the search tree root for personID.
func newRoot(personID string) *Node {
	return &Node{State: personID}
}

// child creates the node reached from n through movieID.
func (n *Node) child(personID, movieID string) *Node {
	return &Node{State: personID, Action: movieID, Parent: n, Depth: n.Depth + 1}
}

// Path walks the parent chain back to the root, which is excluded, and
// returns the steps in root-to-n order.
func (n *Node) Path() []models.PathStep {
	steps := make([]models.PathStep, 0, n.Depth)

	for cur := n; cur.Parent != nil; cur = cur.Parent {
		steps = append(steps, models.PathStep{MovieID: cur.Action, PersonID: cur.State})
	}

	slices.Reverse(steps)

	return steps
}
