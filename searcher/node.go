package searcher

import (
	"decisiontree/decision"
	"decisiontree/tree"
	"fmt"
)

// Node is a decision tree node: a problem state, the decision that produced
// it and the bookkeeping of which child, if any, has been chosen.
//
// Every decision operation descends from the receiver to the first node that
// still awaits a decision (the choice point) and applies itself there.
// Non-destructive operations follow the chosen child, destructive ones follow
// single remaining branches, since pruning removes the siblings that would
// otherwise tell a decided node from an undecided one.
//
// A Node is not safe for concurrent use.
type Node[T any] struct {
	value    T
	lastMove decision.Decision
	branches int // Kept equal to children.Len()
	chosen   Choice
	children *tree.List[*Node[T]]
	equal    tree.Equal[T]
}

// NewNode builds a node for state, reached through move. The root of a tree
// has no move.
func NewNode[T comparable](state T, move decision.Decision) *Node[T] {
	return NewNodeFunc(state, move, tree.Comparable[T]())
}

func NewNodeFunc[T any](state T, move decision.Decision, equal tree.Equal[T]) *Node[T] {
	return &Node[T]{
		value:    state,
		lastMove: move,
		children: tree.NewListFunc(func(a, b *Node[T]) bool {
			return equal(a.value, b.value)
		}, 0),
		equal: equal,
	}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) LastMove() decision.Decision {
	return n.lastMove
}

func (n *Node[T]) SetLastMove(move decision.Decision) {
	n.lastMove = move
}

func (n *Node[T]) Branches() int {
	return n.branches
}

func (n *Node[T]) IsLeaf() bool {
	return n.branches == 0
}

func (n *Node[T]) Chosen() Choice {
	return n.chosen
}

func (n *Node[T]) DecisionMade() bool {
	return n.chosen.Made()
}

// ResetDecision clears the decision at this node only.
func (n *Node[T]) ResetDecision() {
	n.chosen = Choice{}
}

// ResetDecisions clears the chain of decisions starting at this node.
func (n *Node[T]) ResetDecisions() {
	n.resetDecisions()
}

func (n *Node[T]) resetDecisions() int {
	index, ok := n.chosen.Index()
	if !ok {
		return 0
	}
	n.chosen = Choice{}
	return 1 + n.children.At(index).resetDecisions()
}

// Children returns a copy of the child list.
func (n *Node[T]) Children() []*Node[T] {
	return n.children.Slice()
}

func (n *Node[T]) Child(index int) (*Node[T], error) {
	if err := n.checkIndex(index); err != nil {
		return nil, err
	}
	return n.children.At(index), nil
}

func (n *Node[T]) OnlyChild() (*Node[T], error) {
	if n.branches != 1 {
		return nil, fmt.Errorf("%d branches: %w", n.branches, ErrNotOnlyChild)
	}
	return n.children.At(0), nil
}

func (n *Node[T]) ChosenChild() (*Node[T], error) {
	index, ok := n.chosen.Index()
	if !ok {
		return nil, ErrNoChosenChild
	}
	return n.children.At(index), nil
}

// Size counts the nodes of the subtree rooted here, including inactive
// branches.
func (n *Node[T]) Size() int {
	size := 1
	for _, child := range n.children.All() {
		size += child.Size()
	}
	return size
}

// AddChild attaches child as the last branch. The node takes ownership of it.
func (n *Node[T]) AddChild(child *Node[T]) {
	if child == nil {
		panic("cannot add a nil child")
	}
	n.children.Append(child)
	n.branches++
}

// RemoveBranch cuts the first child whose state equals state and reports
// whether one was found.
func (n *Node[T]) RemoveBranch(state T) bool {
	i := n.children.IndexFunc(func(c *Node[T]) bool {
		return n.equal(c.value, state)
	})
	if i < 0 {
		return false
	}
	if err := n.children.RemoveAt(i); err != nil {
		return false
	}
	n.branches--

	// Keep the choice pointing at the same child
	if index, ok := n.chosen.Index(); ok {
		switch {
		case index == i:
			n.chosen = Choice{}
		case index > i:
			n.chosen = Chosen(index - 1)
		}
	}
	return true
}

// removeAllBut drops every child but the kept one, from the last index down,
// and returns how many were removed. Without a choice nothing is removed.
func (n *Node[T]) removeAllBut(keep Choice) int {
	index, ok := keep.Index()
	if !ok {
		return 0
	}
	pruned := 0
	for i := n.branches - 1; i >= 0; i-- {
		if i == index {
			continue
		}
		if err := n.children.RemoveAt(i); err != nil {
			panic(fmt.Sprintf("branch count %d out of sync with children: %v", n.branches, err))
		}
		n.branches--
		pruned++
	}
	return pruned
}

func (n *Node[T]) checkIndex(index int) error {
	if index < 0 || index >= n.branches {
		return fmt.Errorf("branch %d of %d: %w", index, n.branches, ErrOutOfRange)
	}
	return nil
}

// MakePermaDecision keeps the child at index and discards its siblings. The
// survivor becomes the only child and the committed choice.
func (n *Node[T]) MakePermaDecision(index int) error {
	_, err := n.makePermaDecision(index)
	return err
}

func (n *Node[T]) makePermaDecision(index int) (int, error) {
	if n.branches == 0 || n.branches == 1 {
		return 0, fmt.Errorf("%d branches: %w", n.branches, ErrNoDecision)
	}
	if err := n.checkIndex(index); err != nil {
		return 0, err
	}
	pruned := n.removeAllBut(Chosen(index))
	n.chosen = Chosen(0)
	return pruned, nil
}

// MakeDecision commits to the child at index and leaves its siblings in place.
func (n *Node[T]) MakeDecision(index int) error {
	if n.branches == 0 {
		return fmt.Errorf("leaf: %w", ErrNoDecision)
	}
	if err := n.checkIndex(index); err != nil {
		return err
	}
	n.chosen = Chosen(index)
	return nil
}

// NextDecision follows committed choices down to the choice point and commits
// to its child at index there. Every level passed on the way must also have a
// branch at index.
func (n *Node[T]) NextDecision(index int) error {
	_, err := n.nextDecision(index, 0)
	return err
}

func (n *Node[T]) nextDecision(index, depth int) (int, error) {
	if n.branches == 0 {
		return depth, fmt.Errorf("leaf at depth %d: %w", depth, ErrNoDecision)
	}
	if err := n.checkIndex(index); err != nil {
		return depth, fmt.Errorf("depth %d: %w", depth, err)
	}
	chosen, ok := n.chosen.Index()
	if !ok {
		return depth, n.MakeDecision(index)
	}
	return n.children.At(chosen).nextDecision(index, depth+1)
}

// NextPermaDecision follows single branches down to the first node with
// several, keeps the child at index there and discards the others. The index
// is checked at every level, so once a node has been pruned to one branch
// only index 0 gets past it. Callers deciding deeper levels start from the
// choice point itself.
func (n *Node[T]) NextPermaDecision(index int) error {
	_, _, err := n.nextPermaDecision(index, 0)
	return err
}

func (n *Node[T]) nextPermaDecision(index, depth int) (int, int, error) {
	if n.branches == 0 {
		return depth, 0, fmt.Errorf("leaf at depth %d: %w", depth, ErrNoDecision)
	}
	if err := n.checkIndex(index); err != nil {
		return depth, 0, fmt.Errorf("depth %d: %w", depth, err)
	}
	switch {
	case n.branches > 1:
		pruned, err := n.makePermaDecision(index)
		return depth, pruned, err
	default:
		return n.children.At(0).nextPermaDecision(index, depth+1)
	}
}

// match returns the last child reached through d. Ties go to the later child.
func (n *Node[T]) match(d decision.Decision) Choice {
	if d == nil {
		return Choice{}
	}
	i := n.children.LastIndexFunc(func(c *Node[T]) bool {
		return d.Equal(c.lastMove)
	})
	if i < 0 {
		return Choice{}
	}
	return Chosen(i)
}

// ExternalDecisionMade commits, at the choice point, to the child produced by
// d and reports whether such a child exists. Without a match the choice point
// stays undecided. At a leaf it does nothing.
func (n *Node[T]) ExternalDecisionMade(d decision.Decision) bool {
	if n.branches == 0 {
		return false
	}
	if chosen, ok := n.chosen.Index(); ok {
		return n.children.At(chosen).ExternalDecisionMade(d)
	}
	n.chosen = n.match(d)
	return n.chosen.Made()
}

// ExternalPermaDecisionMade is the destructive ExternalDecisionMade: siblings
// of the matching child are discarded. Without a match nothing changes.
func (n *Node[T]) ExternalPermaDecisionMade(d decision.Decision) bool {
	matched, _ := n.externalPermaDecisionMade(d)
	return matched
}

func (n *Node[T]) externalPermaDecisionMade(d decision.Decision) (bool, int) {
	switch n.branches {
	case 0:
		return false, 0
	case 1:
		return n.children.At(0).externalPermaDecisionMade(d)
	}
	keep := n.match(d)
	if !keep.Made() {
		return false, 0
	}
	pruned := n.removeAllBut(keep)
	n.chosen = Chosen(0)
	return true, pruned
}

// NextDecisionPlanned reports whether the choice point has a child produced
// by d. It does not modify the tree.
func (n *Node[T]) NextDecisionPlanned(d decision.Decision) bool {
	if chosen, ok := n.chosen.Index(); ok {
		return n.children.At(chosen).NextDecisionPlanned(d)
	}
	return n.match(d).Made()
}

// NextChoicePoint returns the first undecided node below the chain of
// committed choices, or nil when that chain ends in a leaf.
func (n *Node[T]) NextChoicePoint() *Node[T] {
	if n.branches == 0 {
		return nil
	}
	if chosen, ok := n.chosen.Index(); ok {
		return n.children.At(chosen).NextChoicePoint()
	}
	return n
}
