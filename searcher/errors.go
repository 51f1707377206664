package searcher

import (
	"decisiontree/tree"
	"errors"
)

var (
	// ErrNoDecision means the node offers nothing to decide: it is a leaf, or
	// it has a single branch and the decision would discard nothing.
	ErrNoDecision = errors.New("no decision possible")
	ErrOutOfRange = tree.ErrIndexOutOfRange
	// ErrEmptyTree is returned by every tree operation before a root is set.
	ErrEmptyTree     = errors.New("decision tree has no root")
	ErrNotOnlyChild  = errors.New("node does not have exactly one child")
	ErrNoChosenChild = errors.New("no decision made at node")
)
