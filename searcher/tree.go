package searcher

import (
	"decisiontree/decision"
	"decisiontree/experiments/metrics"
	"decisiontree/tree"

	"github.com/rs/zerolog/log"
)

// Tree owns the root of a decision tree and applies whole tree operations to
// it. The zero value is an empty tree; every operation on it returns
// ErrEmptyTree.
//
// A Tree is not safe for concurrent use. Share it through Locked.
type Tree[T any] struct {
	root    *Node[T]
	metrics metrics.Collector
}

func NewTree[T comparable](state T, move decision.Decision, options ...Option) *Tree[T] {
	return FromRoot(NewNode(state, move), options...)
}

func NewTreeFunc[T any](state T, move decision.Decision, equal tree.Equal[T], options ...Option) *Tree[T] {
	return FromRoot(NewNodeFunc(state, move, equal), options...)
}

func FromRoot[T any](root *Node[T], options ...Option) *Tree[T] {
	c := newConfig(options)
	return &Tree[T]{
		root:    root,
		metrics: c.metrics,
	}
}

func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

func (t *Tree[T]) SetRoot(root *Node[T]) {
	t.root = root
}

func (t *Tree[T]) Metrics() metrics.TreeMetric {
	return t.collector().Complete()
}

func (t *Tree[T]) collector() metrics.Collector {
	if t == nil || t.metrics == nil {
		return metrics.NewDummyCollector()
	}
	return t.metrics
}

func (t *Tree[T]) nonEmptyRoot() (*Node[T], error) {
	if t == nil || t.root == nil {
		return nil, ErrEmptyTree
	}
	return t.root, nil
}

// NextDecision commits to the child at index of the current choice point,
// keeping its siblings.
func (t *Tree[T]) NextDecision(index int) error {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return err
	}
	depth, err := root.nextDecision(index, 0)
	if err != nil {
		return err
	}

	t.collector().AddDecision(false)
	log.Debug().Int("index", index).Int("depth", depth).Msg("committed decision")
	return nil
}

// NextPermaDecision commits to the child at index of the first node with
// more than one branch and discards the other branches.
func (t *Tree[T]) NextPermaDecision(index int) error {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return err
	}
	depth, pruned, err := root.nextPermaDecision(index, 0)
	if err != nil {
		return err
	}

	t.collector().AddDecision(true)
	t.collector().AddPruned(pruned)
	log.Debug().Int("index", index).Int("depth", depth).Int("pruned", pruned).Msg("committed permanent decision")
	return nil
}

func (t *Tree[T]) ResetDecisions() error {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return err
	}
	if root.resetDecisions() > 0 {
		t.collector().AddReset()
	}
	return nil
}

// ExternalDecisionMade applies a decision taken outside the tree, such as an
// opponent's move, and reports whether the choice point had a matching child.
func (t *Tree[T]) ExternalDecisionMade(d decision.Decision) (bool, error) {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return false, err
	}
	matched := root.ExternalDecisionMade(d)
	t.recordExternal(d, matched)
	return matched, nil
}

func (t *Tree[T]) ExternalPermaDecisionMade(d decision.Decision) (bool, error) {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return false, err
	}
	matched, pruned := root.externalPermaDecisionMade(d)
	t.recordExternal(d, matched)
	if matched {
		t.collector().AddPruned(pruned)
	}
	return matched, nil
}

func (t *Tree[T]) recordExternal(d decision.Decision, matched bool) {
	t.collector().AddExternal(matched)
	if matched {
		return
	}
	var impl any
	if d != nil {
		impl = d.Impl()
	}
	log.Warn().Msgf("external decision %v does not match any branch of the choice point", impl)
}

func (t *Tree[T]) NextDecisionPlanned(d decision.Decision) (bool, error) {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return false, err
	}
	return root.NextDecisionPlanned(d), nil
}

// NextChoicePoint returns the node awaiting the next decision, or nil when
// every decision down to a leaf has been made.
func (t *Tree[T]) NextChoicePoint() (*Node[T], error) {
	root, err := t.nonEmptyRoot()
	if err != nil {
		return nil, err
	}
	return root.NextChoicePoint(), nil
}
