package searcher

import (
	"decisiontree/decision"
	"sync"
)

// Locked serialises access to a Tree shared between goroutines. Sequences
// that read then write, such as checking NextDecisionPlanned before applying
// the decision, must run inside a single Do call.
type Locked[T any] struct {
	mu   sync.Mutex
	tree *Tree[T]
}

func NewLocked[T any](t *Tree[T]) *Locked[T] {
	return &Locked[T]{tree: t}
}

func (l *Locked[T]) Do(fn func(t *Tree[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(l.tree)
}

// ApplyIfPlanned applies d at the choice point only if the tree plans for it
// and reports whether it was applied.
func (l *Locked[T]) ApplyIfPlanned(d decision.Decision) (bool, error) {
	applied := false
	err := l.Do(func(t *Tree[T]) error {
		planned, err := t.NextDecisionPlanned(d)
		if err != nil || !planned {
			return err
		}
		applied, err = t.ExternalDecisionMade(d)
		return err
	})
	return applied, err
}
