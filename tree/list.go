package tree

import (
	"decisiontree/utils"
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered, mutable container of child handles. Value based lookups
// go through the equality function supplied at construction.
type List[E any] struct {
	items []E
	equal func(a, b E) bool
}

func NewList[E comparable](capacity int) *List[E] {
	return NewListFunc(func(a, b E) bool { return a == b }, capacity)
}

func NewListFunc[E any](equal func(a, b E) bool, capacity int) *List[E] {
	if equal == nil {
		panic("list requires an equality function")
	}
	return &List[E]{
		items: make([]E, 0, capacity),
		equal: equal,
	}
}

func (l *List[E]) Len() int {
	return len(l.items)
}

// At panics if i is out of range, like indexing a slice.
func (l *List[E]) At(i int) E {
	return l.items[i]
}

func (l *List[E]) Set(i int, item E) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("set %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items[i] = item
	return nil
}

func (l *List[E]) Append(items ...E) {
	l.items = append(l.items, items...)
}

func (l *List[E]) Insert(i int, item E) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items = slices.Insert(l.items, i, item)
	return nil
}

func (l *List[E]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("remove at %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Remove deletes the first item equal to item and reports whether one was found.
func (l *List[E]) Remove(item E) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List[E]) RemoveFunc(match func(E) bool) bool {
	i := l.IndexFunc(match)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List[E]) IndexOf(item E) int {
	return l.IndexFunc(func(e E) bool { return l.equal(e, item) })
}

func (l *List[E]) Contains(item E) bool {
	return l.IndexOf(item) >= 0
}

func (l *List[E]) IndexFunc(match func(E) bool) int {
	return slices.IndexFunc(l.items, match)
}

func (l *List[E]) LastIndexFunc(match func(E) bool) int {
	return utils.FindLastIndex(l.items, match)
}

func (l *List[E]) Find(match func(E) bool) (E, bool) {
	if i := l.IndexFunc(match); i >= 0 {
		return l.items[i], true
	}
	var zero E
	return zero, false
}

func (l *List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the items in order.
func (l *List[E]) Slice() []E {
	return slices.Clone(l.items)
}
