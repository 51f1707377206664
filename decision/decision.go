// Package decision holds the values that label edges of a decision tree.
package decision

// Decision is an opaque move payload compared by value.
type Decision interface {
	Impl() any
	Equal(other Decision) bool
}

// Move is the plain Decision over a comparable payload.
type Move[M comparable] struct {
	impl M
}

func New[M comparable](impl M) Move[M] {
	return Move[M]{impl: impl}
}

func (m Move[M]) Impl() any {
	return m.impl
}

// Payload returns the typed payload.
func (m Move[M]) Payload() M {
	return m.impl
}

// Equal compares payloads only, so decisions of different kinds wrapping the
// same move are equal.
func (m Move[M]) Equal(other Decision) bool {
	if other == nil {
		return false
	}
	impl, ok := other.Impl().(M)
	return ok && impl == m.impl
}
