package tree

// Equal reports whether two payloads are the same value.
type Equal[T any] func(a, b T) bool

func Comparable[T comparable]() Equal[T] {
	return func(a, b T) bool { return a == b }
}

// Node is a tree node holding one value and an optional list of children it
// exclusively owns.
type Node[T any] struct {
	value    T
	children *List[*Node[T]]
	equal    Equal[T]
}

func NewNode[T comparable](value T, children ...*Node[T]) *Node[T] {
	return NewNodeFunc(value, Comparable[T](), children...)
}

func NewNodeFunc[T any](value T, equal Equal[T], children ...*Node[T]) *Node[T] {
	n := &Node[T]{value: value, equal: equal}
	if len(children) > 0 {
		n.children = n.newChildren(len(children))
		n.children.Append(children...)
	}
	return n
}

func (n *Node[T]) newChildren(capacity int) *List[*Node[T]] {
	return NewListFunc(func(a, b *Node[T]) bool {
		if a == nil || b == nil {
			return a == b
		}
		return n.equal(a.value, b.value)
	}, capacity)
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// Children may be nil when the node never had any.
func (n *Node[T]) Children() *List[*Node[T]] {
	return n.children
}

func (n *Node[T]) SetChildren(children *List[*Node[T]]) {
	n.children = children
}

func (n *Node[T]) AddChild(child *Node[T]) {
	if n.children == nil {
		n.children = n.newChildren(1)
	}
	n.children.Append(child)
}

func (n *Node[T]) IsLeaf() bool {
	return n.children == nil || n.children.Len() == 0
}

// FindByValue returns the first child holding value.
func (n *Node[T]) FindByValue(value T) (*Node[T], bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Find(func(c *Node[T]) bool {
		return c != nil && n.equal(c.value, value)
	})
}

// RemoveByValue drops the first child holding value.
func (n *Node[T]) RemoveByValue(value T) bool {
	if n.children == nil {
		return false
	}
	return n.children.RemoveFunc(func(c *Node[T]) bool {
		return c != nil && n.equal(c.value, value)
	})
}
