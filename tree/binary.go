package tree

// BinaryNode is a Node with exactly two child slots. Either slot may be nil.
type BinaryNode[T any] struct {
	*Node[T]
}

func NewBinaryNode[T comparable](value T, left, right *Node[T]) BinaryNode[T] {
	return NewBinaryNodeFunc(value, Comparable[T](), left, right)
}

func NewBinaryNodeFunc[T any](value T, equal Equal[T], left, right *Node[T]) BinaryNode[T] {
	n := &Node[T]{value: value, equal: equal}
	n.children = n.newChildren(2)
	n.children.Append(left, right)
	return BinaryNode[T]{Node: n}
}

func (b BinaryNode[T]) Left() *Node[T] {
	return b.slot(0)
}

func (b BinaryNode[T]) Right() *Node[T] {
	return b.slot(1)
}

func (b BinaryNode[T]) SetLeft(node *Node[T]) {
	b.setSlot(0, node)
}

func (b BinaryNode[T]) SetRight(node *Node[T]) {
	b.setSlot(1, node)
}

func (b BinaryNode[T]) slot(i int) *Node[T] {
	if b.children == nil || b.children.Len() <= i {
		return nil
	}
	return b.children.At(i)
}

func (b BinaryNode[T]) setSlot(i int, node *Node[T]) {
	if b.children == nil {
		b.children = b.newChildren(2)
	}
	for b.children.Len() < 2 {
		b.children.Append(nil)
	}
	_ = b.children.Set(i, node)
}

// IsLeaf reports whether both slots are empty.
func (b BinaryNode[T]) IsLeaf() bool {
	return b.Left() == nil && b.Right() == nil
}
