package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	t.Run("node without children is a leaf", func(t *testing.T) {
		n := NewNode("root")

		require.True(t, n.IsLeaf())
		require.Nil(t, n.Children(), "Children should be absent until one is added")
	})

	t.Run("node with an emptied child list is a leaf", func(t *testing.T) {
		n := NewNode("root", NewNode("a"))
		require.False(t, n.IsLeaf())

		require.True(t, n.RemoveByValue("a"))
		require.True(t, n.IsLeaf(), "Empty child list should count as a leaf")
	})

	t.Run("finding children by value", func(t *testing.T) {
		a, b := NewNode(1), NewNode(2)
		n := NewNode(0, a)
		n.AddChild(b)

		got, ok := n.FindByValue(2)
		require.True(t, ok)
		require.Same(t, b, got)

		_, ok = n.FindByValue(3)
		require.False(t, ok)
		require.False(t, n.RemoveByValue(3))
		require.Equal(t, 2, n.Children().Len())
	})

	t.Run("custom equality", func(t *testing.T) {
		sameLen := func(a, b []int) bool { return len(a) == len(b) }
		n := NewNodeFunc([]int{}, sameLen, NewNodeFunc([]int{1, 2}, sameLen))

		got, ok := n.FindByValue([]int{9, 9})
		require.True(t, ok, "Lookup should use the supplied equality")
		require.Equal(t, []int{1, 2}, got.Value())
	})

	t.Run("setting value", func(t *testing.T) {
		n := NewNode("a")
		n.SetValue("b")
		require.Equal(t, "b", n.Value())
	})
}

func TestBinaryNode(t *testing.T) {
	t.Run("left and right accessors", func(t *testing.T) {
		left, right := NewNode(1), NewNode(2)
		b := NewBinaryNode(0, left, right)

		require.Same(t, left, b.Left())
		require.Same(t, right, b.Right())
		require.False(t, b.IsLeaf())
	})

	t.Run("empty slots", func(t *testing.T) {
		b := NewBinaryNode[int](0, nil, nil)

		require.Nil(t, b.Left())
		require.Nil(t, b.Right())
		require.True(t, b.IsLeaf(), "Binary node with two empty slots is a leaf")
	})

	t.Run("replacing slots", func(t *testing.T) {
		b := NewBinaryNode[int](0, nil, nil)
		right := NewNode(5)
		b.SetRight(right)

		require.Nil(t, b.Left())
		require.Same(t, right, b.Right())
		require.Equal(t, 2, b.Children().Len(), "Binary node should always hold two slots")
	})

	t.Run("finding by value skips empty slots", func(t *testing.T) {
		b := NewBinaryNode(0, nil, NewNode(7))

		got, ok := b.FindByValue(7)
		require.True(t, ok)
		require.Equal(t, 7, got.Value())
	})
}
