package searcher

import (
	"decisiontree/decision"
)

// shape is a structural snapshot of a subtree used to check that read-only
// operations leave the tree untouched.
type shape struct {
	Value    string
	Branches int
	Chosen   Choice
	Children []shape
}

func snapshot(n *Node[string]) shape {
	s := shape{Value: n.Value(), Branches: n.Branches(), Chosen: n.Chosen()}
	for _, child := range n.Children() {
		s.Children = append(s.Children, snapshot(child))
	}
	return s
}

func newLabelled(label string) *Node[string] {
	return NewNode(label, decision.New(label))
}

// newThreeLevelTree builds root -> {a, b} -> {a0, a1}, {b0, b1}.
func newThreeLevelTree() *Node[string] {
	root := NewNode[string]("root", nil)
	for _, label := range []string{"a", "b"} {
		child := newLabelled(label)
		child.AddChild(newLabelled(label + "0"))
		child.AddChild(newLabelled(label + "1"))
		root.AddChild(child)
	}
	return root
}

func labels(nodes []*Node[string]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Value())
	}
	return out
}
