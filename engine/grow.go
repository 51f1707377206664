package engine

import (
	"decisiontree/decision"
	"decisiontree/game"
	"decisiontree/searcher"
)

// Grow builds the decision tree of every line of play from state, depth moves
// deep. Each child is tagged with the move that produced it.
func Grow(state game.State, depth int, options ...searcher.Option) *searcher.Tree[game.State] {
	root := searcher.NewNode[game.State](state, nil)
	expand(root, depth)
	return searcher.FromRoot(root, options...)
}

func expand(node *searcher.Node[game.State], depth int) {
	if depth <= 0 {
		return
	}
	state := node.Value()
	for _, move := range state.LegalMoves() {
		child := searcher.NewNode(state.Play(move), decision.New(move))
		expand(child, depth-1)
		node.AddChild(child)
	}
}
