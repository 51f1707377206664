package engine

import (
	"decisiontree/decision"
	"decisiontree/experiments/metrics"
	"decisiontree/game"
	"decisiontree/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Agent plays random moves while keeping a decision tree of the game in step
// with the moves played. Its own moves commit decisions by index, the
// opponent's moves are applied as external decisions. A permanent agent prunes
// the tree as the game goes, the others only mark the line played.
type Agent struct {
	Name      string
	Config    metrics.AgentConfig
	rng       *rand.Rand
	tree      *searcher.Tree[game.State]
	cursor    *searcher.Node[game.State] // Node of the current game state
	collector metrics.Collector
	regrowths int
}

func NewAgent(name string, config metrics.AgentConfig) *Agent {
	if config.Horizon < 1 {
		panic(fmt.Sprintf("agent %d needs a horizon of at least 1, got %d", config.ID, config.Horizon))
	}
	return &Agent{
		Name:      name,
		Config:    config,
		rng:       rand.New(rand.NewSource(config.Seed)),
		collector: metrics.NewCollector(),
	}
}

func (a *Agent) Tree() *searcher.Tree[game.State] {
	return a.tree
}

// sync makes sure the cursor holds state and can still be decided on,
// growing a fresh tree otherwise.
func (a *Agent) sync(state game.State) {
	if a.tree != nil && a.cursor.Value() == state && !a.cursor.IsLeaf() {
		return
	}
	a.tree = Grow(state, a.Config.Horizon, searcher.WithMetrics(a.collector))
	a.cursor = a.tree.Root()
	a.regrowths++
}

// Choose picks a random move from state and commits it in the tree.
func (a *Agent) Choose(state game.State) (game.Move, error) {
	a.sync(state)
	cursor := a.cursor
	if cursor.IsLeaf() {
		return nil, fmt.Errorf("no legal move for %s: %w", a.Name, searcher.ErrNoDecision)
	}

	var next *searcher.Node[game.State]
	var err error
	switch {
	case a.Config.Permanent && cursor.Branches() == 1:
		// A single branch is already decided for a pruned tree
		next, err = cursor.OnlyChild()
	case a.Config.Permanent:
		// Pruned levels above the cursor only admit index 0
		a.tree.SetRoot(cursor)
		if err = a.tree.NextPermaDecision(a.rng.Intn(cursor.Branches())); err != nil {
			return nil, err
		}
		next, err = cursor.OnlyChild()
	default:
		var point *searcher.Node[game.State]
		if point, err = a.tree.NextChoicePoint(); err != nil {
			return nil, err
		}
		if point != cursor {
			panic("choice point out of step with the game")
		}
		if err = a.tree.NextDecision(a.rng.Intn(cursor.Branches())); err != nil {
			return nil, err
		}
		next, err = cursor.ChosenChild()
	}
	if err != nil {
		return nil, err
	}

	a.cursor = next
	move, ok := next.LastMove().Impl().(game.Move)
	if !ok {
		panic(fmt.Sprintf("unexpected decision payload %T", next.LastMove().Impl()))
	}
	return move, nil
}

// Observe applies a move played by another agent. When the tree does not
// cover it the tree is dropped and grown again on the next Choose.
func (a *Agent) Observe(move game.Move, next game.State) error {
	if a.tree == nil || a.cursor.IsLeaf() {
		a.tree = nil
		return nil
	}

	d := decision.New(move)
	var child *searcher.Node[game.State]
	var matched bool
	var err error
	switch {
	case a.Config.Permanent && a.cursor.Branches() == 1:
		child, err = a.cursor.OnlyChild()
	case a.Config.Permanent:
		if matched, err = a.tree.ExternalPermaDecisionMade(d); err != nil {
			return err
		}
		if !matched {
			a.tree = nil
			return nil
		}
		child, err = a.cursor.OnlyChild()
	default:
		if matched, err = a.tree.NextDecisionPlanned(d); err != nil {
			return err
		}
		if !matched {
			log.Warn().Msgf("agent %s did not plan for move %v", a.Name, move)
			a.tree = nil
			return nil
		}
		if _, err = a.tree.ExternalDecisionMade(d); err != nil {
			return err
		}
		child, err = a.cursor.ChosenChild()
	}
	if err != nil {
		return err
	}

	if child.Value() != next {
		log.Warn().Msgf("agent %s tree state %v does not match game state %v", a.Name, child.Value(), next)
		a.tree = nil
		return nil
	}
	a.cursor = child
	return nil
}

// Finish closes the game for the agent. A non-destructive agent resets its
// decisions so the tree can be reviewed from its root.
func (a *Agent) Finish() metrics.AgentMetric {
	if a.tree != nil && !a.Config.Permanent {
		if err := a.tree.ResetDecisions(); err == nil {
			a.cursor = a.tree.Root()
		}
	}
	return metrics.AgentMetric{
		Player:     a.Name,
		Regrowths:  a.regrowths,
		TreeMetric: a.collector.Complete(),
	}
}
