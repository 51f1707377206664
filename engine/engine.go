package engine

import "decisiontree/experiments/metrics"

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till there's a winner, no legal move is left or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, agentMetrics []metrics.AgentMetric, err error)
}
