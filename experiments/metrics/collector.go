package metrics

import (
	"sync/atomic"
	"time"
)

// TreeMetric counts the operations applied to one decision tree.
type TreeMetric struct {
	Decisions         int // Non-destructive commits
	PermaDecisions    int // Destructive commits
	Pruned            int // Children discarded by destructive commits
	ExternalMatched   int
	ExternalUnmatched int
	Resets            int
}

type AgentMetric struct {
	Player    string
	Regrowths int // Trees grown from scratch during the game
	TreeMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	AddDecision(permanent bool)
	AddPruned(n int)
	AddExternal(matched bool)
	AddReset()
	Complete() TreeMetric
}

type collector struct {
	decisions         atomic.Int32
	permaDecisions    atomic.Int32
	pruned            atomic.Int32
	externalMatched   atomic.Int32
	externalUnmatched atomic.Int32
	resets            atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddDecision(permanent bool) {
	if permanent {
		m.permaDecisions.Add(1)
	} else {
		m.decisions.Add(1)
	}
}

func (m *collector) AddPruned(n int) {
	m.pruned.Add(int32(n))
}

func (m *collector) AddExternal(matched bool) {
	if matched {
		m.externalMatched.Add(1)
	} else {
		m.externalUnmatched.Add(1)
	}
}

func (m *collector) AddReset() {
	m.resets.Add(1)
}

func (m *collector) Complete() TreeMetric {
	return TreeMetric{
		Decisions:         int(m.decisions.Load()),
		PermaDecisions:    int(m.permaDecisions.Load()),
		Pruned:            int(m.pruned.Load()),
		ExternalMatched:   int(m.externalMatched.Load()),
		ExternalUnmatched: int(m.externalUnmatched.Load()),
		Resets:            int(m.resets.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddDecision(permanent bool) {}
func (m *dummyCollector) AddPruned(n int)            {}
func (m *dummyCollector) AddExternal(matched bool)   {}
func (m *dummyCollector) AddReset()                  {}
func (m *dummyCollector) Complete() TreeMetric       { return TreeMetric{} }
