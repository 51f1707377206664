package engine

import (
	"decisiontree/experiments/metrics"
	"decisiontree/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Local runs a game between agents in the current process.
type Local struct {
	State  game.State
	Agents []*Agent
}

func LocalEngine(state game.State, agents []*Agent) *Local {
	if len(agents) < 2 {
		panic("need at least two agents")
	}
	names := make(map[string]bool, len(agents))
	for _, agent := range agents {
		if names[agent.Name] {
			panic(fmt.Sprintf("duplicate agent name %s", agent.Name))
		}
		names[agent.Name] = true
	}
	return &Local{
		State:  state,
		Agents: agents,
	}
}

func (e *Local) agent(player string) (*Agent, error) {
	for _, agent := range e.Agents {
		if agent.Name == player {
			return agent, nil
		}
	}
	return nil, fmt.Errorf("no agent plays %s", player)
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.AgentMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %s is starting", gameMetric.StartingPlayer)

	for e.State.Winner() == "" && gameMetric.TotalMoves < MaxMoves && len(e.State.LegalMoves()) > 0 {
		current, err := e.agent(e.State.Player())
		if err != nil {
			return "", gameMetric, nil, err
		}

		move, err := current.Choose(e.State)
		if err != nil {
			return "", gameMetric, nil, fmt.Errorf("agent %s failed to choose: %w", current.Name, err)
		}
		next := e.State.Play(move)
		log.Debug().Msgf("player %s plays %v", current.Name, move)

		for _, other := range e.Agents {
			if other == current {
				continue
			}
			if err := other.Observe(move, next); err != nil {
				return "", gameMetric, nil, fmt.Errorf("agent %s failed to observe %v: %w", other.Name, move, err)
			}
		}

		e.State = next
		gameMetric.TotalMoves++
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	agentMetrics := make([]metrics.AgentMetric, 0, len(e.Agents))
	for _, agent := range e.Agents {
		agentMetrics = append(agentMetrics, agent.Finish())
	}
	return gameMetric.Winner, gameMetric, agentMetrics, nil
}
