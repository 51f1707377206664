package experiments

import (
	"decisiontree/engine"
	"decisiontree/experiments/metrics"
	"decisiontree/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

var players = [2]string{"Player1", "Player2"}

// Summary counts the wins of each agent over the whole experiment.
type Summary struct {
	Dir   string
	Games int
	Wins  map[int]int // AgentConfig.ID -> games won
}

// Run plays every matchup of config and stores the records under root.
func Run(config Config, root string) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid config: %w", err)
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	agentRecords := []metrics.AgentRecord{}
	summary := Summary{Wins: map[int]int{}}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		base1 := config.agent(matchup.Agent1)
		base2 := config.agent(matchup.Agent2)
		config1, config2 := base1, base2

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.Matchups), config1, config2)

		for i := 0; i < config.Games; i++ {
			count++
			// Vary seeds per game and alternate the starting player
			config1.Seed, config2.Seed = gameSeeds(base1, base2, count)
			start := game.NewNim(config.Heap, config.MaxTake, players)
			start.Turn = i % 2

			winner, gameMetric, agentMetrics, err := runGame(start, config1, config2)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			ids := []int{config1.ID, config2.ID}
			for ai, am := range agentMetrics {
				agentRecords = append(agentRecords, metrics.AgentRecord{
					Game:        count,
					Agent:       ids[ai],
					AgentMetric: am,
				})
				if am.Player == winner {
					summary.Wins[ids[ai]]++
				}
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(config.Matchups), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", config.Name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(root, config.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteAgentRecords(agentRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write agent records: %w", err)
	}
	log.Info().Str("run", writer.RunID().String()).Msg("stored agent records")

	return summary, nil
}

// gameSeeds derives the seeds of both sides of a game. The second side is
// offset so that mirror matchups do not replay the same random stream.
func gameSeeds(config1, config2 metrics.AgentConfig, game int) (uint64, uint64) {
	return config1.Seed + uint64(game), config2.Seed + uint64(game) + 1<<32
}

// runGame executes a single game between two agents and returns the winner
func runGame(start game.State, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.AgentMetric, error) {
	agents := []*engine.Agent{
		engine.NewAgent(players[0], config1),
		engine.NewAgent(players[1], config2),
	}
	e := engine.LocalEngine(start, agents)

	return e.Run()
}
