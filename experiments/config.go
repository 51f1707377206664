package experiments

import (
	"decisiontree/experiments/metrics"
	"decisiontree/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Matchup pairs two agents by AgentConfig.ID. Agent1 plays Player1.
type Matchup struct {
	Agent1 int `yaml:"agent1"`
	Agent2 int `yaml:"agent2"`
}

// Config describes an experiment: which agents meet, how often and on which
// heap.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // Per matchup
	Heap     int                   `yaml:"heap"`
	MaxTake  int                   `yaml:"max_take"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups []Matchup             `yaml:"matchups"`
}

func DefaultConfig() Config {
	return Config{
		Name:    "pruning",
		Games:   meta.GAMES,
		Heap:    meta.HEAP,
		MaxTake: meta.MAX_TAKE,
		Agents: []metrics.AgentConfig{
			{ID: 1, Permanent: false, Horizon: meta.HORIZON, Seed: 1},
			{ID: 2, Permanent: true, Horizon: meta.HORIZON, Seed: 2},
		},
		// Same config for both players, then each against the other
		Matchups: []Matchup{
			{Agent1: 1, Agent2: 1},
			{Agent1: 2, Agent2: 2},
			{Agent1: 1, Agent2: 2},
			{Agent1: 2, Agent2: 1},
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Heap < 1 {
		errs = append(errs, fmt.Errorf("heap must be positive, got %d", c.Heap))
	}
	if c.MaxTake < 1 {
		errs = append(errs, fmt.Errorf("max_take must be positive, got %d", c.MaxTake))
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", agent.ID))
		}
		ids[agent.ID] = true
		if agent.Horizon < 1 {
			errs = append(errs, fmt.Errorf("agent %d horizon must be positive, got %d", agent.ID, agent.Horizon))
		}
	}

	if len(c.Matchups) == 0 {
		errs = append(errs, errors.New("at least one matchup is required"))
	}
	for _, m := range c.Matchups {
		if !ids[m.Agent1] || !ids[m.Agent2] {
			errs = append(errs, fmt.Errorf("matchup %d vs %d references an unknown agent", m.Agent1, m.Agent2))
		}
	}
	return errors.Join(errs...)
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
