package experiments

import (
	"decisiontree/experiments/metrics"
	"decisiontree/meta"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err, "expected %s to exist", path)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err, "expected %s to be valid CSV", path)
	return records
}

func smallConfig() Config {
	return Config{
		Name:    "small",
		Games:   3,
		Heap:    7,
		MaxTake: 3,
		Agents: []metrics.AgentConfig{
			{ID: 1, Permanent: false, Horizon: 3, Seed: 10},
			{ID: 2, Permanent: true, Horizon: 3, Seed: 20},
		},
		Matchups: []Matchup{
			{Agent1: 1, Agent2: 2},
			{Agent1: 2, Agent2: 2},
		},
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate(), "expected default config to be valid")
	require.Equal(t, meta.HEAP, config.Heap, "expected default heap from meta")
	require.Equal(t, meta.GAMES, config.Games, "expected default games from meta")
	require.Len(t, config.Matchups, 4, "expected every pairing of the two default agents")
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err, "expected defaults without a file")
		require.Equal(t, DefaultConfig(), config, "expected defaults without a file")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "experiment.yaml")
		data := []byte(`
name: custom
games: 5
agents:
  - id: 7
    permanent: true
    horizon: 2
    seed: 99
matchups:
  - agent1: 7
    agent2: 7
`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		config, err := LoadConfig(path)
		require.NoError(t, err, "expected valid config file to load")
		require.Equal(t, "custom", config.Name)
		require.Equal(t, 5, config.Games)
		require.Equal(t, meta.HEAP, config.Heap, "expected unset heap to keep its default")
		require.Equal(t, []metrics.AgentConfig{{ID: 7, Permanent: true, Horizon: 2, Seed: 99}}, config.Agents)
		require.Equal(t, []Matchup{{Agent1: 7, Agent2: 7}}, config.Matchups)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist, "expected missing file error")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: [1, 2"), 0644))
		_, err := LoadConfig(path)
		require.Error(t, err, "expected parse error")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: 0\n"), 0644))
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "games must be positive")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"empty name", func(c *Config) { c.Name = "" }, "name must not be empty"},
		{"zero heap", func(c *Config) { c.Heap = 0 }, "heap must be positive"},
		{"zero max take", func(c *Config) { c.MaxTake = 0 }, "max_take must be positive"},
		{"duplicate agent", func(c *Config) { c.Agents[1].ID = 1 }, "duplicate agent id 1"},
		{"zero horizon", func(c *Config) { c.Agents[0].Horizon = 0 }, "agent 1 horizon must be positive"},
		{"no matchups", func(c *Config) { c.Matchups = nil }, "at least one matchup"},
		{"unknown agent", func(c *Config) { c.Matchups[0].Agent2 = 3 }, "unknown agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := smallConfig()
			tt.modify(&config)
			require.ErrorContains(t, config.Validate(), tt.errMsg)
		})
	}
}

func TestGameSeeds(t *testing.T) {
	t.Run("mirror matchup", func(t *testing.T) {
		agent := metrics.AgentConfig{ID: 1, Horizon: 3, Seed: 5}
		seed1, seed2 := gameSeeds(agent, agent, 1)
		require.NotEqual(t, seed1, seed2, "Both sides of a mirror matchup should draw different streams")
	})

	t.Run("games differ", func(t *testing.T) {
		agent1 := metrics.AgentConfig{ID: 1, Horizon: 3, Seed: 5}
		agent2 := metrics.AgentConfig{ID: 2, Horizon: 3, Seed: 9}
		first1, first2 := gameSeeds(agent1, agent2, 1)
		second1, second2 := gameSeeds(agent1, agent2, 2)
		require.NotEqual(t, first1, second1)
		require.NotEqual(t, first2, second2)
	})
}

func TestRun(t *testing.T) {
	t.Run("writes records", func(t *testing.T) {
		config := smallConfig()
		summary, err := Run(config, t.TempDir())
		require.NoError(t, err, "expected experiment to complete")
		require.Equal(t, 6, summary.Games, "expected games for every matchup")

		wins := 0
		for _, w := range summary.Wins {
			wins += w
		}
		require.Equal(t, summary.Games, wins, "expected a winner in every game")

		configs := readCSV(t, filepath.Join(summary.Dir, "agent_configs.csv"))
		require.Len(t, configs, 1+len(config.Agents), "expected header and one row per agent")

		games := readCSV(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.Len(t, games, 1+summary.Games, "expected header and one row per game")

		agents := readCSV(t, filepath.Join(summary.Dir, "agent_records.csv"))
		require.Len(t, agents, 1+2*summary.Games, "expected header and two rows per game")
	})

	t.Run("invalid config", func(t *testing.T) {
		config := smallConfig()
		config.Games = 0
		root := t.TempDir()
		_, err := Run(config, root)
		require.Error(t, err, "expected invalid config to be rejected")

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Empty(t, entries, "expected nothing written for an invalid config")
	})
}
