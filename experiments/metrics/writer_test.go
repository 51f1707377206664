package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "pruning")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "pruning"), filepath.Dir(w.Dir()), "Writer should nest a timestamped folder under the experiment name")

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Permanent: true, Horizon: 4, Seed: 7}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 2, "Should write header and one row")
		require.Equal(t, []string{w.RunID().String(), "1", "true", "4", "7"}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: "Player1",
				Winner:         "Player2",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     9,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "Player2", rows[1][5])
		require.Equal(t, "1s", rows[1][8])
		require.Equal(t, "9", rows[1][9])
	})

	t.Run("agent records", func(t *testing.T) {
		err := w.WriteAgentRecords([]AgentRecord{{
			Game: 1, Agent: 2,
			AgentMetric: AgentMetric{
				Player:     "Player1",
				Regrowths:  2,
				TreeMetric: TreeMetric{PermaDecisions: 3, Pruned: 6},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{w.RunID().String(), "1", "2", "Player1", "2", "0", "3", "6", "0", "0", "0"}, rows[1])
	})
}
