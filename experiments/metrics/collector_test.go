package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting operations", func(t *testing.T) {
		c := NewCollector()
		c.AddDecision(false)
		c.AddDecision(true)
		c.AddDecision(true)
		c.AddPruned(3)
		c.AddExternal(true)
		c.AddExternal(false)
		c.AddReset()

		require.Equal(t, TreeMetric{
			Decisions:         1,
			PermaDecisions:    2,
			Pruned:            3,
			ExternalMatched:   1,
			ExternalUnmatched: 1,
			Resets:            1,
		}, c.Complete())
	})

	t.Run("concurrent updates", func(t *testing.T) {
		c := NewCollector()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddDecision(false)
					c.AddPruned(2)
				}
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, 800, got.Decisions, "Every decision should be counted")
		require.Equal(t, 1600, got.Pruned, "Every pruned child should be counted")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.AddDecision(true)
		c.AddPruned(5)
		c.AddReset()

		require.Equal(t, TreeMetric{}, c.Complete())
	})
}
