package seq_test

import (
	"sync"
	"testing"

	"github.com/leap-fish/ntype/seq"
	"github.com/leap-fish/ntype/typeid"
	"github.com/stretchr/testify/assert"
)

func TestCounter_StartsAtZero(t *testing.T) {
	c := &seq.Counter{}

	assert.Equal(t, typeid.ID(0), c.Peek())
	assert.Equal(t, typeid.ID(0), c.Next())
	assert.Equal(t, typeid.ID(1), c.Next())
	assert.Equal(t, typeid.ID(2), c.Next())
	assert.Equal(t, typeid.ID(3), c.Peek())
}

func TestCounter_ConcurrentNoDuplicates(t *testing.T) {
	const workers = 16
	const perWorker = 1000

	c := &seq.Counter{}
	results := make([][]typeid.ID, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], c.Next())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[typeid.ID]bool, workers*perWorker)
	for _, ids := range results {
		for i, id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
			if i > 0 {
				assert.Greater(t, id, ids[i-1])
			}
		}
	}

	// No gaps: exactly the values [0, workers*perWorker) were handed out.
	assert.Len(t, seen, workers*perWorker)
	for id := typeid.ID(0); id < workers*perWorker; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
	assert.Equal(t, typeid.ID(workers*perWorker), c.Peek())
}

func TestNext_UsesProcessCounter(t *testing.T) {
	before := seq.Process.Peek()
	id := seq.Next()

	assert.GreaterOrEqual(t, id, before)
	assert.Greater(t, seq.Process.Peek(), id)
}

func BenchmarkCounter_Next(b *testing.B) {
	c := &seq.Counter{}
	for i := 0; i < b.N; i++ {
		_ = c.Next()
	}
}
