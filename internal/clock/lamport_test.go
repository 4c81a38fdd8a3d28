package clock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()

	require.NotNil(t, c)
	assert.Equal(t, int64(0), c.Now(), "Initial counter should be 0")
	assert.NotEmpty(t, c.NodeID())
	assert.NotEqual(t, c.NodeID(), New().NodeID(), "Node IDs should be unique")
}

func TestLamport_Tick(t *testing.T) {
	c := New()

	var previous int64
	for i := 0; i < 100; i++ {
		current := c.Tick()
		assert.Greater(t, current, previous, "Tick should always increase")
		previous = current
	}

	assert.Equal(t, int64(100), c.Now())
}

func TestLamport_Witness(t *testing.T) {
	tests := []struct {
		name     string
		local    int64
		remote   int64
		expected int64
	}{
		{name: "remote ahead", local: 5, remote: 10, expected: 11},
		{name: "remote behind", local: 15, remote: 10, expected: 16},
		{name: "equal", local: 10, remote: 10, expected: 11},
		{name: "zero remote", local: 3, remote: 0, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Reset(tt.local)

			assert.Equal(t, tt.expected, c.Witness(tt.remote))
			assert.Equal(t, tt.expected, c.Now())
		})
	}
}

func TestLamport_TickAfterWitness(t *testing.T) {
	c := New()
	c.Witness(41)

	assert.Equal(t, int64(43), c.Tick())
}

func TestLamport_Concurrent(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Tick()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Witness(0)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(2000), c.Now())
}

func BenchmarkLamport_Tick(b *testing.B) {
	c := New()
	for i := 0; i < b.N; i++ {
		c.Tick()
	}
}
