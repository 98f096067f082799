package ordering_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/ordering"
)

func TestOrderForEmptyList(t *testing.T) {
	assert.Equal(t, 1.0, ordering.OrderFor(nil, 0))
	assert.Equal(t, 1.0, ordering.OrderFor(nil, 5))
}

func TestOrderForMiddleInsert(t *testing.T) {
	orders := []float64{1.0, 2.0, 3.0}

	// between 1.0 and 2.0
	assert.Equal(t, 1.5, ordering.OrderFor(orders, 1))
	// before the first
	assert.Equal(t, 0.5, ordering.OrderFor(orders, 0))
	// after the last
	assert.Equal(t, 4.0, ordering.OrderFor(orders, 3))
	// positions past the end clamp to append
	assert.Equal(t, 4.0, ordering.OrderFor(orders, 99))
}

func TestOrderForPreservesMonotonicity(t *testing.T) {
	orders := []float64{1.0, 2.0, 3.0}
	for pos := 0; pos <= len(orders); pos++ {
		v := ordering.OrderFor(orders, pos)
		next := append(append([]float64{}, orders[:pos]...), v)
		next = append(next, orders[pos:]...)
		assert.True(t, sort.Float64sAreSorted(next), "insert at %d broke ordering: %v", pos, next)
	}
}

func TestRepeatedMidpointInsertsStaySorted(t *testing.T) {
	orders := []float64{1.0, 2.0}
	for i := 0; i < 50; i++ {
		v := ordering.OrderFor(orders, 1)
		assert.Greater(t, v, orders[0])
		assert.Less(t, v, orders[1])
		orders = []float64{orders[0], v}
	}
}

func TestOrderAfter(t *testing.T) {
	assert.Equal(t, 2.5, ordering.OrderAfter(2.0, 3.0, true))
	assert.Equal(t, 3.0, ordering.OrderAfter(2.0, 0, false))
}

func TestContiguousRun(t *testing.T) {
	assert.True(t, ordering.ContiguousRun(nil))
	assert.True(t, ordering.ContiguousRun([]int{3}))
	assert.True(t, ordering.ContiguousRun([]int{1, 2, 3}))
	assert.True(t, ordering.ContiguousRun([]int{3, 2, 1})) // order of ids does not matter
	assert.False(t, ordering.ContiguousRun([]int{1, 3}))
	assert.False(t, ordering.ContiguousRun([]int{0, 2, 3}))
	assert.False(t, ordering.ContiguousRun([]int{1, 1, 2}))
}

func TestReindex(t *testing.T) {
	assert.Empty(t, ordering.Reindex(0))
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, ordering.Reindex(3))
}
