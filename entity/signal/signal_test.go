package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/signal"
)

func TestControllerRotation(t *testing.T) {
	c := signal.NewController([][]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}})
	assert.Equal(t, 4, c.PhaseCount())
	assert.Equal(t, 0, c.Current())

	assert.True(t, c.Open(0))
	assert.True(t, c.Open(4))
	assert.False(t, c.Open(1))
	assert.False(t, c.Open(7))

	c.Change()
	assert.Equal(t, 1, c.Current())
	assert.False(t, c.Open(0))
	assert.True(t, c.Open(1))
	assert.True(t, c.Open(5))

	// 相位按模轮转回到起点
	c.Change()
	c.Change()
	c.Change()
	assert.Equal(t, 0, c.Current())
	assert.True(t, c.Open(0))
}

func TestControllerSinglePhase(t *testing.T) {
	// 单一相位时道路始终放行
	c := signal.NewController([][]int{{0}})
	for i := 0; i < 5; i++ {
		assert.True(t, c.Open(0))
		assert.False(t, c.Open(1))
		c.Change()
		assert.Equal(t, 0, c.Current())
	}
}

func TestControllerEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { signal.NewController(nil) })
}
