package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/container"
)

func TestQueueInit(t *testing.T) {
	q := &container.Queue[int]{}
	assert.Equal(t, 0, q.Len())
	_, ok := q.Front()
	assert.False(t, ok)
	_, ok = q.PopFront()
	assert.False(t, ok)
}

func TestQueueOperation(t *testing.T) {
	q := &container.Queue[int]{}

	// test: push

	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Values())

	// test: front pop

	v, ok := q.Front()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, q.Len())

	v, ok = q.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = q.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, q.Len())

	// test: drain and reuse

	v, ok = q.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 0, q.Len())
	_, ok = q.PopFront()
	assert.False(t, ok)

	q.PushBack(4)
	v, ok = q.Front()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{4}, q.Values())
}
