package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/container"
)

func TestSortedListInit(t *testing.T) {
	l := container.NewSortedList[string]()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Keys())
}

func TestSortedListOrder(t *testing.T) {
	l := container.NewSortedList[string]()

	l.Insert(30, "a")
	l.Insert(10, "b")
	l.Insert(20, "c")
	l.Insert(10, "d")
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int64{10, 10, 20, 30}, l.Keys())

	// 同键元素保持插入顺序
	assert.Equal(t, "b", l.At(0))
	assert.Equal(t, "d", l.At(1))
	assert.Equal(t, "c", l.At(2))
	assert.Equal(t, "a", l.At(3))
	assert.Equal(t, int64(10), l.KeyAt(0))
	assert.Equal(t, int64(30), l.KeyAt(3))
}

func TestSortedListRemove(t *testing.T) {
	l := container.NewSortedList[string]()
	l.Insert(1, "a")
	l.Insert(2, "b")
	l.Insert(3, "c")

	v := l.RemoveAt(1)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []int64{1, 3}, l.Keys())

	v = l.RemoveAt(0)
	assert.Equal(t, "a", v)
	v = l.RemoveAt(0)
	assert.Equal(t, "c", v)
	assert.Equal(t, 0, l.Len())
}

func TestSortedListBadIndex(t *testing.T) {
	l := container.NewSortedList[string]()
	l.Insert(1, "a")

	assert.Panics(t, func() { l.At(1) })
	assert.Panics(t, func() { l.At(-1) })
	assert.Panics(t, func() { l.KeyAt(1) })
	assert.Panics(t, func() { l.RemoveAt(1) })
}
