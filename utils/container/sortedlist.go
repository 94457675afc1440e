package container

import (
	"log"
	"sort"
)

// sortedItem 有序表中单个元素
// 功能：表示有序表中的一个元素，包含值和排序键
type sortedItem[T any] struct {
	Value T     // 元素的值（任意类型）
	Key   int64 // 排序键（越小越靠前）
}

// SortedList 按键有序的稳定列表
// 功能：维护一个按键升序排列的元素序列，支持按下标访问和移除
// 说明：插入采用上界二分，同键元素保持插入顺序（稳定性）；用于
// 事件队列等需要跳过阻塞元素（按下标前进而不重排）的场景
type SortedList[T any] struct {
	items []sortedItem[T]
}

// NewSortedList 创建有序表
// 功能：初始化一个新的有序表实例
// 返回：新创建的有序表指针
func NewSortedList[T any]() *SortedList[T] {
	return &SortedList[T]{items: make([]sortedItem[T], 0)}
}

// Len 获取有序表长度
// 功能：返回表中元素的数量
// 返回：表长度
func (l *SortedList[T]) Len() int {
	return len(l.items)
}

// Insert 插入元素
// 功能：将元素按键插入到正确位置，保持升序和同键插入顺序
// 参数：key-排序键，value-元素值
// 算法说明：
// 1. 二分查找第一个键大于key的位置（上界，保证稳定性）
// 2. 将元素插入该位置，其余元素后移
func (l *SortedList[T]) Insert(key int64, value T) {
	pos := sort.Search(len(l.items), func(i int) bool {
		return l.items[i].Key > key
	})
	l.items = append(l.items, sortedItem[T]{})
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = sortedItem[T]{Value: value, Key: key}
}

// At 按下标查看元素
// 功能：返回指定位置的元素但不移除（下标0为最小键元素）
// 参数：i-下标
// 返回：元素值
// 说明：下标越界属于调用方错误，直接panic
func (l *SortedList[T]) At(i int) T {
	if i < 0 || i >= len(l.items) {
		log.Panicf("sortedlist: index %d out of range [0, %d)", i, len(l.items))
	}
	return l.items[i].Value
}

// KeyAt 按下标查看元素的键
// 功能：返回指定位置元素的排序键
// 参数：i-下标
// 返回：排序键
func (l *SortedList[T]) KeyAt(i int) int64 {
	if i < 0 || i >= len(l.items) {
		log.Panicf("sortedlist: index %d out of range [0, %d)", i, len(l.items))
	}
	return l.items[i].Key
}

// RemoveAt 按下标移除元素
// 功能：移除并返回指定位置的元素，其余元素前移
// 参数：i-下标
// 返回：被移除的元素值
func (l *SortedList[T]) RemoveAt(i int) T {
	if i < 0 || i >= len(l.items) {
		log.Panicf("sortedlist: index %d out of range [0, %d)", i, len(l.items))
	}
	value := l.items[i].Value
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = sortedItem[T]{}
	l.items = l.items[:len(l.items)-1]
	return value
}

// Keys 获取所有元素的键
// 功能：按序返回表中所有元素的排序键
// 返回：键数组
func (l *SortedList[T]) Keys() []int64 {
	keys := make([]int64, len(l.items))
	for i, item := range l.items {
		keys[i] = item.Key
	}
	return keys
}
