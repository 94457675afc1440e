package container

// queueNode 链式队列中的节点
// 功能：表示队列中的一个节点，持有值和后继指针
type queueNode[T any] struct {
	value T
	next  *queueNode[T]
}

// Queue 链式FIFO队列
// 功能：实现一个通用的先进先出队列数据结构
// 说明：支持泛型，专门用于道路上的车辆排队（队首为最靠近路口的车辆）
type Queue[T any] struct {
	head, tail *queueNode[T] // 头尾节点指针
	length     int           // 队列长度
}

// Len 获取队列长度
// 功能：返回队列中的元素数量
// 返回：队列长度
func (q *Queue[T]) Len() int {
	return q.length
}

// PushBack 向队尾插入元素
// 功能：在队列尾部添加一个新元素
// 参数：value-要添加的元素值
// 算法说明：
// 1. 创建新节点
// 2. 如果队列为空，头尾指针都指向新节点
// 3. 否则挂接到尾节点之后并更新尾指针
func (q *Queue[T]) PushBack(value T) {
	node := &queueNode[T]{value: value}
	if q.tail == nil {
		q.head = node
		q.tail = node
	} else {
		q.tail.next = node
		q.tail = node
	}
	q.length++
}

// PopFront 移除并返回队首元素
// 功能：从队列头部移除一个元素
// 返回：队首元素值和是否成功（队列为空时返回零值和false）
// 说明：按值返回，调用方不持有任何已释放节点的引用
func (q *Queue[T]) PopFront() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	node := q.head
	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	node.next = nil
	q.length--
	return node.value, true
}

// Front 查看队首元素
// 功能：返回队首元素但不移除
// 返回：队首元素值和是否成功（队列为空时返回零值和false）
func (q *Queue[T]) Front() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// Values 获取队列中所有元素
// 功能：按从队首到队尾的顺序返回所有元素
// 返回：元素数组
func (q *Queue[T]) Values() []T {
	values := make([]T, 0, q.length)
	for node := q.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}
