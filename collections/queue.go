package collections

import "sync"

// Queue is a FIFO guarded by a mutex.
type Queue[T comparable] struct {
	mu   sync.Mutex
	list *LinkedList[T]
}

func NewQueue[T comparable](opts ...Option) *Queue[T] {
	return &Queue[T]{
		list: NewLinkedList[T](opts...),
	}
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}

func (q *Queue[T]) Enqueue(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.PushBack(item)
}

func (q *Queue[T]) Dequeue() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, _ := q.list.PopFront()
	return item
}

func (q *Queue[T]) Peek() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	item, _ := q.list.First()
	return item
}
