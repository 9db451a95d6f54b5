package collections

import "sync"

// List is a read/write locked LinkedList for callers that share one list
// between goroutines.
type List[T comparable] struct {
	mu    sync.RWMutex
	items *LinkedList[T]
}

func NewList[T comparable](opts ...Option) *List[T] {
	return &List[T]{
		items: NewLinkedList[T](opts...),
	}
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items.Len()
}

func (l *List[T]) Has(item T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items.Has(item)
}

func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items.ToArray()
}

func (l *List[T]) Delete(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	index := l.items.IndexOf(item)
	if index == l.items.Len() {
		return false
	}
	_, err := l.items.RemoveAt(index)
	return err == nil
}

func (l *List[T]) Add(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items.PushBack(item)
}

// Update applies fn to the underlying list under the write lock.
func (l *List[T]) Update(fn func(items *LinkedList[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.items)
}

func (l *List[T]) Clone() (*List[T], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items, err := l.items.Clone()
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items.Destroy()
}
