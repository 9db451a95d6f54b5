package collections

import "sync"

// Stack is a LIFO guarded by a mutex. Items are pushed and popped at the head
// of the underlying list.
type Stack[T comparable] struct {
	mu   sync.Mutex
	list *LinkedList[T]
}

func NewStack[T comparable](opts ...Option) *Stack[T] {
	return &Stack[T]{
		list: NewLinkedList[T](opts...),
	}
}

func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Len()
}

func (s *Stack[T]) Push(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.PushFront(item)
}

// Pop returns the zero value when the stack is empty.
func (s *Stack[T]) Pop() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, _ := s.list.PopFront()
	return item
}

func (s *Stack[T]) Peek() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, _ := s.list.First()
	return item
}

func (s *Stack[T]) Clone() *Stack[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.list.Clone()
	if err != nil {
		panic(err)
	}
	return &Stack[T]{list: list}
}

func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Destroy()
}
