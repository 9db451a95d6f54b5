package collections

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// link addresses a node slot in the arena. Slot k lives at nodes[k-1] so the
// zero link means "no node" and the zero LinkedList is a valid empty list.
type link int

const none link = 0

type node[T any] struct {
	value T
	next  link
}

// LinkedList is a singly linked sequence with O(1) access to both ends.
//
// Nodes are kept in an arena and chained by slot index. Released slots go on a
// free list and are reused by later insertions. Elements are compared with ==,
// which is identity for pointer element types and value equality otherwise.
//
// A LinkedList is not safe for concurrent use.
type LinkedList[T comparable] struct {
	nodes []node[T]
	free  link
	head  link
	tail  link
	size  int
	cfg   config
}

type Predicate[T any] func(item T) bool

type Action[T any] func(item T)

func NewLinkedList[T comparable](opts ...Option) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, opt := range opts {
		opt(&l.cfg)
	}
	return l
}

// ID returns the list identity, assigning a random one on first use.
func (l *LinkedList[T]) ID() uuid.UUID {
	if l.cfg.id == uuid.Nil {
		l.cfg.id = uuid.New()
	}
	return l.cfg.id
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Destroy releases every node and leaves an empty list. Options and identity
// are retained so the list can be reused.
func (l *LinkedList[T]) Destroy() {
	l.nodes = nil
	l.free = none
	l.head = none
	l.tail = none
	l.size = 0
}

func (l *LinkedList[T]) Clear() {
	l.Destroy()
}

// Clone copies the chain into a new list with the same options and a fresh
// identity.
func (l *LinkedList[T]) Clone() (*LinkedList[T], error) {
	return l.CloneWith()
}

// CloneWith is Clone with opts applied on top of the inherited options. If a
// node cannot be allocated the partial copy is released and nil is returned.
func (l *LinkedList[T]) CloneWith(opts ...Option) (*LinkedList[T], error) {
	cfg := l.cfg
	cfg.id = uuid.Nil
	for _, opt := range opts {
		opt(&cfg)
	}
	cln := &LinkedList[T]{cfg: cfg}
	cln.nodes = make([]node[T], 0, l.size)
	for k := l.head; k != none; k = l.at(k).next {
		if err := cln.PushBack(l.at(k).value); err != nil {
			cln.Destroy()
			return nil, l.fail("clone", err)
		}
	}
	return cln, nil
}

func (l *LinkedList[T]) PushBack(item T) error {
	k, err := l.alloc(item)
	if err != nil {
		return l.fail("push back", err)
	}
	if l.size == 0 {
		l.head = k
	} else {
		l.at(l.tail).next = k
	}
	l.tail = k
	l.size++
	return nil
}

// PopBack removes the last element. The new tail is found by walking from
// the head.
func (l *LinkedList[T]) PopBack() (T, error) {
	var item T
	if l.size == 0 {
		return item, l.fail("pop back", ErrEmpty)
	}
	k := l.tail
	item = l.at(k).value
	if l.size == 1 {
		l.head = none
		l.tail = none
	} else {
		prev := l.walk(l.size - 2)
		l.at(prev).next = none
		l.tail = prev
	}
	l.release(k)
	l.size--
	return item, nil
}

func (l *LinkedList[T]) PushFront(item T) error {
	k, err := l.alloc(item)
	if err != nil {
		return l.fail("push front", err)
	}
	l.at(k).next = l.head
	l.head = k
	if l.size == 0 {
		l.tail = k
	}
	l.size++
	return nil
}

func (l *LinkedList[T]) PopFront() (T, error) {
	var item T
	if l.size == 0 {
		return item, l.fail("pop front", ErrEmpty)
	}
	k := l.head
	item = l.at(k).value
	l.head = l.at(k).next
	if l.head == none {
		l.tail = none
	}
	l.release(k)
	l.size--
	return item, nil
}

func (l *LinkedList[T]) Unshift(item T) error {
	return l.PushFront(item)
}

func (l *LinkedList[T]) Shift() (T, error) {
	return l.PopFront()
}

// InsertAt places item so that it ends up at index. Valid indices are
// 0 through Len() inclusive.
func (l *LinkedList[T]) InsertAt(index int, item T) error {
	if index < 0 || index > l.size {
		return l.fail("insert", fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size))
	}
	if index == 0 {
		return l.PushFront(item)
	}
	if index == l.size {
		return l.PushBack(item)
	}
	k, err := l.alloc(item)
	if err != nil {
		return l.fail("insert", err)
	}
	prev := l.walk(index - 1)
	l.at(k).next = l.at(prev).next
	l.at(prev).next = k
	l.size++
	return nil
}

func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	var item T
	if err := l.checkIndex(index); err != nil {
		return item, l.fail("remove", err)
	}
	if index == 0 {
		return l.PopFront()
	}
	if index == l.size-1 {
		return l.PopBack()
	}
	prev := l.walk(index - 1)
	k := l.at(prev).next
	item = l.at(k).value
	l.at(prev).next = l.at(k).next
	l.release(k)
	l.size--
	return item, nil
}

// SetAt overwrites the element at index in place.
func (l *LinkedList[T]) SetAt(index int, item T) error {
	if err := l.checkIndex(index); err != nil {
		return l.fail("set", err)
	}
	l.at(l.walk(index)).value = item
	return nil
}

func (l *LinkedList[T]) GetAt(index int) (T, error) {
	var item T
	if err := l.checkIndex(index); err != nil {
		return item, l.fail("get", err)
	}
	return l.at(l.walk(index)).value, nil
}

func (l *LinkedList[T]) First() (T, error) {
	var item T
	if l.size == 0 {
		return item, l.fail("first", ErrEmpty)
	}
	return l.at(l.head).value, nil
}

func (l *LinkedList[T]) Last() (T, error) {
	var item T
	if l.size == 0 {
		return item, l.fail("last", ErrEmpty)
	}
	return l.at(l.tail).value, nil
}

// Values yields the elements from head to tail.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := l.head; k != none; k = l.at(k).next {
			if !yield(l.at(k).value) {
				return
			}
		}
	}
}

// All yields index/element pairs from head to tail.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for k := l.head; k != none; k = l.at(k).next {
			if !yield(i, l.at(k).value) {
				return
			}
			i++
		}
	}
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *LinkedList[T]) at(k link) *node[T] {
	return &l.nodes[k-1]
}

// walk returns the link of the node at index, which must be in [0, size).
func (l *LinkedList[T]) walk(index int) link {
	k := l.head
	for ; index > 0; index-- {
		k = l.at(k).next
	}
	return k
}

// alloc takes a slot from the free list or grows the arena. Pointers returned
// by at are invalid after alloc.
func (l *LinkedList[T]) alloc(item T) (link, error) {
	if l.cfg.limit > 0 && l.size >= l.cfg.limit {
		return none, fmt.Errorf("%w: limit of %d nodes reached", ErrAllocation, l.cfg.limit)
	}
	if l.free != none {
		k := l.free
		n := l.at(k)
		l.free = n.next
		n.value = item
		n.next = none
		return k, nil
	}
	l.nodes = append(l.nodes, node[T]{value: item})
	return link(len(l.nodes)), nil
}

func (l *LinkedList[T]) release(k link) {
	var zero T
	n := l.at(k)
	n.value = zero
	n.next = l.free
	l.free = k
}

func (l *LinkedList[T]) checkIndex(index int) error {
	if l.size == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

func (l *LinkedList[T]) fail(op string, err error) error {
	if l.cfg.logger != nil {
		l.cfg.logger.Printf("[List %s] ERROR: %s failed: %v", l.ID(), op, err)
	}
	return err
}
