package collections

import "fmt"

// AddArray appends items in order. It stops at the first failed append and
// keeps whatever was appended before it.
func (l *LinkedList[T]) AddArray(items []T) error {
	for _, item := range items {
		if err := l.PushBack(item); err != nil {
			return err
		}
	}
	return nil
}

// RemoveArray removes the first occurrence of each item, in order. Items that
// are not present are skipped and it stops once the list is empty.
func (l *LinkedList[T]) RemoveArray(items []T) {
	for _, item := range items {
		if l.size == 0 {
			return
		}
		if index := l.IndexOf(item); index < l.size {
			l.RemoveAt(index)
		}
	}
}

// AddAllFrom appends every element of src. src may be l itself, in which case
// the list is doubled.
func (l *LinkedList[T]) AddAllFrom(src *LinkedList[T]) error {
	n := src.size
	k := src.head
	for ; n > 0; n-- {
		item := src.at(k).value
		k = src.at(k).next
		if err := l.PushBack(item); err != nil {
			return err
		}
	}
	return nil
}

func (l *LinkedList[T]) RemoveAllFrom(src *LinkedList[T]) {
	l.RemoveArray(src.ToArray())
}

// Slice keeps only the half-open range [start, end). end is clamped to Len()
// and a negative start is treated as zero. An empty range empties the list.
func (l *LinkedList[T]) Slice(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > l.size {
		end = l.size
	}
	if start >= end || start >= l.size {
		l.Destroy()
		return
	}
	k := l.head
	for i := 0; i < start; i++ {
		next := l.at(k).next
		l.release(k)
		k = next
	}
	l.head = k
	for i := start + 1; i < end; i++ {
		k = l.at(k).next
	}
	l.tail = k
	rest := l.at(k).next
	l.at(k).next = none
	for rest != none {
		next := l.at(rest).next
		l.release(rest)
		rest = next
	}
	l.size = end - start
}

func (l *LinkedList[T]) ToArray() []T {
	items := make([]T, 0, l.size)
	for k := l.head; k != none; k = l.at(k).next {
		items = append(items, l.at(k).value)
	}
	return items
}

// CopyTo writes the elements into dst and returns how many were written. When
// dst has room past the last element the zero value is written there as a
// terminator.
func (l *LinkedList[T]) CopyTo(dst []T) (int, error) {
	if len(dst) < l.size {
		return 0, l.fail("copy", fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, l.size, len(dst)))
	}
	i := 0
	for k := l.head; k != none; k = l.at(k).next {
		dst[i] = l.at(k).value
		i++
	}
	if i < len(dst) {
		var zero T
		dst[i] = zero
	}
	return i, nil
}
