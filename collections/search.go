package collections

// IndexOf returns the index of the first element equal to item, or Len() when
// there is none.
func (l *LinkedList[T]) IndexOf(item T) int {
	return l.FindIndex(func(v T) bool { return v == item })
}

// Find returns the first element matching predicate. The boolean is false when
// nothing matches.
func (l *LinkedList[T]) Find(predicate Predicate[T]) (T, bool) {
	for k := l.head; k != none; k = l.at(k).next {
		if item := l.at(k).value; predicate(item) {
			return item, true
		}
	}
	var item T
	return item, false
}

// FindIndex returns the index of the first element matching predicate, or
// Len() when nothing matches.
func (l *LinkedList[T]) FindIndex(predicate Predicate[T]) int {
	index := 0
	for k := l.head; k != none; k = l.at(k).next {
		if predicate(l.at(k).value) {
			break
		}
		index++
	}
	return index
}

func (l *LinkedList[T]) Has(item T) bool {
	return l.IndexOf(item) < l.size
}

// ForEach calls action on every element from head to tail. action must not
// modify the list.
func (l *LinkedList[T]) ForEach(action Action[T]) {
	for k := l.head; k != none; k = l.at(k).next {
		action(l.at(k).value)
	}
}
