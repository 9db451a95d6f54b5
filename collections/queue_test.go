package collections

import "testing"

func TestQueue(test *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 3; i++ {
		if err := q.Enqueue(i); err != nil {
			test.Fatalf("enqueue failed: %v", err)
		}
	}
	if q.Peek() != 1 {
		test.Errorf("Expected peek 1, got %d", q.Peek())
	}
	for want := 1; want <= 3; want++ {
		if got := q.Dequeue(); got != want {
			test.Errorf("Expected %d, got %d", want, got)
		}
	}
	if q.Len() != 0 {
		test.Errorf("Expected empty queue, got %d items", q.Len())
	}
	if q.Dequeue() != 0 {
		test.Error("Expected dequeue on an empty queue to return the zero value")
	}
}

func TestQueueLimit(test *testing.T) {
	q := NewQueue[string](WithLimit(1))
	if err := q.Enqueue("a"); err != nil {
		test.Fatalf("enqueue failed: %v", err)
	}
	if err := q.Enqueue("b"); err == nil {
		test.Fatal("Expected enqueue past the limit to fail")
	}
	q.Dequeue()
	if err := q.Enqueue("b"); err != nil {
		test.Fatalf("Expected enqueue after dequeue to succeed: %v", err)
	}
}
