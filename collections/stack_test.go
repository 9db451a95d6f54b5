package collections

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestStack(test *testing.T) {
	someStruct := &struct{}{}
	stk := NewStack[*struct{}]()
	stk.Push(someStruct)
	if stk.Len() == 0 {
		test.Error("Expected stack length > 0 after push")
	}
	if stk.Peek() != someStruct {
		test.Error("Expected peek to return the pushed item")
	}
	if stk.Pop() != someStruct {
		test.Error("Expected pop to return the pushed item")
	}
	if stk.Len() != 0 {
		test.Error("Expected stack length == 0 after pop")
	}
	if stk.Pop() != nil {
		test.Error("Expected pop on an empty stack to return nil")
	}
}

func TestStackOrder(test *testing.T) {
	stk := NewStack[string]()
	stk.Push("a")
	stk.Push("b")
	stk.Push("c")
	cln := stk.Clone()
	for _, want := range []string{"c", "b", "a"} {
		if got := stk.Pop(); got != want {
			test.Errorf("Expected %s, got %s", want, got)
		}
	}
	if cln.Len() != 3 {
		test.Errorf("Expected clone to keep 3 items, got %d", cln.Len())
	}
	cln.Clear()
	if cln.Len() != 0 {
		test.Error("Expected clone to be empty after clear")
	}
}

func TestStackConcurrency(test *testing.T) {
	msgs := []string{
		"69b5430c-dd89-4a19-b5ff-7ddcf1c3fa0a",
		"d6daad92-0c0f-4b2e-9223-03a6dc3b5731",
		"690c0887-512f-468e-af48-734436467425",
	}
	stk := NewStack[string]()
	var g errgroup.Group
	for _, msg := range msgs {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				if err := stk.Push(msg); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		test.Fatalf("push failed: %v", err)
	}
	if stk.Len() != 300 {
		test.Fatalf("Expected 300 items, got %d", stk.Len())
	}
	for stk.Len() > 0 {
		if msg := stk.Pop(); msg == "" {
			test.Fatal("Expected a message, got empty string")
		}
	}
}
