package collections

import (
	"testing"
)

type testType struct {
	id int
}

func TestList(test *testing.T) {
	test1 := testType{1}
	test2 := testType{2}
	test3 := testType{3}
	test4 := testType{4}

	list := NewList[testType]()

	list.Add(test1)
	list.Add(test2)
	list.Add(test3)
	list.Add(test4)

	if !list.Delete(test2) {
		test.Error("Expected delete of test2 to succeed")
	}
	if list.Delete(test2) {
		test.Error("Expected second delete of test2 to fail")
	}

	if !list.Has(test1) {
		test.Error("Expected list to contain test1")
	}

	if list.Has(test2) {
		test.Error("Expected list to not contain test2 after deletion")
	}

	if !list.Has(test3) {
		test.Error("Expected list to contain test3")
	}

	if !list.Has(test4) {
		test.Error("Expected list to contain test4")
	}

	all := list.All()
	if len(all) != 3 || all[0] != test1 || all[1] != test3 || all[2] != test4 {
		test.Errorf("Expected [test1 test3 test4], got %v", all)
	}
}

func TestListCloneAndUpdate(test *testing.T) {
	list := NewList[int](WithLimit(4))
	list.Add(1)
	list.Add(2)

	cln, err := list.Clone()
	if err != nil {
		test.Fatalf("clone failed: %v", err)
	}

	err = list.Update(func(items *LinkedList[int]) error {
		return items.AddArray([]int{3, 4, 5})
	})
	if err == nil {
		test.Fatal("Expected update past the limit to fail")
	}
	if list.Len() != 4 {
		test.Errorf("Expected partial append to leave 4 items, got %d", list.Len())
	}
	if cln.Len() != 2 {
		test.Errorf("Expected clone to keep 2 items, got %d", cln.Len())
	}

	list.Clear()
	if list.Len() != 0 || cln.Len() != 2 {
		test.Error("Expected clear to only affect the original list")
	}
}
