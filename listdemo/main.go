package main

import (
	"fmt"
	"log"
	"os"

	"seqlist/collections"

	"golang.org/x/sync/errgroup"
)

func printList(name string, list *collections.LinkedList[int]) {
	fmt.Printf("%s: %s (n = %d) @%s\n", name, list, list.Len(), list.ID())
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	list := collections.NewLinkedList[int](collections.WithLogger(logger))

	fmt.Printf("List size is %d\n", list.Len())

	list.PushBack(30)
	list.PushBack(50)
	list.PushBack(70)
	popped, _ := list.PopBack()
	fmt.Printf("List popped with %d\n", popped)
	list.PushBack(90)
	list.PushBack(180)
	list.Unshift(20)
	list.Unshift(10)
	list.Unshift(0)
	list.Unshift(-10)
	shifted, _ := list.Shift()
	fmt.Printf("List shifted with %d\n", shifted)
	printList("List", list)

	fmt.Printf("Item 50 is at index %d\n", list.IndexOf(50))
	if item, ok := list.Find(func(v int) bool { return v > 0 && v%45 == 0 }); ok {
		fmt.Printf("Item %d in the list is divisible by 45\n", item)
	}
	if item, ok := list.Find(func(v int) bool { return v > 0 && v%60 == 0 }); ok {
		fmt.Printf("Item %d in the list is divisible by 60\n", item)
	}
	notFound := list.FindIndex(func(int) bool { return false }) == list.Len()
	fmt.Printf("Unable to find item is fine? %t\n", notFound)

	clones := make([]*collections.LinkedList[int], 2)
	for i := range clones {
		cln, err := list.Clone()
		if err != nil {
			logger.Fatalf("clone failed: %v", err)
		}
		clones[i] = cln
	}
	list.Destroy()
	fmt.Printf("List is empty? %t\n", list.IsEmpty())

	var g errgroup.Group
	g.Go(func() error {
		clones[0].Slice(1, 3)
		return nil
	})
	g.Go(func() error {
		return clones[1].AddArray([]int{25, 26, 27, 28})
	})
	if err := g.Wait(); err != nil {
		logger.Fatalf("clone worker failed: %v", err)
	}
	printList("Clone 1", clones[0])
	printList("Clone 2", clones[1])

	_, err := list.PopBack()
	fmt.Printf("Unable to pop item is fine? %t\n", err != nil)
	_, err = list.RemoveAt(0)
	fmt.Printf("Unable to remove item is fine? %t\n", err != nil)

	list.InsertAt(0, 11)
	list.InsertAt(1, 13)
	list.InsertAt(0, 10)
	list.InsertAt(2, 12)
	list.InsertAt(4, 14)
	err = list.InsertAt(50, 50)
	fmt.Printf("Unable to add item is fine? %t\n", err != nil)
	printList("List", list)

	list.RemoveAllFrom(clones[1])
	printList("List", list)
}
