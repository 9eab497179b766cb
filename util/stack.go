package util

import "errors"

// ErrEmptyStack is returned by Pop and Peek when the stack holds no elements.
var ErrEmptyStack = errors.New("stack is empty")

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
// The top of the stack is the end of the backing slice.
type Stack[T any] struct {
	items []T
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element.
func (s *Stack[T]) Pop() (item T, err error) {
	if len(s.items) == 0 {
		return item, ErrEmptyStack
	}
	idx := len(s.items) - 1
	item = s.items[idx]

	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return item, nil
}

// Peek returns the topmost element without removing it.
func (s *Stack[T]) Peek() (item T, err error) {
	if len(s.items) == 0 {
		return item, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Contents returns a copy of the elements ordered from top to bottom.
func (s *Stack[T]) Contents() []T {
	contents := make([]T, len(s.items))
	for i, item := range s.items {
		contents[len(s.items)-1-i] = item
	}
	return contents
}
