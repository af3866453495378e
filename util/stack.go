// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

// Stack is a generic LIFO container backed by a slice.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// Push places an element on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element.
// Popping an empty stack yields the zero value of T.
func (s *Stack[T]) Pop() (item T) {
	last := len(s.items) - 1
	if last < 0 {
		return
	}

	item = s.items[last]
	s.items = s.items[:last]
	return
}

// Peek returns the top element without removing it.
// Peeking an empty stack yields the zero value of T.
func (s *Stack[T]) Peek() (item T) {
	if len(s.items) == 0 {
		return
	}

	return s.items[len(s.items)-1]
}

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear resets the stack to its empty state.
func (s *Stack[T]) Clear() {
	s.items = nil
}
