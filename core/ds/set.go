// Package ds provides generic data structures shared by the core packages.
package ds

import "fmt"

// Set is an ordered set that maintains both O(1) membership testing and
// insertion order preservation. Deterministic iteration order is what the
// machine runtime relies on for listener notification: subscribers are
// always notified in the order they subscribed.
//
// Add, Remove and Clear mutate the receiver. Values returns a copy.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T // preserves insertion order
}

// NewSet creates a set containing the given values, in order.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) String() string {
	return fmt.Sprintf("%v", s.order)
}

// Add adds v to the set. No-op if already present. (mutates)
func (s *Set[T]) Add(v T) {
	if s.Contains(v) {
		return
	}
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
	s.items[v] = struct{}{}
	s.order = append(s.order, v)
}

// Remove removes v from the set. No-op if absent. (mutates)
// This operation is O(n) where n is the set size.
func (s *Set[T]) Remove(v T) {
	if !s.Contains(v) {
		return
	}
	delete(s.items, v)
	for i, o := range s.order {
		if o == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains returns true if v is present in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return len(s.items) }

// Values returns the elements in insertion order. The returned slice is a
// copy and stays valid across later mutations of the set.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Clear removes all elements. (mutates)
func (s *Set[T]) Clear() {
	s.items = nil
	s.order = nil
}
