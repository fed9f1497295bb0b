package set

import (
	"sync"
)

func New[T comparable]() *Set[T] {
	return &Set[T]{
		values: map[T]struct{}{},
	}
}

type Set[T comparable] struct {
	sync.Mutex

	values map[T]struct{}
}

// Add reports whether val was not already present.
func (s *Set[T]) Add(val T) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.values[val]
	s.values[val] = struct{}{}
	return !ok
}

func (s *Set[T]) Contains(val T) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.values[val]
	return ok
}

func (s *Set[T]) Len() int {
	s.Lock()
	defer s.Unlock()

	return len(s.values)
}

func (s *Set[T]) Values() []T {
	s.Lock()
	defer s.Unlock()

	vals := make([]T, 0, len(s.values))
	for v := range s.values {
		vals = append(vals, v)
	}

	return vals
}
