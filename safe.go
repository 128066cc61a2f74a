package slicegrow

import (
	"slices"
	"sync"
)

// SafeArray is a mutex-protected wrapper around Array for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Observers run while the lock is held and must not call back into the SafeArray.
type SafeArray[T any] struct {
	mu sync.Mutex
	a  *Array[T]
}

// NewSafe creates a thread-safe heap-backed array. See New.
func NewSafe[T any](initialCapacity int, opts ...Option) (*SafeArray[T], error) {
	a, err := New[T](initialCapacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArray[T]{a: a}, nil
}

// Append thread-safely adds v as the last element.
func (s *SafeArray[T]) Append(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Append(v)
}

// AppendSlice thread-safely adds vs as the last elements.
func (s *SafeArray[T]) AppendSlice(vs ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AppendSlice(vs...)
}

// At thread-safely returns the element at index i.
func (s *SafeArray[T]) At(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.At(i)
}

// Set thread-safely overwrites the element at index i.
func (s *SafeArray[T]) Set(i int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Set(i, v)
}

// Snapshot returns a copy of the elements, safe to use after the lock is released.
func (s *SafeArray[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.a.Slice())
}

// Reset thread-safely empties the array, keeping its block.
func (s *SafeArray[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the block and makes the array unusable.
func (s *SafeArray[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
