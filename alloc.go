package slicegrow

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// maxAllocBytes bounds a single block: 2^47-1 bytes on 64-bit platforms,
// math.MaxInt on 32-bit ones.
const maxAllocBytes = math.MaxInt >> (16 * (bits.UintSize / 64))

// errTooLarge is returned by allocators when a block cannot be addressed.
var errTooLarge = errors.New("block exceeds addressable size")

// Allocator provides backing blocks for an Array.
//
// Allocate must return a block of exactly n elements or an error; it must not
// panic for large n. Free is called once for every block the array replaces
// or drops; the array never touches a block after freeing it.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(block []T)
}

// MaxElements returns the largest block of T the heap allocator will attempt.
func MaxElements[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return maxAllocBytes / size
}

// HeapAllocator allocates blocks with make and leaves freeing to the GC.
// The zero value is ready to use.
type HeapAllocator[T any] struct{}

// Allocate returns a zeroed block of n elements.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > MaxElements[T]() {
		return nil, fmt.Errorf("heap: %d elements: %w", n, errTooLarge)
	}
	return make([]T, n), nil
}

// Free drops nothing; the block becomes garbage once unreferenced.
func (HeapAllocator[T]) Free([]T) {}

// LimitAllocator enforces an element budget on top of another allocator.
// Blocks returned through Free are credited back to the budget.
type LimitAllocator[T any] struct {
	next  Allocator[T]
	limit int
	inUse int
}

// ErrBudgetExceeded is returned by LimitAllocator when a request would push
// the outstanding element count past its limit.
var ErrBudgetExceeded = errors.New("element budget exceeded")

// NewLimitAllocator wraps next with a budget of limit elements.
// A nil next means HeapAllocator.
func NewLimitAllocator[T any](next Allocator[T], limit int) *LimitAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{next: next, limit: limit}
}

// Allocate reserves n elements from the budget and delegates.
func (l *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n > l.limit-l.inUse {
		return nil, fmt.Errorf("limit %d, in use %d, requested %d: %w", l.limit, l.inUse, n, ErrBudgetExceeded)
	}
	block, err := l.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += n
	return block, nil
}

// Free credits the block back to the budget and forwards it.
func (l *LimitAllocator[T]) Free(block []T) {
	l.inUse -= cap(block)
	l.next.Free(block)
}

// InUse returns the number of elements currently handed out.
func (l *LimitAllocator[T]) InUse() int {
	return l.inUse
}

// Limit returns the configured budget.
func (l *LimitAllocator[T]) Limit() int {
	return l.limit
}
