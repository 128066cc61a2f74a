package slicegrow

import (
	"errors"
	"iter"

	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

// storageIDs hands out identities for backing blocks. Zero means "no block".
var storageIDs atomic.Uint64

var errShortBlock = errors.New("allocator returned a block of the wrong size")

// Array is a growable contiguous sequence of T that owns its backing block.
// Not goroutine-safe; use SafeArray for concurrent access.
type Array[T any] struct {
	storage   []T // len(storage) is the capacity
	length    int
	id        uint64
	alloc     Allocator[T]
	policy    Policy
	observers []Observer
	logger    logr.Logger

	reallocs int
	copied   int
	released bool
}

// New creates an Array backed by the heap.
// With initialCapacity > 0 exactly that many slots are allocated up front.
// A negative initialCapacity fails with ErrInvalidArgument.
func New[T any](initialCapacity int, opts ...Option) (*Array[T], error) {
	return NewWithAllocator[T](initialCapacity, HeapAllocator[T]{}, opts...)
}

// NewWithAllocator creates an Array whose blocks come from alloc.
// A nil alloc means HeapAllocator.
func NewWithAllocator[T any](initialCapacity int, alloc Allocator[T], opts ...Option) (*Array[T], error) {
	if initialCapacity < 0 {
		return nil, invalidArgument("create", initialCapacity)
	}
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}

	s := newSettings(opts)
	a := &Array[T]{
		alloc:     alloc,
		policy:    s.policy,
		observers: s.observers,
		logger:    s.logger,
	}

	if initialCapacity > 0 {
		block, err := a.allocate(initialCapacity)
		if err != nil {
			return nil, allocationFailure("create", 0, initialCapacity, err)
		}
		a.storage = block
		a.id = storageIDs.Inc()
	}
	return a, nil
}

// Append adds v as the last element. When the block is full a larger one is
// allocated, the existing elements are copied into it and a ReallocationEvent
// is emitted. On error the array is left exactly as it was.
func (a *Array[T]) Append(v T) error {
	a.panicIfReleased()

	// Fast path: room in the current block
	if a.length < len(a.storage) {
		a.storage[a.length] = v
		a.length++
		return nil
	}

	prior, err := a.grow("append", a.length+1)
	if err != nil {
		return err
	}
	a.storage[a.length] = v
	a.length++
	a.emit(prior)
	return nil
}

// AppendSlice adds vs in order as the last elements. At most one growth
// happens, sized for the whole batch.
func (a *Array[T]) AppendSlice(vs ...T) error {
	a.panicIfReleased()
	if len(vs) == 0 {
		return nil
	}

	required := a.length + len(vs)
	if required < a.length {
		return allocationFailure("append", a.length, required, errTooLarge)
	}

	grew := false
	prior := len(a.storage)
	if required > len(a.storage) {
		var err error
		if prior, err = a.grow("append", required); err != nil {
			return err
		}
		grew = true
	}

	copy(a.storage[a.length:required], vs)
	a.length = required
	if grew {
		a.emit(prior)
	}
	return nil
}

// grow swaps in a block large enough for required elements and returns the
// prior capacity. Length is not changed.
func (a *Array[T]) grow(op string, required int) (int, error) {
	oldCap := len(a.storage)
	newCap := a.policy.NextCapacity(oldCap, a.length, required)
	if newCap < required {
		newCap = required
	}

	block, err := a.allocate(newCap)
	if err != nil {
		return 0, allocationFailure(op, a.length, newCap, err)
	}
	copy(block, a.storage[:a.length])

	old := a.storage
	a.storage = block
	a.id = storageIDs.Inc()
	a.reallocs++
	a.copied += a.length
	if old != nil {
		a.alloc.Free(old)
	}
	return oldCap, nil
}

// allocate asks the allocator for n slots and checks what comes back.
func (a *Array[T]) allocate(n int) ([]T, error) {
	block, err := a.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	if len(block) != n {
		a.alloc.Free(block)
		return nil, errShortBlock
	}
	return block[:n:n], nil
}

func (a *Array[T]) emit(prior int) {
	ev := ReallocationEvent{
		PriorCapacity:   prior,
		NewCapacity:     len(a.storage),
		ResultingLength: a.length,
	}
	a.logger.V(1).Info("Reallocated backing storage",
		"priorCapacity", ev.PriorCapacity,
		"newCapacity", ev.NewCapacity,
		"length", ev.ResultingLength)
	for _, fn := range a.observers {
		fn(ev)
	}
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, indexOutOfRange("at", i, a.length)
	}
	return a.storage[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return indexOutOfRange("set", i, a.length)
	}
	a.storage[i] = v
	return nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of elements the current block can hold.
func (a *Array[T]) Cap() int {
	return len(a.storage)
}

// StorageID identifies the current backing block. It changes exactly when
// the array grows and is 0 while no block is allocated.
func (a *Array[T]) StorageID() uint64 {
	return a.id
}

// Slice returns the elements as a slice sharing the backing block.
// The view goes stale the moment the array grows.
func (a *Array[T]) Slice() []T {
	return a.storage[:a.length:a.length]
}

// All iterates over index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.storage[i]) {
				return
			}
		}
	}
}

// Reset empties the array but keeps its block for reuse.
func (a *Array[T]) Reset() {
	a.panicIfReleased()
	clear(a.storage[:a.length])
	a.length = 0
}

// Release returns the block to the allocator and makes the array unusable.
// Any subsequent Append or Reset will panic.
func (a *Array[T]) Release() {
	if a.released {
		return
	}
	if a.storage != nil {
		a.alloc.Free(a.storage)
	}
	a.storage = nil
	a.length = 0
	a.id = 0
	a.released = true
}

// panicIfReleased panics if the array has been released.
func (a *Array[T]) panicIfReleased() {
	if a.released {
		panic("slicegrow: use after Release()")
	}
}
