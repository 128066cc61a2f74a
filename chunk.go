package slicegrow

import "fmt"

// DefaultChunkSize is the default chunk size, in elements, for new chunk allocators.
const DefaultChunkSize = 1 << 12

// chunk is a single slab of elements within a ChunkAllocator.
type chunk[T any] struct {
	buf    []T // backing memory
	offset int // next free element within buf
}

// ChunkAllocator is a chunked bump allocator for blocks of T.
//
// Blocks are carved sequentially out of large chunks, so successive growths
// of small arrays share a few slabs instead of hitting the heap each time.
// Individual blocks are never reused; Reset rewinds every chunk at once.
// Not goroutine-safe.
type ChunkAllocator[T any] struct {
	chunks       []chunk[T]
	chunkSize    int
	currentChunk *chunk[T]
	freed        int
}

// NewChunkAllocator creates a ChunkAllocator with the given chunk size in elements.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewChunkAllocator[T any](chunkSize int) *ChunkAllocator[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	c := &ChunkAllocator[T]{chunkSize: chunkSize, chunks: make([]chunk[T], 0, 4)}
	c.grow(chunkSize)
	return c
}

// Allocate returns a zeroed block of exactly n elements whose capacity is
// also n, so appends through the block can never spill into its neighbour.
func (c *ChunkAllocator[T]) Allocate(n int) ([]T, error) {
	c.panicIfReleased()
	if n < 0 || n > MaxElements[T]() {
		return nil, fmt.Errorf("chunk: %d elements: %w", n, errTooLarge)
	}
	if n == 0 {
		return nil, nil
	}

	// Fast path: room left in the current chunk
	if cur := c.currentChunk; cur != nil && cur.offset+n <= len(cur.buf) {
		return cur.take(n), nil
	}

	// Slow path: first chunk with room, typically one rewound by Reset
	for i := range c.chunks {
		if ch := &c.chunks[i]; ch.offset+n <= len(ch.buf) {
			c.currentChunk = ch
			return ch.take(n), nil
		}
	}

	c.grow(n)
	return c.currentChunk.take(n), nil
}

// Free records the block as dead. Its space is only recovered by Reset.
func (c *ChunkAllocator[T]) Free(block []T) {
	c.freed += cap(block)
}

// Reset rewinds all chunks to empty but keeps them for reuse.
// Blocks handed out before the Reset must no longer be used.
func (c *ChunkAllocator[T]) Reset() {
	c.panicIfReleased()
	for i := range c.chunks {
		c.chunks[i].offset = 0
	}
	c.freed = 0
	if len(c.chunks) > 0 {
		c.currentChunk = &c.chunks[0]
	}
}

// Release drops all chunks and makes the allocator unusable.
// Any subsequent Allocate or Reset will panic.
func (c *ChunkAllocator[T]) Release() {
	c.chunks = nil
	c.currentChunk = nil
	c.freed = 0
}

// take bumps the chunk offset by n and returns the zeroed block.
func (ch *chunk[T]) take(n int) []T {
	start := ch.offset
	ch.offset += n
	block := ch.buf[start:ch.offset:ch.offset]
	clear(block)
	return block
}

// grow appends a new chunk of at least min elements and makes it current.
func (c *ChunkAllocator[T]) grow(min int) {
	size := c.chunkSize
	if min > size {
		size = min
	}
	c.chunks = append(c.chunks, chunk[T]{buf: make([]T, size)})
	c.currentChunk = &c.chunks[len(c.chunks)-1]
}

// panicIfReleased panics if the allocator has been released.
func (c *ChunkAllocator[T]) panicIfReleased() {
	if c.chunks == nil {
		panic("slicegrow: chunk allocator used after Release()")
	}
}
