package slicegrow

// Utilization returns Len/Cap (0.0 to 1.0), or 0 for an array without storage.
func (a *Array[T]) Utilization() float64 {
	if len(a.storage) == 0 {
		return 0
	}
	return float64(a.length) / float64(len(a.storage))
}

// Reallocations returns how many times the array has grown.
func (a *Array[T]) Reallocations() int {
	return a.reallocs
}

// ElementsCopied returns the total number of elements moved by growth.
func (a *Array[T]) ElementsCopied() int {
	return a.copied
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:            a.Len(),
		Cap:            a.Cap(),
		Utilization:    a.Utilization(),
		Reallocations:  a.Reallocations(),
		ElementsCopied: a.ElementsCopied(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len            int     // Elements present
	Cap            int     // Elements the current block can hold
	Utilization    float64 // Len/Cap (0.0-1.0)
	Reallocations  int     // Number of growths so far
	ElementsCopied int     // Elements moved across all growths
}

// InUse returns the number of elements handed out since the last Reset,
// including blocks that have since been freed.
func (c *ChunkAllocator[T]) InUse() int {
	sum := 0
	for _, ch := range c.chunks {
		sum += ch.offset
	}
	return sum
}

// Live returns the number of elements in blocks that have not been freed.
func (c *ChunkAllocator[T]) Live() int {
	return c.InUse() - c.freed
}

// NumChunks returns the number of chunks currently held.
func (c *ChunkAllocator[T]) NumChunks() int {
	return len(c.chunks)
}

// Capacity returns the total capacity, in elements, of all chunks.
func (c *ChunkAllocator[T]) Capacity() int {
	sum := 0
	for _, ch := range c.chunks {
		sum += len(ch.buf)
	}
	return sum
}

// Utilization returns the ratio of elements in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the allocator has no capacity.
func (c *ChunkAllocator[T]) Utilization() float64 {
	capacity := c.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(c.InUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this allocator.
func (c *ChunkAllocator[T]) ChunkSize() int {
	return c.chunkSize
}

// Metrics returns a snapshot of allocator statistics.
func (c *ChunkAllocator[T]) Metrics() ChunkMetrics {
	return ChunkMetrics{
		InUse:       c.InUse(),
		Live:        c.Live(),
		Capacity:    c.Capacity(),
		NumChunks:   c.NumChunks(),
		ChunkSize:   c.ChunkSize(),
		Utilization: c.Utilization(),
	}
}

// ChunkMetrics contains statistical information about a chunk allocator.
type ChunkMetrics struct {
	InUse       int     // Elements handed out since the last Reset
	Live        int     // Elements in blocks not yet freed
	Capacity    int     // Total capacity in elements
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of in-use to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArray

// Len thread-safely returns the number of elements.
func (s *SafeArray[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Cap thread-safely returns the capacity.
func (s *SafeArray[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Cap()
}

// StorageID thread-safely returns the identity of the backing block.
func (s *SafeArray[T]) StorageID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.StorageID()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[T]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
