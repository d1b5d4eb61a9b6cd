package pool

import "sync"

// RuneBufferPool implements a pool of rune slices for efficient memory reuse
// when converting strings to character sequences.
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified
// initial capacity.
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a rune buffer from the pool or creates a new one if none are
// available.
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool for reuse.
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}

// IntRowPool implements a pool of int slices used as dynamic-programming
// score rows.
type IntRowPool struct {
	pool sync.Pool
	size int
}

// NewIntRowPool creates a new pool of int slices with the specified initial
// capacity.
func NewIntRowPool(size int) *IntRowPool {
	return &IntRowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a score row from the pool, resized to n and zeroed.
func (irp *IntRowPool) Get(n int) *[]int {
	row := irp.pool.Get().(*[]int)
	if cap(*row) < n {
		*row = make([]int, n)
		return row
	}
	*row = (*row)[:n]
	for i := range *row {
		(*row)[i] = 0
	}
	return row
}

// Put returns a score row to the pool for reuse.
func (irp *IntRowPool) Put(row *[]int) {
	*row = (*row)[:0]
	irp.pool.Put(row)
}
