package queue

// Queue is a FIFO ring buffer over a growable slice.
// The zero value is ready to use.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// New returns a Queue with room for capacity elements before the first
// growth. Non-positive capacity allocates lazily on first Enqueue.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	if capacity > 0 {
		q.buf = make([]T, capacity)
	}

	return q
}

// Len returns the number of queued elements. Complexity: O(1).
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends v at the tail, doubling the buffer when full.
// Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the head element.
// The second result is false on an empty queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the slot for the garbage collector
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, true
}

// Peek returns the head element without removing it.
// The second result is false on an empty queue.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}

	return q.buf[q.head], true
}

// Clear drops all elements, keeping the allocated buffer.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.size = 0
}

// grow doubles the buffer and unrolls the ring into the new layout.
func (q *Queue[T]) grow() {
	next := 2 * len(q.buf)
	if next == 0 {
		next = 4
	}
	buf := make([]T, next)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
