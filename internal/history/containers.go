package history

// stack is a bounded LIFO.
type stack[T any] struct {
	items []T
	limit int
}

func newStack[T any](limit int) *stack[T] {
	return &stack[T]{items: make([]T, 0, limit), limit: limit}
}

func (s *stack[T]) full() bool { return len(s.items) >= s.limit }

func (s *stack[T]) size() int { return len(s.items) }

func (s *stack[T]) push(v T) bool {
	if s.full() {
		return false
	}
	s.items = append(s.items, v)
	return true
}

func (s *stack[T]) pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

func (s *stack[T]) reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// queue is a bounded FIFO ring.
type queue[T any] struct {
	ring []T
	head int
	n    int
}

func newQueue[T any](limit int) *queue[T] {
	return &queue[T]{ring: make([]T, limit)}
}

func (q *queue[T]) size() int { return q.n }

func (q *queue[T]) enqueue(v T) bool {
	if q.n == len(q.ring) {
		return false
	}
	q.ring[(q.head+q.n)%len(q.ring)] = v
	q.n++
	return true
}

func (q *queue[T]) dequeue() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v := q.ring[q.head]
	q.ring[q.head] = zero
	q.head = (q.head + 1) % len(q.ring)
	q.n--
	return v, true
}

func (q *queue[T]) reset() {
	clear(q.ring)
	q.head, q.n = 0, 0
}
