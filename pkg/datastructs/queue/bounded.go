package queue

import "iter"

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity circular FIFO queue.
// The backing array never grows; front and back wrap modulo the capacity.
// It is NOT thread-safe.
type Bounded[T any] struct {
	items    []T
	capacity int
	front    int // index of the front item
	back     int // index of the back item
	size     int // explicit count, front/back alone cannot tell full from empty
}

// NewBounded creates a queue holding at most capacity items.
// Capacities below 1 are raised to 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		back:     capacity - 1,
	}
}

// Enqueue appends item at the back. Returns ErrFull if the queue is full.
func (q *Bounded[T]) Enqueue(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.back = q.wrapIndex(q.back + 1)
	q.items[q.back] = item
	q.size++
	return nil
}

// Dequeue removes and returns the front item. Returns ErrEmpty if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	item := q.items[q.front]
	q.items[q.front] = zero
	q.front = q.wrapIndex(q.front + 1)
	q.size--
	return item, nil
}

// Peek returns the front item without removing it.
func (q *Bounded[T]) Peek() (T, bool) {
	return q.Get(0)
}

// Get returns the item at logical position i, counted from the front (0 = front).
func (q *Bounded[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= q.size {
		return zero, false
	}
	return q.items[q.wrapIndex(q.front+i)], true
}

// Set replaces the item at logical position i, counted from the front.
// Returns false without touching the queue if i is out of range.
func (q *Bounded[T]) Set(i int, item T) bool {
	if i < 0 || i >= q.size {
		return false
	}
	q.items[q.wrapIndex(q.front+i)] = item
	return true
}

// All yields the queued items from front to back without consuming them.
func (q *Bounded[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.items[q.wrapIndex(q.front+i)]) {
				return
			}
		}
	}
}

// Items returns a copy of the queued items from front to back.
func (q *Bounded[T]) Items() []T {
	out := make([]T, 0, q.size)
	for item := range q.All() {
		out = append(out, item)
	}
	return out
}

// Size returns the number of queued items.
func (q *Bounded[T]) Size() int { return q.size }

// Capacity returns the maximum number of items the queue can hold.
func (q *Bounded[T]) Capacity() int { return q.capacity }

// IsEmpty reports whether the queue holds no items.
func (q *Bounded[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Bounded[T]) IsFull() bool { return q.size == q.capacity }

// Clear drops all items and resets the indices.
func (q *Bounded[T]) Clear() {
	clear(q.items)
	q.front = 0
	q.back = q.capacity - 1
	q.size = 0
}

// wrapIndex returns the index wrapped within the queue capacity.
func (q *Bounded[T]) wrapIndex(idx int) int {
	return idx % q.capacity
}
