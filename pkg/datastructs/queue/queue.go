package queue

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrFull is returned when enqueueing into a queue that has reached its capacity.
	ErrFull = errors.New("queue is full")

	// ErrEmpty is returned when dequeueing from a queue that holds no items.
	ErrEmpty = errors.New("queue is empty")
)

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the back of the queue.
	// Returns ErrFull and leaves the queue untouched if it is at capacity.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the front of the queue.
	// Returns (zero, ErrEmpty) if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the front item without removing it.
	Peek() (T, bool)

	// All yields the items from front to back.
	All() iter.Seq[T]

	// Size returns the number of queued items.
	Size() int

	// Capacity returns the total capacity of the queue.
	Capacity() int
}
