package stack

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrFull is returned when pushing onto a stack that has reached its capacity.
	ErrFull = errors.New("stack is full")

	// ErrEmpty is returned when popping from a stack that holds no items.
	ErrEmpty = errors.New("stack is empty")
)

// Bounded is a fixed-capacity LIFO stack backed by an array and a top index.
// It is NOT thread-safe.
type Bounded[T any] struct {
	items []T
	top   int // index of the top item, -1 when empty
}

// NewBounded creates a stack holding at most capacity items.
// Capacities below 1 are raised to 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{
		items: make([]T, capacity),
		top:   -1,
	}
}

// Push places item on top. Returns ErrFull if the stack is full.
func (s *Bounded[T]) Push(item T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.top++
	s.items[s.top] = item
	return nil
}

// Pop removes and returns the top item. Returns ErrEmpty if the stack is empty.
func (s *Bounded[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	item := s.items[s.top]
	s.items[s.top] = zero
	s.top--
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Bounded[T]) Peek() (T, bool) {
	return s.Get(0)
}

// Get returns the item at the given depth below the top (0 = top).
func (s *Bounded[T]) Get(depth int) (T, bool) {
	var zero T
	if depth < 0 || depth > s.top {
		return zero, false
	}
	return s.items[s.top-depth], true
}

// Set replaces the item at the given depth below the top.
// Returns false without touching the stack if depth is out of range.
func (s *Bounded[T]) Set(depth int, item T) bool {
	if depth < 0 || depth > s.top {
		return false
	}
	s.items[s.top-depth] = item
	return true
}

// All yields the items from top to base without popping them.
func (s *Bounded[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the items from top to base.
func (s *Bounded[T]) Items() []T {
	out := make([]T, 0, s.Size())
	for item := range s.All() {
		out = append(out, item)
	}
	return out
}

// Size returns the number of stacked items.
func (s *Bounded[T]) Size() int { return s.top + 1 }

// Capacity returns the maximum number of items the stack can hold.
func (s *Bounded[T]) Capacity() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Bounded[T]) IsEmpty() bool { return s.top == -1 }

// IsFull reports whether the stack is at capacity.
func (s *Bounded[T]) IsFull() bool { return s.top == len(s.items)-1 }

// Clear drops all items.
func (s *Bounded[T]) Clear() {
	clear(s.items)
	s.top = -1
}
