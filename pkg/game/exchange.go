package game

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/tetris-reserve/pkg/common/apperr"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/queue"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/stack"
	"github.com/huynhanx03/tetris-reserve/pkg/piece"
)

// TripleSwapSize is the number of pieces SwapTriple exchanges on each side.
const TripleSwapSize = 3

type (
	// Queue is the bounded queue of upcoming pieces.
	Queue = queue.Bounded[piece.Piece]

	// Stack is the bounded reserve stack.
	Stack = stack.Bounded[piece.Piece]
)

// NewQueue creates an empty piece queue.
func NewQueue(capacity int) *Queue { return queue.NewBounded[piece.Piece](capacity) }

// NewStack creates an empty reserve stack.
func NewStack(capacity int) *Stack { return stack.NewBounded[piece.Piece](capacity) }

// Generator produces the pieces used to replenish the queue.
type Generator interface {
	Next() piece.Piece
}

// Every operation below checks all of its preconditions before touching
// either structure. A returned error means nothing was mutated.

// Play removes the front piece of q and replenishes q with a new piece.
// The played piece is returned to the caller and otherwise discarded.
func Play(q *Queue, gen Generator) (piece.Piece, error) {
	if q.IsEmpty() {
		return piece.Piece{}, fail(apperr.MsgPlayFailed, queue.ErrEmpty)
	}

	played, err := q.Dequeue()
	if err != nil {
		return piece.Piece{}, fail(apperr.MsgPlayFailed, err)
	}
	if err := replenish(q, gen); err != nil {
		return played, fail(apperr.MsgPlayFailed, err)
	}
	return played, nil
}

// Reserve moves the front piece of q onto the top of s and replenishes q.
func Reserve(q *Queue, s *Stack, gen Generator) (piece.Piece, error) {
	if q.IsEmpty() {
		return piece.Piece{}, fail(apperr.MsgReserveFailed, queue.ErrEmpty)
	}
	if s.IsFull() {
		return piece.Piece{}, fail(apperr.MsgReserveFailed, stack.ErrFull)
	}

	moved, err := q.Dequeue()
	if err != nil {
		return piece.Piece{}, fail(apperr.MsgReserveFailed, err)
	}
	if err := s.Push(moved); err != nil {
		return piece.Piece{}, fail(apperr.MsgReserveFailed, err)
	}
	if err := replenish(q, gen); err != nil {
		return moved, fail(apperr.MsgReserveFailed, err)
	}
	return moved, nil
}

// UseReserved pops and discards the top piece of s. The stack is not refilled.
func UseReserved(s *Stack) (piece.Piece, error) {
	used, err := s.Pop()
	if err != nil {
		return piece.Piece{}, fail(apperr.MsgUseFailed, err)
	}
	return used, nil
}

// SwapFrontTop exchanges the front piece of q with the top piece of s in place.
func SwapFrontTop(q *Queue, s *Stack) error {
	if q.IsEmpty() {
		return fail(apperr.MsgSwapFailed, queue.ErrEmpty)
	}
	if s.IsEmpty() {
		return fail(apperr.MsgSwapFailed, stack.ErrEmpty)
	}
	swapN(q, s, 1)
	return nil
}

// SwapTriple exchanges the first three queue pieces with the top three stack
// pieces pairwise: queue position i (0 = front) with stack depth i (0 = top).
func SwapTriple(q *Queue, s *Stack) error {
	if q.Size() < TripleSwapSize || s.Size() < TripleSwapSize {
		cause := errors.Wrapf(ErrInsufficientPieces, "need %d on each side, queue has %d, reserve has %d",
			TripleSwapSize, q.Size(), s.Size())
		return fail(apperr.MsgSwapFailed, cause)
	}
	swapN(q, s, TripleSwapSize)
	return nil
}

// swapN swaps queue position i with stack depth i for i in [0, n).
// Callers guarantee both sides hold at least n pieces.
func swapN(q *Queue, s *Stack, n int) {
	for i := 0; i < n; i++ {
		front, _ := q.Get(i)
		top, _ := s.Get(i)
		q.Set(i, top)
		s.Set(i, front)
	}
}

func replenish(q *Queue, gen Generator) error {
	return q.Enqueue(gen.Next())
}
