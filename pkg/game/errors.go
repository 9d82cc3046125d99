package game

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/tetris-reserve/pkg/common/apperr"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/queue"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/stack"
)

// Error codes carried by the *apperr.AppError values returned from exchange operations.
const (
	CodeQueueEmpty = 1001 + iota
	CodeQueueFull
	CodeStackEmpty
	CodeStackFull
	CodeInsufficientPieces
)

// ErrInsufficientPieces is returned when a multi-piece swap lacks pieces on either side.
var ErrInsufficientPieces = errors.New("not enough pieces in queue and reserve")

func codeFor(err error) int {
	switch {
	case errors.Is(err, queue.ErrEmpty):
		return CodeQueueEmpty
	case errors.Is(err, queue.ErrFull):
		return CodeQueueFull
	case errors.Is(err, stack.ErrEmpty):
		return CodeStackEmpty
	case errors.Is(err, stack.ErrFull):
		return CodeStackFull
	case errors.Is(err, ErrInsufficientPieces):
		return CodeInsufficientPieces
	default:
		return apperr.CodeUnknown
	}
}

// fail builds the AppError for a rejected operation. cause must be non-nil.
func fail(msg string, cause error) error {
	return apperr.New(codeFor(cause), msg, cause)
}
