package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/tetris-reserve/pkg/common/apperr"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/queue"
	"github.com/huynhanx03/tetris-reserve/pkg/datastructs/stack"
	"github.com/huynhanx03/tetris-reserve/pkg/piece"
)

// stubGenerator hands out "N" pieces with ids counting up from next.
type stubGenerator struct {
	next  int64
	calls int
}

func (g *stubGenerator) Next() piece.Piece {
	g.calls++
	p := piece.Piece{Kind: "N", ID: g.next}
	g.next++
	return p
}

// named builds a piece whose kind doubles as a readable label.
func named(label string, id int64) piece.Piece {
	return piece.Piece{Kind: piece.Kind(label), ID: id}
}

// A..E and X..Z follow the examples used throughout these tests.
var (
	pA, pB, pC, pD, pE = named("A", 1), named("B", 2), named("C", 3), named("D", 4), named("E", 5)
	pX, pY, pZ         = named("X", 11), named("Y", 12), named("Z", 13)
)

func newQueueOf(t *testing.T, capacity int, items ...piece.Piece) *Queue {
	t.Helper()
	q := NewQueue(capacity)
	for _, p := range items {
		require.NoError(t, q.Enqueue(p))
	}
	return q
}

// newStackOf pushes items in order, so the last item ends on top.
func newStackOf(t *testing.T, capacity int, items ...piece.Piece) *Stack {
	t.Helper()
	s := NewStack(capacity)
	for _, p := range items {
		require.NoError(t, s.Push(p))
	}
	return s
}

// =============================================================================
// Play
// =============================================================================

func TestPlay(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC, pD, pE)
	gen := &stubGenerator{next: 100}

	played, err := Play(q, gen)
	require.NoError(t, err)
	assert.Equal(t, pA, played)
	assert.Equal(t, 5, q.Size())
	assert.Equal(t, []piece.Piece{pB, pC, pD, pE, {Kind: "N", ID: 100}}, q.Items())
}

func TestPlay_EmptyQueue(t *testing.T) {
	q := NewQueue(5)
	gen := &stubGenerator{}

	_, err := Play(q, gen)
	require.Error(t, err)
	assert.ErrorIs(t, err, queue.ErrEmpty)
	assert.Equal(t, CodeQueueEmpty, apperr.CodeOf(err))
	assert.Zero(t, q.Size())
	assert.Zero(t, gen.calls, "no piece may be generated on failure")
}

// =============================================================================
// Reserve
// =============================================================================

func TestReserve(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC, pD, pE)
	s := newStackOf(t, 3, pX)
	gen := &stubGenerator{next: 100}

	moved, err := Reserve(q, s, gen)
	require.NoError(t, err)
	assert.Equal(t, pA, moved)
	assert.Equal(t, []piece.Piece{pB, pC, pD, pE, {Kind: "N", ID: 100}}, q.Items())
	assert.Equal(t, []piece.Piece{pA, pX}, s.Items())
}

func TestReserve_Failures(t *testing.T) {
	tests := []struct {
		name      string
		queue     []piece.Piece
		stack     []piece.Piece
		wantCause error
		wantCode  int
	}{
		{"empty_queue", nil, []piece.Piece{pX}, queue.ErrEmpty, CodeQueueEmpty},
		{"full_stack", []piece.Piece{pA, pB, pC, pD, pE}, []piece.Piece{pX, pY, pZ}, stack.ErrFull, CodeStackFull},
		{"both", nil, []piece.Piece{pX, pY, pZ}, queue.ErrEmpty, CodeQueueEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQueueOf(t, 5, tt.queue...)
			s := newStackOf(t, 3, tt.stack...)
			qBefore, sBefore := q.Items(), s.Items()
			gen := &stubGenerator{}

			_, err := Reserve(q, s, gen)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			assert.Equal(t, qBefore, q.Items(), "queue must be untouched")
			assert.Equal(t, sBefore, s.Items(), "stack must be untouched")
			assert.Zero(t, gen.calls)
		})
	}
}

// =============================================================================
// UseReserved
// =============================================================================

func TestUseReserved(t *testing.T) {
	s := newStackOf(t, 3, pX, pY, pZ)

	used, err := UseReserved(s)
	require.NoError(t, err)
	assert.Equal(t, pZ, used)
	assert.Equal(t, []piece.Piece{pY, pX}, s.Items())
}

func TestUseReserved_EmptyStack(t *testing.T) {
	s := NewStack(3)

	_, err := UseReserved(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, stack.ErrEmpty)
	assert.Equal(t, CodeStackEmpty, apperr.CodeOf(err))
	assert.Zero(t, s.Size())
}

// =============================================================================
// SwapFrontTop
// =============================================================================

func TestSwapFrontTop(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC, pD, pE)
	s := newStackOf(t, 3, pX, pY, pZ)

	require.NoError(t, SwapFrontTop(q, s))
	assert.Equal(t, []piece.Piece{pZ, pB, pC, pD, pE}, q.Items())
	assert.Equal(t, []piece.Piece{pA, pY, pX}, s.Items())
	assert.Equal(t, 5, q.Size())
	assert.Equal(t, 3, s.Size())
}

func TestSwapFrontTop_WrappedQueue(t *testing.T) {
	q := newQueueOf(t, 3, pA, pB, pC)
	// Rotate so the front sits in the middle of the backing array.
	_, err := Play(q, &stubGenerator{next: 100})
	require.NoError(t, err)
	s := newStackOf(t, 3, pX)

	require.NoError(t, SwapFrontTop(q, s))
	assert.Equal(t, []piece.Piece{pX, pC, {Kind: "N", ID: 100}}, q.Items())
	assert.Equal(t, []piece.Piece{pB}, s.Items())
}

func TestSwapFrontTop_Failures(t *testing.T) {
	tests := []struct {
		name      string
		queue     []piece.Piece
		stack     []piece.Piece
		wantCause error
	}{
		{"empty_queue", nil, []piece.Piece{pX}, queue.ErrEmpty},
		{"empty_stack", []piece.Piece{pA}, nil, stack.ErrEmpty},
		{"both_empty", nil, nil, queue.ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQueueOf(t, 5, tt.queue...)
			s := newStackOf(t, 3, tt.stack...)
			qBefore, sBefore := q.Items(), s.Items()

			err := SwapFrontTop(q, s)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.Equal(t, qBefore, q.Items())
			assert.Equal(t, sBefore, s.Items())
		})
	}
}

// =============================================================================
// SwapTriple
// =============================================================================

func TestSwapTriple(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC, pD, pE)
	s := newStackOf(t, 3, pX, pY, pZ)

	require.NoError(t, SwapTriple(q, s))
	assert.Equal(t, []piece.Piece{pZ, pY, pX, pD, pE}, q.Items())
	// Base to top the stack now reads C, B, A.
	assert.Equal(t, []piece.Piece{pA, pB, pC}, s.Items(), "stack top to base")
	assert.Equal(t, 5, q.Size())
	assert.Equal(t, 3, s.Size())
}

func TestSwapTriple_TwiceRestores(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC, pD, pE)
	s := newStackOf(t, 3, pX, pY, pZ)

	require.NoError(t, SwapTriple(q, s))
	require.NoError(t, SwapTriple(q, s))
	assert.Equal(t, []piece.Piece{pA, pB, pC, pD, pE}, q.Items())
	assert.Equal(t, []piece.Piece{pZ, pY, pX}, s.Items())
}

func TestSwapTriple_LargerStackOnlyTopThree(t *testing.T) {
	q := newQueueOf(t, 5, pA, pB, pC)
	base := named("W", 10)
	s := newStackOf(t, 4, base, pX, pY, pZ)

	require.NoError(t, SwapTriple(q, s))
	assert.Equal(t, []piece.Piece{pZ, pY, pX}, q.Items())
	assert.Equal(t, []piece.Piece{pA, pB, pC, base}, s.Items())
}

func TestSwapTriple_Failures(t *testing.T) {
	tests := []struct {
		name  string
		queue []piece.Piece
		stack []piece.Piece
	}{
		{"short_stack", []piece.Piece{pA, pB, pC, pD, pE}, []piece.Piece{pX, pY}},
		{"short_queue", []piece.Piece{pA, pB}, []piece.Piece{pX, pY, pZ}},
		{"both_short", []piece.Piece{pA}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQueueOf(t, 5, tt.queue...)
			s := newStackOf(t, 3, tt.stack...)
			qBefore, sBefore := q.Items(), s.Items()

			err := SwapTriple(q, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInsufficientPieces))
			assert.Equal(t, CodeInsufficientPieces, apperr.CodeOf(err))
			assert.Equal(t, qBefore, q.Items(), "no partial swap")
			assert.Equal(t, sBefore, s.Items(), "no partial swap")
		})
	}
}
