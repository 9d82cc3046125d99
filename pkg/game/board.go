package game

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-reserve/pkg/common/apperr"
	"github.com/huynhanx03/tetris-reserve/pkg/piece"
	"github.com/huynhanx03/tetris-reserve/pkg/settings"
)

// State is a read-only copy of a Board for display.
type State struct {
	Queue           []piece.Piece // front to back
	Reserve         []piece.Piece // top to base
	QueueCapacity   int
	ReserveCapacity int
}

// Board owns the piece queue, the reserve stack and the generator that
// replenishes the queue. It is driven by a single control loop.
type Board struct {
	queue   *Queue
	reserve *Stack
	gen     Generator
	logger  *zap.Logger
}

// NewBoard creates a Board sized by cfg. The queue starts empty; call Fill to top it up.
func NewBoard(cfg settings.Game, gen Generator, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		queue:   NewQueue(cfg.QueueCapacity),
		reserve: NewStack(cfg.StackCapacity),
		gen:     gen,
		logger:  logger,
	}
}

// Fill enqueues generated pieces until the queue is full and returns how many were added.
func (b *Board) Fill() int {
	added := 0
	for !b.queue.IsFull() {
		if err := replenish(b.queue, b.gen); err != nil {
			break
		}
		added++
	}
	b.logger.Debug("queue filled", zap.Int("added", added), zap.Int("queue_size", b.queue.Size()))
	return added
}

// Play plays the front piece of the queue.
func (b *Board) Play() (piece.Piece, error) {
	p, err := Play(b.queue, b.gen)
	b.logOutcome("play", p, err)
	return p, err
}

// Reserve moves the front piece of the queue onto the reserve.
func (b *Board) Reserve() (piece.Piece, error) {
	p, err := Reserve(b.queue, b.reserve, b.gen)
	b.logOutcome("reserve", p, err)
	return p, err
}

// UseReserved discards the top piece of the reserve.
func (b *Board) UseReserved() (piece.Piece, error) {
	p, err := UseReserved(b.reserve)
	b.logOutcome("use_reserved", p, err)
	return p, err
}

// SwapFrontTop exchanges the queue front with the reserve top.
func (b *Board) SwapFrontTop() error {
	err := SwapFrontTop(b.queue, b.reserve)
	b.logOutcome("swap_front_top", piece.Piece{}, err)
	return err
}

// SwapTriple exchanges the first three queue pieces with the top three reserve pieces.
func (b *Board) SwapTriple() error {
	err := SwapTriple(b.queue, b.reserve)
	b.logOutcome("swap_triple", piece.Piece{}, err)
	return err
}

// Snapshot copies the current queue and reserve.
func (b *Board) Snapshot() State {
	return State{
		Queue:           b.queue.Items(),
		Reserve:         b.reserve.Items(),
		QueueCapacity:   b.queue.Capacity(),
		ReserveCapacity: b.reserve.Capacity(),
	}
}

func (b *Board) logOutcome(op string, p piece.Piece, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("queue_size", b.queue.Size()),
		zap.Int("reserve_size", b.reserve.Size()),
	}
	if err != nil {
		fields = append(fields, zap.Int("code", apperr.CodeOf(err)), zap.Error(err))
		b.logger.Warn("operation rejected", fields...)
		return
	}
	if p != (piece.Piece{}) {
		fields = append(fields, zap.Stringer("piece", p))
	}
	b.logger.Info("operation applied", fields...)
}
