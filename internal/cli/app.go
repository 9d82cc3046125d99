// Package cli implements the console menu that drives a game.Board.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-reserve/pkg/game"
)

// Menu choices.
const (
	choiceExit         = "0"
	choicePlay         = "1"
	choiceReserve      = "2"
	choiceUseReserved  = "3"
	choiceSwapFrontTop = "4"
	choiceSwapTriple   = "5"
)

// ErrExitRequested is returned by handleChoice when the user picks exit.
var ErrExitRequested = errors.New("exit requested")

// App is the console front end for a Board.
type App struct {
	board   *game.Board
	scanner *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// NewApp creates an App reading choices from in and writing to out.
func NewApp(board *game.Board, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		board:   board,
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run shows the state and menu until the user exits or input ends.
// Rejected operations are reported and the loop carries on.
func (a *App) Run() error {
	a.logger.Info("session started")
	defer a.logger.Info("session ended")

	for {
		fmt.Fprintln(a.out)
		RenderState(a.out, a.board.Snapshot())
		a.printMenu()
		fmt.Fprint(a.out, "Choose an option: ")

		if !a.scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(a.scanner.Text())
		fmt.Fprintln(a.out)

		if err := a.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExitRequested) {
				return nil
			}
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}

	if err := a.scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	return nil
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "Options:")
	fmt.Fprintln(a.out, "1 - Play the front piece")
	fmt.Fprintln(a.out, "2 - Reserve the front piece")
	fmt.Fprintln(a.out, "3 - Use the reserved piece")
	fmt.Fprintln(a.out, "4 - Swap queue front with reserve top")
	fmt.Fprintln(a.out, "5 - Swap the first 3 queue pieces with the 3 reserve pieces")
	fmt.Fprintln(a.out, "0 - Exit")
}

func (a *App) handleChoice(choice string) error {
	switch choice {
	case choicePlay:
		p, err := a.board.Play()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Piece played: %s\n", p)
	case choiceReserve:
		p, err := a.board.Reserve()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Piece reserved: %s\n", p)
	case choiceUseReserved:
		p, err := a.board.UseReserved()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Reserved piece used: %s\n", p)
	case choiceSwapFrontTop:
		if err := a.board.SwapFrontTop(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Swapped queue front with reserve top")
	case choiceSwapTriple:
		if err := a.board.SwapTriple(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Swapped 3 pieces between queue and reserve")
	case choiceExit:
		fmt.Fprintln(a.out, "Exiting...")
		return ErrExitRequested
	default:
		fmt.Fprintln(a.out, "Invalid option!")
	}
	return nil
}
