package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-reserve/internal/cli"
	"github.com/huynhanx03/tetris-reserve/pkg/game"
	"github.com/huynhanx03/tetris-reserve/pkg/logger"
	"github.com/huynhanx03/tetris-reserve/pkg/piece"
	"github.com/huynhanx03/tetris-reserve/pkg/runtime"
	"github.com/huynhanx03/tetris-reserve/pkg/settings"
	"github.com/huynhanx03/tetris-reserve/pkg/unique"
)

type flags struct {
	configPath string
	queueSize  int
	stackSize  int
	logLevel   string
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "tetris-reserve",
		Short:         "Play pieces from a bounded queue with a reserve stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVar(&f.queueSize, "queue-size", settings.DefaultQueueCapacity, "piece queue capacity")
	cmd.Flags().IntVar(&f.stackSize, "stack-size", settings.DefaultStackCapacity, "reserve stack capacity")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "log file path, rotated by size")
	return cmd
}

// loadConfig reads the config file and applies explicitly set flags on top of it.
func loadConfig(cmd *cobra.Command, f *flags) (*settings.Config, error) {
	cfg, err := settings.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("queue-size") {
		cfg.Game.QueueCapacity = f.queueSize
	}
	if fs.Changed("stack-size") {
		cfg.Game.StackCapacity = f.stackSize
	}
	if fs.Changed("log-level") {
		cfg.Logger.LogLevel = f.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Logger.FileLogName = f.logFile
	}

	if err := settings.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *settings.Config) error {
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	defer func() { _ = log.Sync() }()

	gen := piece.NewGenerator(
		piece.ParseKinds(cfg.Game.Kinds),
		unique.NewSequence(cfg.Game.FirstID),
		runtime.FastPicker{},
	)
	board := game.NewBoard(cfg.Game, gen, log)
	board.Fill()

	log.Info("board ready",
		zap.Int("queue_capacity", cfg.Game.QueueCapacity),
		zap.Int("stack_capacity", cfg.Game.StackCapacity),
		zap.Strings("kinds", cfg.Game.Kinds),
	)

	return cli.NewApp(board, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
}
