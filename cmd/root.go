package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/DennyJohansson/todo/internal"
	"github.com/DennyJohansson/todo/internal/build_version"
)

const defaultPoll = 100 * time.Millisecond

var errNotATerminal = errors.New("todo needs an interactive terminal on stdin and stdout")

type options struct {
	seedPath       string
	empty          bool
	deferredCreate bool
	verbose        bool
	poll           time.Duration
	logFile        string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Keyboard-driven todo list for the terminal",
		Long: `todo - a todo list you drive from the keyboard in a full-screen terminal session.

Nothing is saved: the list lives only as long as the session.`,
		Version:       build_version.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	bindFlags(cmd.Flags(), opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.seedPath, "seed", "", "TOML file with the starting todos ([[item]] text/completed)")
	fs.BoolVar(&opts.empty, "empty", false, "start with an empty list (ignored with --seed)")
	fs.BoolVar(&opts.deferredCreate, "deferred-create", false, "the key after \"c\" adds a \"new todo\" item instead of being typed into a blank one")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "show the debug line")
	fs.DurationVar(&opts.poll, "poll", defaultPoll, "how long to wait for a key before checking for shutdown")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: no logs)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.poll <= 0 {
		return fmt.Errorf("--poll must be positive, got %s", opts.poll)
	}
	items, err := internal.SeedItems(opts.seedPath, opts.empty)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	logger, closeLog, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Restored after curses teardown, so the terminal comes back in cooked mode on every path out of
	// here, panics included.
	guard, err := internal.OpenTTYGuard(internal.CONTROLLING_TTY)
	if err != nil {
		logger.Warn("no tty snapshot", "err", err)
	}
	defer func() {
		if err := guard.Restore(); err != nil {
			logger.Warn("tty restore failed", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	screen, err := internal.NewCursesScreen(opts.poll)
	if err != nil {
		return err
	}
	defer screen.Close()

	controller, err := internal.NewController(screen, internal.NewList(items), internal.Options{
		Verbose:        opts.verbose,
		DeferredCreate: opts.deferredCreate,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer controller.Close()

	logger.Info("session started", "todos", len(items), "version", build_version.GetVersion())
	return internal.Run(ctx, controller, screen, logger)
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}
