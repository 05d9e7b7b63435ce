package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/DennyJohansson/todo"
)

// Input is where keys come from. Poll waits a bounded time and reports ok=false when no key arrived.
type Input interface {
	Poll() (key string, ok bool)
}

// Run feeds keys to the controller until it asks to quit (io.EOF), it fails, or ctx is done. The
// bounded Poll is what lets a cancelled ctx be noticed while the user is idle.
func Run(ctx context.Context, controller todo.Controller, input Input, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	handled := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("session interrupted", "keys", handled, "cause", context.Cause(ctx))
			return nil
		default:
		}

		key, ok := input.Poll()
		if !ok {
			continue
		}
		handled++
		if err := controller.Handle(key); err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("session ended", "keys", handled)
				return nil
			}
			logger.Error("session failed", "keys", handled, "err", err)
			return err
		}
	}
}
