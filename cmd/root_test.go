package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/term"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootFlagDefaults(t *testing.T) {
	cmd := newRootCmd()
	fs := cmd.Flags()
	poll, err := fs.GetDuration("poll")
	if err != nil {
		t.Fatalf("poll flag: %v", err)
	}
	if poll != 100*time.Millisecond {
		t.Fatalf("poll = %s, want 100ms", poll)
	}
	for _, name := range []string{"seed", "empty", "deferred-create", "verbose", "log-file", "log-level"} {
		if fs.Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if fs.ShorthandLookup("v") == nil {
		t.Error("missing -v shorthand")
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := execute(t, "groceries.txt"); err == nil {
		t.Fatal("expected an error for a positional argument")
	}
}

func TestRootRejectsBadPoll(t *testing.T) {
	_, err := execute(t, "--poll", "0s")
	if err == nil || !strings.Contains(err.Error(), "--poll") {
		t.Fatalf("err = %v, want --poll error", err)
	}
}

func TestRootRejectsBadSeedBeforeTerminal(t *testing.T) {
	_, err := execute(t, "--seed", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "load seed") {
		t.Fatalf("err = %v, want seed error", err)
	}
}

func TestRootNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running on a terminal")
	}
	_, err := execute(t, "--empty")
	if !errors.Is(err, errNotATerminal) {
		t.Fatalf("err = %v, want %v", err, errNotATerminal)
	}
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "dev") {
		t.Fatalf("version output = %q", out)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("discard without file", func(t *testing.T) {
		logger, closeLog, err := newLogger("", "debug")
		if err != nil {
			t.Fatalf("newLogger: %v", err)
		}
		defer closeLog()
		logger.Info("dropped")
	})

	t.Run("writes to file at level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.log")
		logger, closeLog, err := newLogger(path, "warn")
		if err != nil {
			t.Fatalf("newLogger: %v", err)
		}
		logger.Info("too quiet")
		logger.Warn("tty restore failed", "err", "EIO")
		closeLog()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		got := string(data)
		if strings.Contains(got, "too quiet") {
			t.Fatalf("info line logged at warn level: %q", got)
		}
		if !strings.Contains(got, "level=WARN") || !strings.Contains(got, "tty restore failed") {
			t.Fatalf("log = %q", got)
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if _, _, err := newLogger("", "loud"); err == nil {
			t.Fatal("expected error for unknown level")
		}
	})
}
