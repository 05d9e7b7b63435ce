package internal

import (
	"fmt"

	"github.com/pkg/term"
)

const CONTROLLING_TTY = "/dev/tty"

// TTYGuard remembers the terminal attributes as they were before the session started, so they can be
// put back even if curses teardown didn't.
type TTYGuard struct {
	path string
	t    *term.Term
}

// OpenTTYGuard snapshots the attributes of the terminal at path. It changes nothing on the terminal.
func OpenTTYGuard(path string) (*TTYGuard, error) {
	t, err := term.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &TTYGuard{path: path, t: t}, nil
}

// Restore writes the snapshot back and releases the terminal.
func (g *TTYGuard) Restore() error {
	if g == nil || g.t == nil {
		return nil
	}
	defer func() {
		g.t.Close()
		g.t = nil
	}()
	if err := g.t.Restore(); err != nil {
		return fmt.Errorf("restore %s: %w", g.path, err)
	}
	return nil
}
