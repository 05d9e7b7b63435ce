package internal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DennyJohansson/todo"
	"github.com/DennyJohansson/todo/internal/build_version"
)

type Mode string

const (
	// Controller modes.
	NAVIGATE_MODE Mode = "NAVIGATE"
	CREATE_MODE   Mode = "CREATE"
	EDIT_MODE     Mode = "EDIT"

	// Key names, as goncurses.KeyString reports them.
	ESC_KEY       = "\x1b"
	DELETE_KEY    = "\x7f"
	BACKSPACE_KEY = "backspace"
	CTRL_H_KEY    = "\b"
	ENTER_KEY     = "enter"
	RESIZE_KEY    = "resize"
	// Always ends the session, whatever the mode.
	QUIT_KEY = "\x03"

	// Text given to an item created from CREATE mode.
	PLACEHOLDER_TEXT = "new todo"

	NO_ITEM_MSG = "no item at cursor"
)

type Options struct {
	// Verbose shows the debug line from the start.
	Verbose bool
	// DeferredCreate makes the create key enter CREATE mode, where the next key (whatever it is) adds
	// the item. Otherwise the item is added right away and the next key is already text.
	DeferredCreate bool
	Logger         *slog.Logger
}

func NewController(screen Screen, list *List, opts Options) (todo.Controller, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	banner := bannerLines()
	c := &controllerImpl{
		screen:         screen,
		list:           list,
		logger:         logger,
		banner:         banner,
		cursorY:        len(banner),
		userMsg:        fmt.Sprintf("%d todos", list.Len()),
		verbose:        opts.Verbose,
		deferredCreate: opts.DeferredCreate,
	}

	// Initialize in NAVIGATE mode.
	c.swapControllerMode(NAVIGATE_MODE)

	// Initial update of the screen.
	if err := c.sync(); err != nil {
		return nil, err
	}
	return c, nil
}

type controllerImpl struct {
	screen Screen
	list   *List
	logger *slog.Logger

	// Static lines drawn above the first item.
	banner []string
	// The screen row the cursor is on. The item it addresses is cursorY - len(banner); this is tracked
	// here and never read back from the terminal.
	cursorY int
	// Shown to user at bottom of screen.
	userMsg string

	// Mode info.
	mode           Mode
	verbose        bool
	deferredCreate bool

	// Different modes are implemented here.
	activeControllerMode ControllerMode
}

var _ todo.Controller = (*controllerImpl)(nil)

func (c *controllerImpl) Handle(key string) error {
	if key == QUIT_KEY {
		c.logger.Debug("quit key", "mode", c.mode)
		return io.EOF
	}
	if key == RESIZE_KEY {
		return c.sync()
	}
	err := c.activeControllerMode.Handle(key)
	switch {
	case errors.Is(err, ErrOutOfRange):
		// Keys that need an item are ignored when the cursor isn't on one.
		c.userMsg = NO_ITEM_MSG
		c.logger.Info("key rejected", "key", fmt.Sprintf("%q", key), "mode", c.mode, "row", c.cursorY, "todos", c.list.Len())
	case err != nil:
		return err
	}
	return c.sync()
}

func (c *controllerImpl) Close() {
	c.screen.Close()
}

func (c *controllerImpl) swapControllerMode(mode Mode) {
	if c.mode != mode {
		c.logger.Debug("mode change", "from", c.mode, "to", mode)
	}
	c.mode = mode
	switch mode {
	case NAVIGATE_MODE:
		c.activeControllerMode = newNavigateControllerMode(c)
	case CREATE_MODE:
		c.userMsg = "-- CREATE --"
		c.activeControllerMode = newCreateControllerMode(c)
	case EDIT_MODE:
		c.userMsg = "-- EDIT --"
		c.activeControllerMode = newEditControllerMode(c)
	}
}

func (c *controllerImpl) headerRows() int {
	return len(c.banner)
}

// The index of the item under the cursor, or ErrOutOfRange if the cursor isn't on an item (the list
// is empty).
func (c *controllerImpl) getCurrItemInd() (int, error) {
	return IndexForRow(c.cursorY, c.headerRows(), c.list.Len())
}

func (c *controllerImpl) moveCursorVertical(dy int) {
	newY := c.cursorY + dy
	if _, err := IndexForRow(newY, c.headerRows(), c.list.Len()); err != nil {
		// Nothing to move to; the cursor stays on the first or last item.
		return
	}
	c.cursorY = newY
}

// Keep the cursor on an item after the list shrinks. With no items left it rests on the first item
// row.
func (c *controllerImpl) normalizeCursorY() {
	lastY := RowForIndex(c.list.Len()-1, c.headerRows())
	if c.cursorY > lastY {
		c.cursorY = lastY
	}
	if c.cursorY < c.headerRows() {
		c.cursorY = c.headerRows()
	}
}

// Add an item, put the cursor on it and start editing it.
func (c *controllerImpl) createItem(text string) {
	ind := c.list.Add(text)
	c.cursorY = RowForIndex(ind, c.headerRows())
	c.logger.Debug("todo created", "index", ind)
	c.swapControllerMode(EDIT_MODE)
}

func (c *controllerImpl) sync() error {
	frame := BuildFrame(c.banner, c.list.Items(), c.screen.Width())
	frame.Status = c.userMsg
	if c.verbose {
		frame.Debug = c.debugLine()
	}
	frame.CursorY, frame.CursorX = c.activeControllerMode.GetCursorYX()
	if err := c.screen.Render(frame); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (c *controllerImpl) debugLine() string {
	ind, err := c.getCurrItemInd()
	if err != nil {
		ind = -1
	}
	return fmt.Sprintf("DEBUG: build=%s; todos=%d; header rows=%d; cursor row=%d; index=%d; mode=%s",
		build_version.GetVersion(), c.list.Len(), c.headerRows(), c.cursorY, ind, c.mode)
}
