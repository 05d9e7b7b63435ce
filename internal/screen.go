package internal

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	HELP = `Todo List
---- use Keyboard to navigate ----
 - "j"/"k" or arrows move the cursor
 - "c" creates a new todo
 - "x" deletes the todo at the cursor
 - "e" edits the todo at the cursor
 - "t" toggles the todo at the cursor
 - Esc quits (or leaves edit mode)
 - Ctrl-C quits from any mode
----------------------------------`

	DONE_MARKER    = "[x] "
	PENDING_MARKER = "[ ] "
)

// Screen is the only thing that writes to the terminal.
type Screen interface {
	Render(frame Frame) error
	// Width is the number of columns available for a line.
	Width() int
	Close()
}

// Frame is everything one redraw puts on screen. The same Frame always renders the same way.
type Frame struct {
	Banner []string
	Rows   []Row
	Debug  string // Empty unless verbose.
	Status string // Shown on the bottom line.

	CursorY, CursorX int
}

type Row struct {
	Marker    string
	Text      string
	Completed bool
}

func bannerLines() []string {
	return strings.Split(HELP, "\n")
}

// BuildFrame lays out the banner and one row per item. Item text that doesn't fit in width columns is
// cut, so a long todo never wraps onto the next item's row.
func BuildFrame(banner []string, items []Item, width int) Frame {
	f := Frame{
		Banner: banner,
		Rows:   make([]Row, 0, len(items)),
	}
	for _, item := range items {
		marker := PENDING_MARKER
		if item.Completed {
			marker = DONE_MARKER
		}
		text := singleLine(item.Text)
		if width > len(marker) {
			text = runewidth.Truncate(text, width-len(marker), "…")
		}
		f.Rows = append(f.Rows, Row{Marker: marker, Text: text, Completed: item.Completed})
	}
	return f
}

// singleLine replaces control characters, so an item always takes exactly one screen row.
func singleLine(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '\uFFFD'
		}
		return r
	}, text)
}

// textEndX is the column just past an item's text, where typed characters land.
func textEndX(text string) int {
	return len(PENDING_MARKER) + runewidth.StringWidth(singleLine(text))
}
