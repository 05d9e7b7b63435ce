package internal

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	gc "github.com/gbin/goncurses"
)

const (
	// Color pairs.
	COLOR_PAIR_PENDING = 1
	COLOR_PAIR_DONE    = 2
	COLOR_PAIR_DEBUG   = 3

	// How long ncurses waits after Esc for the rest of an escape sequence (ncurses default: 1s).
	escDelayMillis = "25"
)

var errScreenClosed = errors.New("screen closed")

// CursesScreen owns the terminal for the whole session: raw input, the alternate screen and colors.
// Close puts the terminal back the way it was.
type CursesScreen struct {
	window *gc.Window
	colors bool
	keys   keyDecoder
}

var _ Screen = (*CursesScreen)(nil)

func NewCursesScreen(poll time.Duration) (*CursesScreen, error) {
	if _, ok := os.LookupEnv("ESCDELAY"); !ok {
		os.Setenv("ESCDELAY", escDelayMillis)
	}
	window, err := gc.Init()
	if err != nil {
		return nil, fmt.Errorf("init curses: %w", err)
	}
	s := &CursesScreen{window: window}

	gc.Echo(false)
	// Raw rather than cbreak so Ctrl-C arrives as a key instead of a signal.
	gc.Raw(true)
	window.Keypad(true)
	window.Timeout(int(poll / time.Millisecond))

	if gc.HasColors() {
		gc.StartColor()
		gc.UseDefaultColors()
		gc.InitPair(COLOR_PAIR_PENDING, gc.C_GREEN, -1)
		gc.InitPair(COLOR_PAIR_DONE, gc.C_RED, -1)
		gc.InitPair(COLOR_PAIR_DEBUG, gc.C_YELLOW, -1)
		s.colors = true
	}
	return s, nil
}

// Poll waits up to the poll timeout for a key. ok is false when nothing was pressed.
func (s *CursesScreen) Poll() (key string, ok bool) {
	if s.window == nil {
		return "", false
	}
	return s.keys.decode(s.window.GetChar())
}

// keyDecoder names keys the way goncurses does, except that wgetch hands over a UTF-8 character one
// byte at a time: those bytes are held until the character is complete and then reported as one key.
type keyDecoder struct {
	pending []byte
}

func (d *keyDecoder) decode(k gc.Key) (string, bool) {
	if k >= 0x80 && k <= 0xff {
		d.pending = append(d.pending, byte(k))
		if !utf8.FullRune(d.pending) {
			return "", false
		}
		ch, _ := utf8.DecodeRune(d.pending)
		d.pending = d.pending[:0]
		if ch == utf8.RuneError {
			return "", false
		}
		return string(ch), true
	}
	// Anything else ends a sequence; an unfinished one is dropped.
	d.pending = d.pending[:0]
	if k <= 0 {
		return "", false
	}
	if k == gc.KEY_RESIZE {
		return RESIZE_KEY, true
	}
	name := gc.KeyString(k)
	if k > 0xff && utf8.RuneCountInString(name) == 1 {
		// ncurses key codes without a name would otherwise look like printable runes.
		name = fmt.Sprintf("key(%d)", k)
	}
	return name, true
}

func (s *CursesScreen) Width() int {
	if s.window == nil {
		return 0
	}
	_, maxX := s.window.MaxYX()
	return maxX
}

func (s *CursesScreen) Render(frame Frame) error {
	if s.window == nil {
		return errScreenClosed
	}
	w := s.window
	maxY, _ := w.MaxYX()

	w.Erase()
	y := 0
	for _, line := range frame.Banner {
		w.MovePrint(y, 0, line)
		y++
	}
	for _, row := range frame.Rows {
		pair := int16(COLOR_PAIR_PENDING)
		if row.Completed {
			pair = COLOR_PAIR_DONE
		}
		w.Move(y, 0)
		s.colorOn(pair)
		w.Print(row.Marker)
		s.colorOff(pair)
		w.Print(row.Text)
		y++
	}
	// We reserve the bottom 2 lines for debug and user messages.
	if frame.Debug != "" && maxY >= 2 {
		w.AttrOn(gc.A_DIM)
		s.colorOn(COLOR_PAIR_DEBUG)
		w.MovePrint(maxY-2, 0, frame.Debug)
		s.colorOff(COLOR_PAIR_DEBUG)
		w.AttrOff(gc.A_DIM)
	}
	if maxY >= 1 {
		w.MovePrint(maxY-1, 0, frame.Status)
	}

	w.Move(frame.CursorY, frame.CursorX)
	w.Refresh()
	return nil
}

func (s *CursesScreen) colorOn(pair int16) {
	if s.colors {
		s.window.ColorOn(pair)
	}
}

func (s *CursesScreen) colorOff(pair int16) {
	if s.colors {
		s.window.ColorOff(pair)
	}
}

// Close leaves the alternate screen and restores the terminal's input mode. Safe to call more than
// once.
func (s *CursesScreen) Close() {
	if s.window == nil {
		return
	}
	s.window = nil
	gc.End()
}
