package internal

import (
	"unicode"
	"unicode/utf8"
)

func newEditControllerMode(baseController *controllerImpl) *editModeController {
	return &editModeController{controllerImpl: baseController}
}

type editModeController struct {
	*controllerImpl
}

func (ec *editModeController) Handle(key string) error {
	switch key {
	case ENTER_KEY, "\r", "\n", ESC_KEY:
		// Confirm or cancel; either way the text typed so far stays.
		ec.swapControllerMode(NAVIGATE_MODE)
		ec.userMsg = ""
		return nil
	case BACKSPACE_KEY, DELETE_KEY, CTRL_H_KEY:
		// Delete the last char of the todo.
		ind, err := ec.getCurrItemInd()
		if err != nil {
			return err
		}
		return ec.list.PopChar(ind)
	}
	ch, ok := printableRune(key)
	if !ok {
		// Arrows, function keys and the like do nothing while editing.
		return nil
	}
	ind, err := ec.getCurrItemInd()
	if err != nil {
		return err
	}
	return ec.list.AppendChar(ind, ch)
}

// The cursor sits just past the end of the text being typed, or on the last column once the text is
// wider than the screen (its row is cut short there).
func (ec *editModeController) GetCursorYX() (int, int) {
	ind, err := ec.getCurrItemInd()
	if err != nil {
		return ec.cursorY, 0
	}
	item, _ := ec.list.Item(ind)
	x := textEndX(item.Text)
	if width := ec.screen.Width(); width > 0 && x > width-1 {
		x = width - 1
	}
	return ec.cursorY, x
}

func printableRune(key string) (rune, bool) {
	ch, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || ch == utf8.RuneError {
		return 0, false
	}
	return ch, unicode.IsPrint(ch)
}
