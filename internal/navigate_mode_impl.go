package internal

import (
	"fmt"
	"io"
)

func newNavigateControllerMode(baseController *controllerImpl) *navigateModeController {
	return &navigateModeController{controllerImpl: baseController}
}

type navigateModeController struct {
	*controllerImpl
}

func (nc *navigateModeController) Handle(key string) error {
	switch k := key; k {
	case ESC_KEY:
		// Quit the program.
		return io.EOF
	case "j", "down":
		// Move the cursor down.
		nc.moveCursorVertical(1)
		return nil
	case "k", "up":
		// Move the cursor up.
		nc.moveCursorVertical(-1)
		return nil
	case "c":
		if nc.deferredCreate {
			// The item is added by whatever key comes next.
			nc.swapControllerMode(CREATE_MODE)
			return nil
		}
		nc.createItem("")
		return nil
	case "x":
		// Delete the todo at the cursor.
		ind, err := nc.getCurrItemInd()
		if err != nil {
			return err
		}
		if err := nc.list.Remove(ind); err != nil {
			return err
		}
		nc.normalizeCursorY()
		nc.userMsg = fmt.Sprintf("%d todos", nc.list.Len())
		return nil
	case "e":
		// Edit the todo at the cursor; there has to be one.
		if _, err := nc.getCurrItemInd(); err != nil {
			return err
		}
		nc.swapControllerMode(EDIT_MODE)
		return nil
	case "t":
		// Toggle the todo at the cursor.
		ind, err := nc.getCurrItemInd()
		if err != nil {
			return err
		}
		nc.userMsg = ""
		return nc.list.Toggle(ind)
	case "v":
		// Toggle verbose mode.
		nc.verbose = !nc.verbose
		return nil
	default:
		nc.userMsg = fmt.Sprintf("unrecognized key %q", k)
		return nil
	}
}

func (nc *navigateModeController) GetCursorYX() (int, int) {
	return nc.cursorY, 0
}
