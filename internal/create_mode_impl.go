package internal

func newCreateControllerMode(baseController *controllerImpl) *createModeController {
	return &createModeController{controllerImpl: baseController}
}

// createModeController lasts for exactly one key. That key only triggers adding the item; it is not
// typed into it.
type createModeController struct {
	*controllerImpl
}

func (cc *createModeController) Handle(key string) error {
	cc.createItem(PLACEHOLDER_TEXT)
	return nil
}

func (cc *createModeController) GetCursorYX() (int, int) {
	return cc.cursorY, 0
}
