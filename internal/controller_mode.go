package internal

import "github.com/DennyJohansson/todo"

type ControllerMode interface {
	todo.Controller

	// Each mode places the cursor differently.
	GetCursorYX() (int, int)
}
