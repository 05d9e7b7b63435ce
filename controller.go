package todo

// Controller - The main interface that represents the program. At any point there will be just one
// instantiation of Controller. The program passes the keys the user presses (named the way goncurses
// names them, e.g. "up", "enter", "\x1b", "a"), and the controller updates the todo list and the
// active mode, then redraws the screen with the new state.
//
// Handle returns io.EOF when the session should end.
type Controller interface {
	Handle(key string) error
	Close()
}
