package session

// ResultStatus indicates the outcome of a key.
type ResultStatus uint8

const (
	// StatusOK indicates the key changed something.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the key had no effect.
	StatusNoOp
	// StatusError indicates the key's action failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result describes what handling one key did.
type Result struct {
	Status ResultStatus
	// Message is shown in the status line until the next key.
	Message string
	// Redraw asks for the screen to be cleared before the next frame.
	Redraw bool
	// Quit ends the session.
	Quit bool
	// Err is the failure behind a StatusError result.
	Err error
}

// OK returns a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a result for a key with no effect.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Redraw returns a successful result that needs a full redraw.
func Redraw() Result {
	return Result{Status: StatusOK, Redraw: true}
}

// Error returns a failed result whose message is err's text.
func Error(err error) Result {
	return Result{Status: StatusError, Message: err.Error(), Err: err}
}
