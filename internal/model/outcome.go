package model

// State identifies which variant of an Outcome is active.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the state of one asynchronous fetch at a point in time.
// Exactly one variant is active: Loading carries nothing, Success carries
// Value, Error carries Err. A fetch stream emits Loading first, then
// exactly one terminal outcome before the channel is closed.
type Outcome[T any] struct {
	State State
	Value T
	Err   error
}

// Loading returns the initial outcome of a fetch.
func Loading[T any]() Outcome[T] {
	return Outcome[T]{State: StateLoading}
}

// Success returns a terminal outcome carrying a value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{State: StateSuccess, Value: value}
}

// Failure returns a terminal outcome carrying an error.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{State: StateError, Err: err}
}

// Terminal reports whether the outcome ends its stream.
func (o Outcome[T]) Terminal() bool {
	return o.State != StateLoading
}

// Await drains an outcome stream and returns the value or error of its
// terminal outcome. It is the synchronous view of a fetch, used by the
// non-interactive commands.
func Await[T any](outcomes <-chan Outcome[T]) (T, error) {
	var last Outcome[T]
	for o := range outcomes {
		last = o
	}
	if last.State == StateError {
		var zero T
		return zero, last.Err
	}
	return last.Value, nil
}
