package tracer

import (
	"fmt"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

// Status is the state of a streamline trace. Running is the only
// non-terminal state.
type Status int

const (
	Running Status = iota
	RanOutOfSteps
	OutOfBounds
	NonFinite
)

// Termination codes reported to callers and written to storage.
const (
	CodeRunning       = 0
	CodeRanOutOfSteps = 1
	CodeOutOfBounds   = 2
	CodeNonFinite     = -1
)

func (s Status) Code() int {
	switch s {
	case RanOutOfSteps:
		return CodeRanOutOfSteps
	case OutOfBounds:
		return CodeOutOfBounds
	case NonFinite:
		return CodeNonFinite
	default:
		return CodeRunning
	}
}

// StatusFromCode is the inverse of Status.Code.
func StatusFromCode(code int) (Status, error) {
	switch code {
	case CodeRunning:
		return Running, nil
	case CodeRanOutOfSteps:
		return RanOutOfSteps, nil
	case CodeOutOfBounds:
		return OutOfBounds, nil
	case CodeNonFinite:
		return NonFinite, nil
	default:
		return Running, fmt.Errorf("%w: %d", dynamo.ErrUnknownStatus, code)
	}
}

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case RanOutOfSteps:
		return "ran_out_of_steps"
	case OutOfBounds:
		return "out_of_bounds"
	case NonFinite:
		return "non_finite"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) Terminal() bool { return s != Running }
