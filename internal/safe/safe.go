// Package safe runs user-supplied callbacks, turning panics into errors.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const stackDepth = 32

// RecoveredError is returned when a callback panicked. Stack holds the
// program counters of the goroutine at the point of recovery.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}

func (e *RecoveredError) Unwrap() error { return e.Err }

// Call executes fn and returns a *RecoveredError if it panics.
func Call(fn func()) error {
	return CallE(func() error {
		fn()
		return nil
	})
}

// CallE executes fn and returns its error. A panic is converted into a
// *RecoveredError which wraps the panic value when it is an error.
func CallE(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var cause error
		if e, ok := r.(error); ok {
			cause = e
		} else {
			cause = fmt.Errorf("panic: %v", r)
		}
		stack := make([]uintptr, stackDepth)
		stack = stack[:runtime.Callers(3, stack)]
		err = &RecoveredError{Err: cause, Stack: stack}
	}()
	return fn()
}

// IsRecovered reports whether err came from a recovered panic.
func IsRecovered(err error) bool {
	var recovered *RecoveredError
	return errors.As(err, &recovered)
}
