package lang

import (
	"errors"
	"fmt"
)

// SyntaxError reports input that does not match the grammar. It is raised by
// Parse and aborts the whole parse.
type SyntaxError struct {
	Line  int // 1-based line of the offending token, 0 when unknown
	Msg   string
	AtEnd bool // the input ran out before the statement was complete
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// RuntimeError reports a semantic failure while running a program: an
// undeclared or redeclared variable, or a node with no evaluation rule.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsIncomplete reports whether err is a *SyntaxError caused only by the input
// ending early, so that more input could still complete the program.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.AtEnd
}

// IsRuntimeError reports whether err is, or wraps, a *RuntimeError.
func IsRuntimeError(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re)
}
