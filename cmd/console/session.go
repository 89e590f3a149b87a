package main

import (
	"strings"

	"minilang/pkg/lang"
)

// Session accumulates console input into one growing program. Every submitted
// line re-runs the whole program from scratch, so bindings only ever come from
// accepted source and each run starts with an empty environment.
type Session struct {
	interp  lang.Interpreter
	source  []string // accepted lines
	pending []string // lines of a statement that is not finished yet
	printed int      // output lines already shown
}

// Submit adds line to the session. It returns the output lines the line
// produced. When the line leaves a statement unfinished, more is true and the
// line is held until the statement completes. A line that makes the program
// fail is dropped and its error returned.
func (s *Session) Submit(line string) (output []string, more bool, err error) {
	if strings.TrimSpace(line) == "" && !s.Pending() {
		return nil, false, nil
	}
	candidate := append(append([]string{}, s.source...), s.pending...)
	candidate = append(candidate, line)

	out, err := s.interp.Execute(strings.Join(candidate, "\n"))
	if err != nil {
		if lang.IsIncomplete(err) {
			s.pending = append(s.pending, line)
			return nil, true, nil
		}
		s.pending = nil
		return nil, false, err
	}

	s.source = candidate
	s.pending = nil
	output = out[s.printed:]
	s.printed = len(out)
	return output, false, nil
}

// Pending reports whether an unfinished statement is being held.
func (s *Session) Pending() bool {
	return len(s.pending) > 0
}

// Reset forgets all accepted and pending input.
func (s *Session) Reset() {
	s.source = nil
	s.pending = nil
	s.printed = 0
}

// Source returns the accepted program text.
func (s *Session) Source() string {
	return strings.Join(s.source, "\n")
}
