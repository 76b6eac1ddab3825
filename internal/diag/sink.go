package diag

import (
	"fmt"
	"io"
)

// Sink is where translation errors are emitted, one per line, in the
// "error:<location>: <message>" form specified by the error-handling
// design. Nothing in this module constructs one: the CLI driver prints
// the error returned by translation directly to os.Stderr.
type Sink struct {
	w io.Writer
}

// NewSink wraps w as a diagnostic sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Emit writes a single diagnostic line for err.
func (s *Sink) Emit(err *Error) {
	fmt.Fprintln(s.w, err.Error())
}

// EmitAll writes one line per error, in order.
func (s *Sink) EmitAll(errs []*Error) {
	for _, err := range errs {
		s.Emit(err)
	}
}
