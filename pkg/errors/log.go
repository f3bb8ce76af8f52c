package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler writes reports as plain lines, one per error.
type LogHandler struct {
	// Out receives the output; nil means stderr.
	Out io.Writer
	// Verbose appends stack traces when present.
	Verbose bool
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError writes one line per error, using the Error formatting.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out(), "[recycler] %v\n", err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintln(h.out(), err.StackTrace)
	}
}

// HandlePanic writes one line per recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out(), "[recycler] %v\n", err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintln(h.out(), err.StackTrace)
	}
}
