package handoff

import (
	"io"
	"strings"
)

// Writer emits the protocol for a parent process. Each command is written
// with a single Write call.
type Writer struct {
	w        io.Writer
	launched bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Arg(value string) error {
	return w.Write(Arg(value))
}

func (w *Writer) Property(key, value string) error {
	return w.Write(Property(key, value))
}

func (w *Writer) Launch(entryPoint string) error {
	return w.Write(Launch(entryPoint))
}

func (w *Writer) Write(cmd Command) error {
	if w.launched {
		return ErrAlreadyLaunched
	}
	if err := cmd.Validate(); err != nil {
		return err
	}
	var b strings.Builder
	for _, line := range cmd.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w.w, b.String()); err != nil {
		return err
	}
	if cmd.Kind == KindLaunch {
		w.launched = true
	}
	return nil
}
