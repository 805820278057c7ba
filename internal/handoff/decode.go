package handoff

import (
	"errors"
	"fmt"
	"io"
)

// Decoder reads commands from a LineSource. The tag line is checked before
// any payload line is read, so an unknown tag consumes exactly one line.
type Decoder struct {
	src   LineSource
	lines int
}

func NewDecoder(src LineSource) *Decoder {
	return &Decoder{src: src}
}

// Lines reports how many lines have been consumed so far.
func (d *Decoder) Lines() int {
	return d.lines
}

// Next decodes one command. A clean end of input before a tag and a
// truncated command both yield ErrUnexpectedEndOfStream.
func (d *Decoder) Next() (Command, error) {
	tag, err := d.line()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Command{}, fmt.Errorf("%w: no launch command after %d lines", ErrUnexpectedEndOfStream, d.lines)
		}
		return Command{}, err
	}

	kind := Kind(tag)
	n, ok := kind.Payload()
	if !ok {
		return Command{}, fmt.Errorf("%w: %q at line %d", ErrUnknownCommand, tag, d.lines)
	}

	payload := make([]string, n)
	for i := range payload {
		v, err := d.line()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Command{}, fmt.Errorf("%w: %s truncated after %d of %d payload lines", ErrUnexpectedEndOfStream, kind, i, n)
			}
			return Command{}, err
		}
		payload[i] = v
	}

	if kind == KindProperty {
		return Property(payload[0], payload[1]), nil
	}
	return Command{Kind: kind, Value: payload[0]}, nil
}

func (d *Decoder) line() (string, error) {
	raw, err := d.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: %w", ErrLineSource, err)
	}
	d.lines++
	return trimLine(raw), nil
}
