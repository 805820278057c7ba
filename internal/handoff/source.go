package handoff

import (
	"bufio"
	"io"
	"strings"
)

const DefaultMaxLineBytes = 1 << 20

// LineSource yields protocol lines one at a time. Next returns io.EOF once
// the source is exhausted. Implementations may block.
type LineSource interface {
	Next() (string, error)
}

// ScannerSource reads newline-delimited lines from an io.Reader.
type ScannerSource struct {
	scanner *bufio.Scanner
}

// NewScannerSource wraps r. maxLineBytes <= 0 selects DefaultMaxLineBytes.
func NewScannerSource(r io.Reader, maxLineBytes int) *ScannerSource {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	scanner := bufio.NewScanner(r)
	initial := 64 * 1024
	if initial > maxLineBytes {
		initial = maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)
	return &ScannerSource{scanner: scanner}
}

func (s *ScannerSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// SliceSource serves lines from memory.
type SliceSource struct {
	lines []string
	pos   int
}

func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining returns the lines not yet consumed.
func (s *SliceSource) Remaining() []string {
	return s.lines[s.pos:]
}

func trimLine(line string) string {
	return strings.TrimSuffix(line, "\r")
}
