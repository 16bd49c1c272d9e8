package xftmpl

import (
	"bufio"
	"fmt"
	"io"
)

// Source is a pull-based byte cursor over the template text. It tracks the
// current 1-based line number and supports pushing back exactly one byte.
type Source struct {
	r    *bufio.Reader
	name string
	line int
}

// NewSource creates a cursor over r. name is used in error locations and may
// be empty.
func NewSource(r io.Reader, name string) *Source {
	return &Source{
		r:    bufio.NewReader(r),
		name: name,
		line: 1,
	}
}

// Name returns the input name given at construction.
func (s *Source) Name() string { return s.name }

// Line returns the current 1-based line number.
func (s *Source) Line() int { return s.line }

// Next returns the next input byte. io.EOF is the normal end-of-input
// condition, not a failure.
func (s *Source) Next() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		s.line++
	}
	return b, nil
}

// Unread pushes the most recently read byte back onto the stream. Push-back
// depth is 1: a second Unread without an intervening Next is a programming
// error and panics.
func (s *Source) Unread(b byte) {
	if err := s.r.UnreadByte(); err != nil {
		panic("xftmpl: Unread without preceding Next")
	}
	if b == '\n' {
		s.line--
	}
}

// ReadFull fills p from the stream. A short read, including EOF, is reported
// as an error; it is used for fixed-size productions (input header, GUID
// payload) where truncation is a failure.
func (s *Source) ReadFull(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	for _, b := range p[:n] {
		if b == '\n' {
			s.line++
		}
	}
	return err
}

// errorf builds a LexError at the cursor's current location.
func (s *Source) errorf(format string, args ...interface{}) *LexError {
	return &LexError{
		File:    s.name,
		Line:    s.line,
		Message: fmt.Sprintf(format, args...),
	}
}
