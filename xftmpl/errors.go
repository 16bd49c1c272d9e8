package xftmpl

import "fmt"

// LexError is a fatal lexical error with its input location. Line is 1-based;
// File may be empty when the input has no name (e.g. a bytes.Reader).
type LexError struct {
	File    string
	Line    int
	Message string
}

func (e *LexError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: error: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: error: %s", e.Line, e.Message)
}

// HeaderError reports an input header field that failed validation, naming
// the offending field and the bytes found.
type HeaderError struct {
	Field string // "magic", "version", "format" or "float size"
	Got   string
}

func (e *HeaderError) Error() string {
	switch e.Field {
	case "magic":
		return fmt.Sprintf("invalid magic value '%s'", e.Got)
	case "version":
		return fmt.Sprintf("unsupported version '%s'", e.Got)
	case "format":
		return "only text encoded X files are supported"
	case "float size":
		return fmt.Sprintf("only 32-bit or 64-bit float format supported, not '%s'", e.Got)
	default:
		return fmt.Sprintf("invalid header field %s: '%s'", e.Field, e.Got)
	}
}

// GUIDError reports a malformed GUID literal, carrying the raw text and which
// part of the fixed grammar failed.
type GUIDError struct {
	Text   string
	Reason string
}

func (e *GUIDError) Error() string {
	return fmt.Sprintf("invalid GUID '%s': %s", e.Text, e.Reason)
}
