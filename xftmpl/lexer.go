package xftmpl

import (
	"io"
	"strconv"
)

// MaxNameLen caps the recorded spelling of a NAME token. Longer identifiers
// are silently truncated: the lexer still consumes every matching byte from
// the stream, but only the first MaxNameLen bytes reach the output. This
// mirrors the behavior existing template files rely on.
const MaxNameLen = 512

// Lexer classifies the template text one lexical unit at a time and feeds
// each classified token straight to the encoder. It holds no lookahead
// beyond the source's single push-back byte.
type Lexer struct {
	src  *Source
	enc  *Encoder
	dirs *Directives
}

// NewLexer creates a lexer pulling from src, encoding into enc, and
// recording #pragma directives into dirs.
func NewLexer(src *Source, enc *Encoder, dirs *Directives) *Lexer {
	return &Lexer{src: src, enc: enc, dirs: dirs}
}

// Run tokenizes until end of input, encoding every token. The first lexical
// error aborts the run.
func (l *Lexer) Run() error {
	for {
		more, err := l.Next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Next consumes one lexical unit. Whitespace, comments and directive lines
// consume input but emit no token. Returns false when input is exhausted.
func (l *Lexer) Next() (bool, error) {
	c, err := l.src.Next()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, l.src.errorf("read input: %v", err)
	}

	switch c {
	case ' ', '\t', '\r', '\n':
		return true, nil

	case '{':
		l.enc.Code(TokenOBrace)
	case '}':
		l.enc.Code(TokenCBrace)
	case '[':
		l.enc.Code(TokenOBracket)
	case ']':
		l.enc.Code(TokenCBracket)
	case '(':
		l.enc.Code(TokenOParen)
	case ')':
		l.enc.Code(TokenCParen)
	case ',':
		l.enc.Code(TokenComma)
	case ';':
		l.enc.Code(TokenSemicolon)
	case '.':
		l.enc.Code(TokenDot)

	case '/':
		return l.scanComment()

	case '#':
		return true, l.scanDirective()

	case '<':
		return true, l.scanGUID()

	case '"':
		return true, l.scanString()

	default:
		if isDigit(c) || c == '-' {
			l.src.Unread(c)
			return true, l.scanNumber()
		}
		if isAlpha(c) || c == '_' {
			l.src.Unread(c)
			return true, l.scanName()
		}
		return false, l.src.errorf("invalid character '%c' to start token", c)
	}

	return true, nil
}

// scanComment handles the byte after a leading '/'. Only '//' line comments
// exist; the comment body runs to end of line. A comment cut off by EOF ends
// tokenization normally.
func (l *Lexer) scanComment() (bool, error) {
	c, err := l.src.Next()
	if err != nil || c != '/' {
		return false, l.src.errorf("invalid single '/' comment token")
	}
	for {
		c, err = l.src.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, l.src.errorf("read input: %v", err)
		}
		if c == '\n' {
			return true, nil
		}
	}
}

// scanDirective buffers the rest of a '#' line and interprets
// `pragma xftmpl name|size <identifier>`. Any other shape is ignored without
// error. The line must end in a newline; hitting EOF first is fatal.
func (l *Lexer) scanDirective() error {
	var line []byte
	for {
		c, err := l.src.Next()
		if err == io.EOF {
			return l.src.errorf("line too long")
		}
		if err != nil {
			return l.src.errorf("read input: %v", err)
		}
		if c == '\n' {
			break
		}
		line = append(line, c)
	}

	words := splitDirective(line)
	if len(words) < 3 || words[0] != "pragma" || words[1] != "xftmpl" {
		return nil
	}
	value := ""
	if len(words) > 3 {
		value = words[3]
	}
	switch words[2] {
	case "name":
		l.dirs.SetName(value)
	case "size":
		l.dirs.SetSize(value)
	}
	return nil
}

// splitDirective splits a directive line on spaces and tabs.
func splitDirective(line []byte) []string {
	var words []string
	start := -1
	for i, c := range line {
		if c == ' ' || c == '\t' {
			if start >= 0 {
				words = append(words, string(line[start:i]))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(line[start:]))
	}
	return words
}

// scanGUID handles a '<' lead byte: exactly 37 more bytes form the
// hyphen-delimited hex groups and the closing '>'.
func (l *Lexer) scanGUID() error {
	var raw [37]byte
	if err := l.src.ReadFull(raw[:]); err != nil {
		return l.src.errorf("truncated GUID")
	}
	if raw[36] != '>' {
		return l.src.errorf("%v", &GUIDError{Text: "<" + string(raw[:]), Reason: "missing closing '>'"})
	}
	g, err := ParseGUID(string(raw[:36]))
	if err != nil {
		return l.src.errorf("%v", err)
	}
	l.enc.GUID(g)
	return nil
}

// scanString consumes bytes up to the closing quote. Escape sequences are
// not interpreted; a backslash is recorded verbatim.
func (l *Lexer) scanString() error {
	var s []byte
	for {
		c, err := l.src.Next()
		if err != nil {
			return l.src.errorf("unterminated string")
		}
		if c == '"' {
			l.enc.String(s)
			return nil
		}
		s = append(s, c)
	}
}

// scanNumber consumes a numeric literal: an optional leading '-', decimal
// digits, and at most one '.'. A literal containing '.' encodes as a 32-bit
// float, otherwise as a 32-bit signed integer.
func (l *Lexer) scanNumber() error {
	var lit []byte
	dot := false
	for {
		c, err := l.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return l.src.errorf("read input: %v", err)
		}
		ok := isDigit(c) ||
			(len(lit) == 0 && c == '-') ||
			(!dot && c == '.')
		if !ok {
			l.src.Unread(c)
			break
		}
		if c == '.' {
			dot = true
		}
		lit = append(lit, c)
	}

	if dot {
		v, err := strconv.ParseFloat(string(lit), 32)
		if err != nil {
			return l.src.errorf("invalid float token")
		}
		l.enc.Float(float32(v))
	} else {
		v, err := strconv.ParseInt(string(lit), 10, 32)
		if err != nil {
			return l.src.errorf("invalid integer token")
		}
		l.enc.Integer(int32(v))
	}
	return nil
}

// scanName consumes an identifier and encodes it as a keyword when the
// recorded spelling is reserved, else as a NAME token.
func (l *Lexer) scanName() error {
	var name []byte
	for {
		c, err := l.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return l.src.errorf("read input: %v", err)
		}
		if !isAlnum(c) && c != '_' && c != '-' {
			l.src.Unread(c)
			break
		}
		if len(name) < MaxNameLen {
			name = append(name, c)
		}
	}

	if code, ok := LookupKeyword(string(name)); ok {
		l.enc.Code(code)
		return nil
	}
	l.enc.Name(name)
	return nil
}

// ASCII character classes, matching the original tool's C-locale ctype use.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
