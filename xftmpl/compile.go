package xftmpl

import (
	"fmt"
	"io"
	"os"
)

// Result holds the output of one compile run: the encoded byte stream
// (output header included) and the directive state collected from the input.
type Result struct {
	Data       []byte
	Directives Directives
}

// CompileOptions configures a compile run.
type CompileOptions struct {
	// Name is the input name used in error locations (file name or "stdin").
	Name string

	// Directives pre-seeds the directive state. Values set here win over
	// in-file #pragma xftmpl lines.
	Directives Directives
}

// Compile validates the input header, then tokenizes and encodes the whole
// input. The returned Result owns its buffer; no partial result is produced
// on error.
func Compile(r io.Reader, opts CompileOptions) (*Result, error) {
	src := NewSource(r, opts.Name)

	var header [HeaderSize]byte
	if err := src.ReadFull(header[:]); err != nil {
		return nil, fmt.Errorf("read file header: %w", err)
	}
	if err := ValidateHeader(header[:]); err != nil {
		return nil, err
	}

	buf := NewBuffer()
	buf.Append([]byte(OutputHeader))

	dirs := opts.Directives
	lexer := NewLexer(src, NewEncoder(buf), &dirs)
	if err := lexer.Run(); err != nil {
		return nil, err
	}

	return &Result{
		Data:       buf.Bytes(),
		Directives: dirs,
	}, nil
}

// CompileFile opens and compiles a template file. A path of "-" reads
// standard input.
func CompileFile(path string, dirs Directives) (*Result, error) {
	var r io.Reader
	name := path
	if path == "-" {
		r = os.Stdin
		name = "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return Compile(r, CompileOptions{Name: name, Directives: dirs})
}
