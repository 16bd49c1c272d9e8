package xftmpl

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// HeaderOptions configures C header emission.
type HeaderOptions struct {
	// InputName appears in the generated-file comment.
	InputName string

	// OutputName is the output file's path; its base name, upper-cased with
	// dots mapped to underscores, forms the include guard.
	OutputName string

	// VarName is the emitted array identifier. Required.
	VarName string

	// SizeName, when non-empty, adds a #define with the data length.
	SizeName string
}

// WriteRaw writes the encoded stream verbatim.
func WriteRaw(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}

// WriteHeader renders the encoded stream as a header-guarded C array
// declaration, twelve hexadecimal byte literals per line.
func WriteHeader(w io.Writer, data []byte, opts HeaderOptions) error {
	if opts.VarName == "" {
		return fmt.Errorf("variable name must be specified with -i or #pragma name")
	}

	guard := guardName(opts.OutputName)

	if _, err := fmt.Fprintf(w,
		"/* File generated automatically from %s; do not edit */\n"+
			"\n"+
			"#ifndef __WINE_%s\n"+
			"#define __WINE_%s\n"+
			"\n"+
			"unsigned char %s[] = {",
		opts.InputName, guard, guard, opts.VarName); err != nil {
		return err
	}

	for i, b := range data {
		if i%12 == 0 {
			if _, err := fmt.Fprintf(w, "\n "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " 0x%02x,", b); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n};\n\n"); err != nil {
		return err
	}
	if opts.SizeName != "" {
		if _, err := fmt.Fprintf(w, "#define %s %d\n\n", opts.SizeName, len(data)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "#endif /* __WINE_%s */\n", guard)
	return err
}

// guardName derives the include-guard body from the output path's base name:
// dots become underscores, letters are upper-cased.
func guardName(outputName string) string {
	base := path.Base(outputName)
	var sb strings.Builder
	for i := 0; i < len(base); i++ {
		c := base[i]
		if c == '.' {
			sb.WriteByte('_')
		} else if c >= 'a' && c <= 'z' {
			sb.WriteByte(c - ('a' - 'A'))
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
