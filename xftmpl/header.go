package xftmpl

// The first 16 bytes of a text-mode X file declare magic, version, encoding
// and float width as four 4-byte ASCII fields. Output is always normalized
// to binary encoding with 64-bit float size, regardless of the input's
// declared width.

// HeaderSize is the fixed size of both the input and output headers.
const HeaderSize = 16

// OutputHeader is written before any token bytes.
const OutputHeader = "xof 0302bin 0064"

// ValidateHeader checks a 16-byte input header. Each field mismatch is
// reported as a HeaderError naming the offending field; validation stops at
// the first failure, before any tokenization occurs.
func ValidateHeader(h []byte) error {
	if len(h) != HeaderSize {
		return &HeaderError{Field: "magic", Got: string(h)}
	}
	if string(h[0:4]) != "xof " {
		return &HeaderError{Field: "magic", Got: string(h[0:4])}
	}
	if v := string(h[4:8]); v != "0302" && v != "0303" {
		return &HeaderError{Field: "version", Got: v}
	}
	if string(h[8:12]) != "txt " {
		return &HeaderError{Field: "format", Got: string(h[8:12])}
	}
	if f := string(h[12:16]); f != "0032" && f != "0064" {
		return &HeaderError{Field: "float size", Got: f}
	}
	return nil
}
