package xftmpl

// Buffer is a growable byte accumulator for the encoded token stream.
// Capacity doubles on growth (or jumps to the requested size if larger), and
// Append is all-or-nothing: previously written bytes are never lost or
// duplicated across a growth boundary.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append stores p at the end of the buffer, growing as needed.
func (b *Buffer) Append(p []byte) {
	need := len(b.data) + len(p)
	if need > cap(b.data) {
		newCap := cap(b.data) * 2
		if newCap < need {
			newCap = need
		}
		grown := make([]byte, len(b.data), newCap)
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, p...)
}

// AppendByte stores a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.Append([]byte{c})
}

// Len returns the logical length.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Bytes returns the accumulated bytes. The slice aliases the buffer's
// storage and is valid until the next Append.
func (b *Buffer) Bytes() []byte { return b.data }
