package xftmpl

import (
	"encoding/binary"
	"math"
)

// Encoder serializes classified tokens into the binary wire format and
// appends them to an output buffer: a 16-bit token code followed by a
// type-specific payload. All multi-byte values are little-endian, the byte
// order the downstream binary token parser expects.
type Encoder struct {
	buf *Buffer
}

// NewEncoder creates an encoder writing to buf.
func NewEncoder(buf *Buffer) *Encoder {
	return &Encoder{buf: buf}
}

// Code writes a bare token code with no payload. Used for keywords and
// punctuation.
func (e *Encoder) Code(c TokenCode) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(c))
	e.buf.Append(b[:])
}

// Name writes a NAME token: code, 32-bit length, raw bytes with no
// terminator or padding.
func (e *Encoder) Name(name []byte) {
	e.Code(TokenName)
	e.putUint32(uint32(len(name)))
	e.buf.Append(name)
}

// String writes a STRING token: code, 32-bit length, raw bytes.
func (e *Encoder) String(s []byte) {
	e.Code(TokenString)
	e.putUint32(uint32(len(s)))
	e.buf.Append(s)
}

// Integer writes an INTEGER token with a 32-bit signed payload.
func (e *Encoder) Integer(v int32) {
	e.Code(TokenInteger)
	e.putUint32(uint32(v))
}

// Float writes a FLOAT token with a 32-bit IEEE-754 payload.
func (e *Encoder) Float(v float32) {
	e.Code(TokenFloat)
	e.putUint32(math.Float32bits(v))
}

// GUID writes a GUID token with the 16-byte mixed-endian payload.
func (e *Encoder) GUID(g GUID) {
	e.Code(TokenGUID)
	w := g.Wire()
	e.buf.Append(w[:])
}

func (e *Encoder) putUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Append(b[:])
}
