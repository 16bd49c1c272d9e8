package xftmpl

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID is a 128-bit identifier in the Windows mixed-endian layout: the first
// three fields are stored little-endian on the wire, the final eight bytes
// verbatim. This is the layout the binary token stream carries, which differs
// from the big-endian RFC 4122 byte order.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// guidTextLen is the length of the canonical text form without the angle
// brackets: XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
const guidTextLen = 36

// ParseGUID parses the canonical hyphen-delimited text form. Hex digits are
// accepted in either case; group lengths and hyphen positions are fixed.
func ParseGUID(text string) (GUID, error) {
	if len(text) != guidTextLen {
		return GUID{}, &GUIDError{Text: text, Reason: fmt.Sprintf("want %d characters, have %d", guidTextLen, len(text))}
	}
	for _, pos := range [4]int{8, 13, 18, 23} {
		if text[pos] != '-' {
			return GUID{}, &GUIDError{Text: text, Reason: fmt.Sprintf("expected '-' at position %d", pos)}
		}
	}

	var g GUID
	d1, err := parseHexField(text[0:8])
	if err != nil {
		return GUID{}, &GUIDError{Text: text, Reason: "bad first group: " + err.Error()}
	}
	g.Data1 = uint32(d1)

	d2, err := parseHexField(text[9:13])
	if err != nil {
		return GUID{}, &GUIDError{Text: text, Reason: "bad second group: " + err.Error()}
	}
	g.Data2 = uint16(d2)

	d3, err := parseHexField(text[14:18])
	if err != nil {
		return GUID{}, &GUIDError{Text: text, Reason: "bad third group: " + err.Error()}
	}
	g.Data3 = uint16(d3)

	for i := 0; i < 2; i++ {
		b, err := parseHexField(text[19+2*i : 21+2*i])
		if err != nil {
			return GUID{}, &GUIDError{Text: text, Reason: "bad fourth group: " + err.Error()}
		}
		g.Data4[i] = byte(b)
	}
	for i := 0; i < 6; i++ {
		b, err := parseHexField(text[24+2*i : 26+2*i])
		if err != nil {
			return GUID{}, &GUIDError{Text: text, Reason: "bad fifth group: " + err.Error()}
		}
		g.Data4[2+i] = byte(b)
	}

	return g, nil
}

// parseHexField parses a fixed-width hex field. Unlike strconv it rejects
// signs, prefixes and underscores, which the GUID grammar does not allow.
func parseHexField(s string) (uint64, error) {
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
		v = v<<4 | uint64(d)
	}
	return v, nil
}

// String returns the canonical uppercase text form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// Wire returns the 16-byte representation carried by the binary token
// stream: Data1/Data2/Data3 little-endian, Data4 verbatim.
func (g GUID) Wire() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	return b
}

// UUID converts to the big-endian RFC 4122 form.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// GUIDFromUUID converts an RFC 4122 value to the mixed-endian wire layout.
func GUIDFromUUID(u uuid.UUID) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:])
	return g
}
