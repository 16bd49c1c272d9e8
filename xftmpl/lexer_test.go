package xftmpl

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

// compileBody runs the full pipeline over a template body with a valid text
// header prepended.
func compileBody(t *testing.T, body string) *Result {
	t.Helper()
	res, err := Compile(strings.NewReader("xof 0302txt 0032"+body), CompileOptions{Name: "test.x"})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return res
}

// compileBodyErr runs the pipeline expecting a failure.
func compileBodyErr(t *testing.T, body string) error {
	t.Helper()
	_, err := Compile(strings.NewReader("xof 0302txt 0032"+body), CompileOptions{Name: "test.x"})
	if err == nil {
		t.Fatalf("Compile succeeded, want error")
	}
	return err
}

// tokens returns the encoded stream with the output header stripped.
func tokens(res *Result) []byte {
	return res.Data[HeaderSize:]
}

// ============================================================
// Keyword Tests
// ============================================================

func TestLexer_KeywordsAnyCase(t *testing.T) {
	spellings := map[string]TokenCode{
		"TEMPLATE": TokenTemplate,
		"WORD":     TokenWord,
		"DWORD":    TokenDword,
		"FLOAT":    TokenFloat,
		"DOUBLE":   TokenDouble,
		"CHAR":     TokenChar,
		"UCHAR":    TokenUChar,
		"SWORD":    TokenSWord,
		"SDWORD":   TokenSDword,
		"VOID":     TokenVoid,
		"STRING":   TokenLPStr,
		"UNICODE":  TokenUnicode,
		"CSTRING":  TokenCString,
		"ARRAY":    TokenArray,
	}

	for word, code := range spellings {
		mixed := word[:1] + strings.ToLower(word[1:])
		for _, variant := range []string{word, strings.ToLower(word), mixed} {
			t.Run(variant, func(t *testing.T) {
				res := compileBody(t, " "+variant+" ")
				got := tokens(res)
				if len(got) != 2 {
					t.Fatalf("got %d token bytes, want 2 (keyword must carry no payload)", len(got))
				}
				if c := TokenCode(binary.LittleEndian.Uint16(got)); c != code {
					t.Errorf("got code %d, want %d", c, code)
				}
			})
		}
	}
}

func TestLexer_KeywordNeverName(t *testing.T) {
	res := compileBody(t, "template")
	got := tokens(res)
	if c := TokenCode(binary.LittleEndian.Uint16(got)); c == TokenName {
		t.Fatal("reserved spelling encoded as NAME")
	}
}

// ============================================================
// Name Tests
// ============================================================

func TestLexer_Name(t *testing.T) {
	res := compileBody(t, "Frame_1-a ")
	got := tokens(res)

	if c := TokenCode(binary.LittleEndian.Uint16(got[0:2])); c != TokenName {
		t.Fatalf("got code %d, want NAME", c)
	}
	n := binary.LittleEndian.Uint32(got[2:6])
	if n != 9 {
		t.Fatalf("got length %d, want 9", n)
	}
	if s := string(got[6 : 6+n]); s != "Frame_1-a" {
		t.Errorf("got spelling %q, want %q", s, "Frame_1-a")
	}
}

func TestLexer_NameTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxNameLen+100)
	res := compileBody(t, long+";")
	got := tokens(res)

	n := binary.LittleEndian.Uint32(got[2:6])
	if int(n) != MaxNameLen {
		t.Fatalf("recorded length %d, want cap %d", n, MaxNameLen)
	}

	// The overlong tail must still have been consumed: the next token is the
	// semicolon, not more name bytes.
	rest := got[6+int(n):]
	if len(rest) != 2 {
		t.Fatalf("got %d trailing bytes, want 2", len(rest))
	}
	if c := TokenCode(binary.LittleEndian.Uint16(rest)); c != TokenSemicolon {
		t.Errorf("token after truncated name is %s, want ;", c)
	}
}

// ============================================================
// Numeric Tests
// ============================================================

func TestLexer_Integer(t *testing.T) {
	tests := []struct {
		body string
		want int32
	}{
		{"0;", 0},
		{"42;", 42},
		{"-17;", -17},
		{"2147483647;", 2147483647},
		{"-2147483648;", -2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got := tokens(compileBody(t, tt.body))
			if c := TokenCode(binary.LittleEndian.Uint16(got[0:2])); c != TokenInteger {
				t.Fatalf("got code %d, want INTEGER", c)
			}
			if v := int32(binary.LittleEndian.Uint32(got[2:6])); v != tt.want {
				t.Errorf("got %d, want %d", v, tt.want)
			}
		})
	}
}

func TestLexer_Float(t *testing.T) {
	got := tokens(compileBody(t, "1.5;"))
	if c := TokenCode(binary.LittleEndian.Uint16(got[0:2])); c != TokenFloat {
		t.Fatalf("got code %d, want FLOAT", c)
	}
	// 1.5f is 0x3FC00000
	if bits := binary.LittleEndian.Uint32(got[2:6]); bits != 0x3FC00000 {
		t.Errorf("got float bits %08x, want 3fc00000", bits)
	}
}

func TestLexer_FloatNegativeAndTrailingDot(t *testing.T) {
	tests := []struct {
		body string
		bits uint32
	}{
		{"-2.5;", 0xC0200000},
		{"5.;", 0x40A00000},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got := tokens(compileBody(t, tt.body))
			if bits := binary.LittleEndian.Uint32(got[2:6]); bits != tt.bits {
				t.Errorf("got float bits %08x, want %08x", bits, tt.bits)
			}
		})
	}
}

func TestLexer_BareMinusIsFatal(t *testing.T) {
	err := compileBodyErr(t, "- ")
	if !strings.Contains(err.Error(), "invalid integer token") {
		t.Errorf("got %q, want invalid integer token", err)
	}
}

// ============================================================
// String Tests
// ============================================================

func TestLexer_String(t *testing.T) {
	got := tokens(compileBody(t, `"hello world"`))
	if c := TokenCode(binary.LittleEndian.Uint16(got[0:2])); c != TokenString {
		t.Fatalf("got code %d, want STRING", c)
	}
	n := binary.LittleEndian.Uint32(got[2:6])
	if s := string(got[6 : 6+n]); s != "hello world" {
		t.Errorf("got %q, want %q", s, "hello world")
	}
}

func TestLexer_StringBackslashIsVerbatim(t *testing.T) {
	// Escapes are not interpreted; the backslash is preserved as-is.
	got := tokens(compileBody(t, `"a\nb"`))
	n := binary.LittleEndian.Uint32(got[2:6])
	if s := string(got[6 : 6+n]); s != `a\nb` {
		t.Errorf("got %q, want %q", s, `a\nb`)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	err := compileBodyErr(t, `"never closed`)
	if !strings.Contains(err.Error(), "unterminated string") {
		t.Errorf("got %q, want unterminated string", err)
	}
}

// ============================================================
// Punctuation and Comment Tests
// ============================================================

func TestLexer_Punctuation(t *testing.T) {
	res := compileBody(t, "{}[](),;.")
	got := tokens(res)

	want := []TokenCode{
		TokenOBrace, TokenCBrace,
		TokenOBracket, TokenCBracket,
		TokenOParen, TokenCParen,
		TokenComma, TokenSemicolon, TokenDot,
	}
	if len(got) != 2*len(want) {
		t.Fatalf("got %d bytes, want %d", len(got), 2*len(want))
	}
	for i, code := range want {
		if c := TokenCode(binary.LittleEndian.Uint16(got[2*i:])); c != code {
			t.Errorf("token %d: got %s, want %s", i, c, code)
		}
	}
}

func TestLexer_LineComment(t *testing.T) {
	got := tokens(compileBody(t, "// nothing here\n;"))
	if len(got) != 2 {
		t.Fatalf("got %d bytes, want 2", len(got))
	}
	if c := TokenCode(binary.LittleEndian.Uint16(got)); c != TokenSemicolon {
		t.Errorf("got %s, want ;", c)
	}
}

func TestLexer_CommentAtEOFEndsInput(t *testing.T) {
	got := tokens(compileBody(t, ";// trailing comment without newline"))
	if len(got) != 2 {
		t.Fatalf("got %d bytes, want 2", len(got))
	}
}

func TestLexer_SingleSlashIsFatal(t *testing.T) {
	err := compileBodyErr(t, "/ oops\n")
	if !strings.Contains(err.Error(), "invalid single '/' comment token") {
		t.Errorf("got %q, want invalid single '/' comment token", err)
	}
}

func TestLexer_InvalidStartCharacter(t *testing.T) {
	err := compileBodyErr(t, "?")
	if !strings.Contains(err.Error(), "invalid character '?' to start token") {
		t.Errorf("got %q, want invalid character message", err)
	}
}

func TestLexer_ErrorCarriesLineNumber(t *testing.T) {
	err := compileBodyErr(t, "\n\n?")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T, want *LexError", err)
	}
	// The header does not end in a newline, so the body's first line is
	// still line 1; the bad byte sits on line 3.
	if lexErr.Line != 3 {
		t.Errorf("got line %d, want 3", lexErr.Line)
	}
	if lexErr.File != "test.x" {
		t.Errorf("got file %q, want test.x", lexErr.File)
	}
}

// ============================================================
// GUID Tests
// ============================================================

func TestLexer_GUID(t *testing.T) {
	got := tokens(compileBody(t, "<9E415A43-7BA6-4A73-8743-B73D47E88476>"))
	if c := TokenCode(binary.LittleEndian.Uint16(got[0:2])); c != TokenGUID {
		t.Fatalf("got code %d, want GUID", c)
	}
	want := []byte{
		0x43, 0x5A, 0x41, 0x9E, // Data1 little-endian
		0xA6, 0x7B, // Data2
		0x73, 0x4A, // Data3
		0x87, 0x43, 0xB7, 0x3D, 0x47, 0xE8, 0x84, 0x76, // Data4 verbatim
	}
	if len(got) != 2+16 {
		t.Fatalf("got %d bytes, want 18", len(got))
	}
	for i, b := range want {
		if got[2+i] != b {
			t.Errorf("payload byte %d: got %02x, want %02x", i, got[2+i], b)
		}
	}
}

func TestLexer_GUIDFieldCountError(t *testing.T) {
	// Wrong shape inside the angle brackets must fail with a GUID-specific
	// error, not a generic one.
	err := compileBodyErr(t, "TEMPLATE Foo { <1,2,3,4,5,6,7,8,9> }")
	if !strings.Contains(err.Error(), "GUID") {
		t.Errorf("got %q, want a GUID error", err)
	}
}

func TestLexer_TruncatedGUID(t *testing.T) {
	err := compileBodyErr(t, "<9E415A43-7BA6")
	if !strings.Contains(err.Error(), "truncated GUID") {
		t.Errorf("got %q, want truncated GUID", err)
	}
}

func TestLexer_MalformedGUID(t *testing.T) {
	err := compileBodyErr(t, "<9E415A43-7BA6-4A73-8743-B73D47E8847Z>")
	if !strings.Contains(err.Error(), "invalid GUID") {
		t.Errorf("got %q, want invalid GUID", err)
	}
}

// ============================================================
// Directive Tests
// ============================================================

func TestLexer_PragmaNameFirstWins(t *testing.T) {
	res := compileBody(t, "#pragma xftmpl name MyTemplate\n#pragma xftmpl name Other\n")
	if res.Directives.Name != "MyTemplate" {
		t.Errorf("got name %q, want MyTemplate", res.Directives.Name)
	}
}

func TestLexer_PragmaSize(t *testing.T) {
	res := compileBody(t, "#pragma xftmpl size D3DRM_XTEMPLATE_BYTES\n")
	if res.Directives.Size != "D3DRM_XTEMPLATE_BYTES" {
		t.Errorf("got size %q, want D3DRM_XTEMPLATE_BYTES", res.Directives.Size)
	}
}

func TestLexer_UnknownHashLineIgnored(t *testing.T) {
	res := compileBody(t, "#include something\n#pragma once\n;")
	if res.Directives.Name != "" || res.Directives.Size != "" {
		t.Errorf("unexpected directives: %+v", res.Directives)
	}
	if len(tokens(res)) != 2 {
		t.Errorf("hash lines leaked tokens: %d bytes", len(tokens(res)))
	}
}

func TestLexer_DirectiveAtEOFIsFatal(t *testing.T) {
	err := compileBodyErr(t, "#pragma xftmpl name MyTemplate")
	if !strings.Contains(err.Error(), "line too long") {
		t.Errorf("got %q, want line too long", err)
	}
}

func TestLexer_PreseededDirectiveWins(t *testing.T) {
	res, err := Compile(
		strings.NewReader("xof 0302txt 0032#pragma xftmpl name FromPragma\n"),
		CompileOptions{Name: "test.x", Directives: Directives{Name: "FromFlag"}})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.Directives.Name != "FromFlag" {
		t.Errorf("got name %q, want FromFlag", res.Directives.Name)
	}
}
