package xftmpl

import "sort"

// TokenCode is the 16-bit wire code identifying a token kind in the binary
// output stream. The values are fixed by the X-file binary format and must
// match the downstream parser exactly.
type TokenCode uint16

const (
	TokenName        TokenCode = 1
	TokenString      TokenCode = 2
	TokenInteger     TokenCode = 3
	TokenGUID        TokenCode = 5
	TokenIntegerList TokenCode = 6
	TokenFloatList   TokenCode = 7
	TokenOBrace      TokenCode = 10
	TokenCBrace      TokenCode = 11
	TokenOParen      TokenCode = 12
	TokenCParen      TokenCode = 13
	TokenOBracket    TokenCode = 14
	TokenCBracket    TokenCode = 15
	TokenOAngle      TokenCode = 16
	TokenCAngle      TokenCode = 17
	TokenDot         TokenCode = 18
	TokenComma       TokenCode = 19
	TokenSemicolon   TokenCode = 20
	TokenTemplate    TokenCode = 31
	TokenWord        TokenCode = 40
	TokenDword       TokenCode = 41
	TokenFloat       TokenCode = 42
	TokenDouble      TokenCode = 43
	TokenChar        TokenCode = 44
	TokenUChar       TokenCode = 45
	TokenSWord       TokenCode = 46
	TokenSDword      TokenCode = 47
	TokenVoid        TokenCode = 48
	TokenLPStr       TokenCode = 49
	TokenUnicode     TokenCode = 50
	TokenCString     TokenCode = 51
	TokenArray       TokenCode = 52
)

// String returns the token code name.
func (c TokenCode) String() string {
	switch c {
	case TokenName:
		return "NAME"
	case TokenString:
		return "STRING"
	case TokenInteger:
		return "INTEGER"
	case TokenGUID:
		return "GUID"
	case TokenIntegerList:
		return "INTEGER_LIST"
	case TokenFloatList:
		return "FLOAT_LIST"
	case TokenOBrace:
		return "{"
	case TokenCBrace:
		return "}"
	case TokenOParen:
		return "("
	case TokenCParen:
		return ")"
	case TokenOBracket:
		return "["
	case TokenCBracket:
		return "]"
	case TokenOAngle:
		return "<"
	case TokenCAngle:
		return ">"
	case TokenDot:
		return "."
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenTemplate:
		return "TEMPLATE"
	case TokenWord:
		return "WORD"
	case TokenDword:
		return "DWORD"
	case TokenFloat:
		return "FLOAT"
	case TokenDouble:
		return "DOUBLE"
	case TokenChar:
		return "CHAR"
	case TokenUChar:
		return "UCHAR"
	case TokenSWord:
		return "SWORD"
	case TokenSDword:
		return "SDWORD"
	case TokenVoid:
		return "VOID"
	case TokenLPStr:
		return "STRING"
	case TokenUnicode:
		return "UNICODE"
	case TokenCString:
		return "CSTRING"
	case TokenArray:
		return "ARRAY"
	default:
		return "UNKNOWN"
	}
}

// keyword maps a reserved spelling to its token code.
type keyword struct {
	word string
	code TokenCode
}

// reservedWords is sorted by case-insensitive spelling. Reserved spellings
// match in any letter case; a matching identifier always encodes as its
// keyword code, never as NAME.
var reservedWords = []keyword{
	{"ARRAY", TokenArray},
	{"CHAR", TokenChar},
	{"CSTRING", TokenCString},
	{"DOUBLE", TokenDouble},
	{"DWORD", TokenDword},
	{"FLOAT", TokenFloat},
	{"SDWORD", TokenSDword},
	{"STRING", TokenLPStr},
	{"SWORD", TokenSWord},
	{"TEMPLATE", TokenTemplate},
	{"UCHAR", TokenUChar},
	{"UNICODE", TokenUnicode},
	{"VOID", TokenVoid},
	{"WORD", TokenWord},
}

// LookupKeyword returns the token code for a reserved spelling, matched
// case-insensitively, and whether the spelling is reserved.
func LookupKeyword(name string) (TokenCode, bool) {
	folded := foldUpper(name)
	i := sort.Search(len(reservedWords), func(i int) bool {
		return reservedWords[i].word >= folded
	})
	if i < len(reservedWords) && reservedWords[i].word == folded {
		return reservedWords[i].code, true
	}
	return 0, false
}

// foldUpper upper-cases ASCII letters. Keyword spellings are ASCII-only, so
// full Unicode case folding is not needed.
func foldUpper(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
