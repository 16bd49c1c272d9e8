// Package xftmpl encodes textual DirectX .x template definitions into the
// binary token stream the X-file runtime parser consumes.
//
// The pipeline is a single synchronous pass: a byte Source feeds the Lexer,
// which classifies one lexical unit at a time and hands each token to the
// Encoder, which appends its wire form to a growable Buffer. There is no
// semantic pass: brace nesting and type well-formedness are the downstream
// parser's business.
//
// # Wire format
//
// Each token is a little-endian 16-bit code followed by a type-specific
// payload:
//
//	NAME, STRING   u32 length + raw bytes
//	INTEGER        i32
//	FLOAT          f32 (IEEE-754)
//	GUID           16 bytes, Windows mixed-endian layout
//	keywords and punctuation carry no payload
//
// The stream is prefixed by the fixed header "xof 0302bin 0064"; input must
// carry a matching "xof " text-mode header or compilation fails before any
// token is read.
//
// # Directives
//
// Comment lines of the form
//
//	#pragma xftmpl name MyTemplate
//	#pragma xftmpl size MyTemplateSize
//
// carry metadata for C header emission. First occurrence wins; they are not
// part of the template grammar and produce no tokens.
package xftmpl
