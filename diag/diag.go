// Package diag defines the AJIS lexer's Diagnostic Record: a value
// describing a lexing failure, drawn from a closed error-code enumeration.
package diag

import (
	"fmt"
	"strings"

	"github.com/afrowaveltd/ajis/cursor"
)

// Code is a closed enumeration of lexer failure categories. The lexer
// itself only ever produces UNEXPECTED_EOF, INVALID_TOKEN, INVALID_NUMBER,
// INVALID_STRING, INVALID_ESCAPE, INVALID_HEX, INVALID_BINARY and
// UNTERMINATED_COMMENT; the remaining codes are reserved for a downstream
// parser, matching the AJIS reference implementation's error header.
type Code int

const (
	// OK indicates no error; the zero value of Code.
	OK Code = iota

	// Generic
	UNKNOWN
	UNEXPECTED_EOF
	INVALID_TOKEN
	INVALID_SYNTAX

	// Structural (reserved for downstream parser use)
	DUPLICATE_KEY
	MISSING_COLON
	MISSING_COMMA
	TRAILING_COMMA

	// Literals
	INVALID_NUMBER
	INVALID_STRING
	INVALID_ESCAPE
	INVALID_HEX
	INVALID_BINARY
	INVALID_CHAR

	// Comments
	UNTERMINATED_COMMENT

	// Limits (reserved for downstream parser use)
	DEPTH_LIMIT
	SIZE_LIMIT
)

var codeNames = map[Code]string{
	OK:                    "OK",
	UNKNOWN:               "unknown error",
	UNEXPECTED_EOF:        "unexpected end of input",
	INVALID_TOKEN:         "invalid token",
	INVALID_SYNTAX:        "invalid syntax",
	DUPLICATE_KEY:         "duplicate key",
	MISSING_COLON:         "missing colon",
	MISSING_COMMA:         "missing comma",
	TRAILING_COMMA:        "trailing comma",
	INVALID_NUMBER:        "invalid number",
	INVALID_STRING:        "invalid string",
	INVALID_ESCAPE:        "invalid escape sequence",
	INVALID_HEX:           "invalid hexadecimal literal",
	INVALID_BINARY:        "invalid binary literal",
	INVALID_CHAR:          "invalid character",
	UNTERMINATED_COMMENT:  "unterminated comment",
	DEPTH_LIMIT:           "nesting depth limit exceeded",
	SIZE_LIMIT:            "size limit exceeded",
}

// String returns the human-readable name of the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Location is where, in source coordinates, a Diagnostic was detected. It
// records the cursor's position at the moment of detection, which is the
// offset of the next unread byte — not necessarily the first byte of the
// failing construct.
type Location struct {
	Line   int
	Column int
	Offset int
}

// FromCursorLocation converts a cursor.Location into a diag.Location.
func FromCursorLocation(l cursor.Location) Location {
	return Location{Line: l.Line, Column: l.Column, Offset: l.Offset}
}

// Diagnostic describes a single lexing failure. The zero value (Code == OK)
// represents success. Context is a short, non-owning human phrase (e.g.
// "unterminated block comment") describing the failure site; it is always a
// static string literal, so a Diagnostic carries no heap allocation of its
// own.
type Diagnostic struct {
	Code     Code
	Location Location
	Context  string
}

// IsOK reports whether d represents success (no error).
func (d Diagnostic) IsOK() bool { return d.Code == OK }

// Error implements the error interface so a Diagnostic can be returned,
// wrapped, and compared the way any other Go error is.
func (d Diagnostic) Error() string {
	if d.IsOK() {
		return "ok"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s", d.Location.Line, d.Location.Column, d.Code)
	if d.Context != "" {
		b.WriteString(" (")
		b.WriteString(d.Context)
		b.WriteByte(')')
	}
	return b.String()
}

// New builds a Diagnostic for code at the given cursor location with the
// given context phrase.
func New(code Code, loc cursor.Location, context string) Diagnostic {
	return Diagnostic{Code: code, Location: FromCursorLocation(loc), Context: context}
}
