package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"eof", EOF, "EOF"},
		{"lbrace", LBRACE, "LBRACE"},
		{"rbrace", RBRACE, "RBRACE"},
		{"lbracket", LBRACKET, "LBRACKET"},
		{"rbracket", RBRACKET, "RBRACKET"},
		{"colon", COLON, "COLON"},
		{"comma", COMMA, "COMMA"},
		{"string", STRING, "STRING"},
		{"number", NUMBER, "NUMBER"},
		{"true", TRUE, "TRUE"},
		{"false", FALSE, "FALSE"},
		{"null", NULL, "NULL"},
		{"hex binary", HEX_BINARY, "HEX_BINARY"},
		{"b64 binary", B64_BINARY, "B64_BINARY"},
		{"invalid", INVALID, "INVALID"},
		{"unknown", Kind(999), "Kind(999)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestSpanEnd(t *testing.T) {
	s := Span{Offset: 5, Length: 3}
	assert.Equal(t, 8, s.End())
}
