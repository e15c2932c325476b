package lexer

import (
	"fmt"
	"io"
	"sync"

	participlelexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/afrowaveltd/ajis/token"
)

// Definition adapts a Lexer to participle's lexer.Definition and
// lexer.Lexer interfaces, so that the token stream produced here can be
// consumed directly by a participle-based parser without that parser
// having to know anything about cursor.Cursor or diag.Diagnostic. AJIS
// itself stops at tokenization (§1); Definition exists purely as the
// documented hand-off point to such downstream collaborators (§6).
type Definition struct {
	opts Options
}

// NewDefinition constructs a participle lexer.Definition that tokenizes
// under opts.
func NewDefinition(opts Options) *Definition {
	return &Definition{opts: opts}
}

// Lex implements lexer.Definition.
func (d *Definition) Lex(filename string, r io.Reader) (participlelexer.Lexer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ajis: read input: %w", err)
	}
	return d.LexBytes(filename, buf)
}

// LexString implements lexer.Definition.
func (d *Definition) LexString(filename string, input string) (participlelexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

// LexBytes implements lexer.Definition.
func (d *Definition) LexBytes(filename string, input []byte) (participlelexer.Lexer, error) {
	return &adaptedLexer{filename: filename, inner: New(input, d.opts)}, nil
}

var (
	symbolsOnce   sync.Once
	cachedSymbols map[string]participlelexer.TokenType
)

// Symbols implements lexer.Definition, caching the result as the teacher
// does for its own token set.
func (d *Definition) Symbols() map[string]participlelexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = map[string]participlelexer.TokenType{
			"EOF":        participlelexer.EOF,
			"LBRACE":     tokenType(token.LBRACE),
			"RBRACE":     tokenType(token.RBRACE),
			"LBRACKET":   tokenType(token.LBRACKET),
			"RBRACKET":   tokenType(token.RBRACKET),
			"COLON":      tokenType(token.COLON),
			"COMMA":      tokenType(token.COMMA),
			"STRING":     tokenType(token.STRING),
			"NUMBER":     tokenType(token.NUMBER),
			"TRUE":       tokenType(token.TRUE),
			"FALSE":      tokenType(token.FALSE),
			"NULL":       tokenType(token.NULL),
			"HEX_BINARY": tokenType(token.HEX_BINARY),
			"B64_BINARY": tokenType(token.B64_BINARY),
			"INVALID":    tokenType(token.INVALID),
		}
	})
	return cachedSymbols
}

// tokenType maps a token.Kind onto participle's TokenType space. EOF is
// handled separately since participle reserves -1 for it and token.EOF is
// 0 here, not -1 (cursor.NoByte already claims -1 in this module).
func tokenType(k token.Kind) participlelexer.TokenType {
	if k == token.EOF {
		return participlelexer.EOF
	}
	return participlelexer.TokenType(k)
}

// adaptedLexer implements participle's lexer.Lexer over a single Lexer
// instance and input buffer.
type adaptedLexer struct {
	filename string
	inner    *Lexer
}

// Next implements lexer.Lexer. A lexing failure is surfaced as a Go error
// (the Diagnostic itself, which implements error) rather than as an
// INVALID token with a nil error: unlike the teacher's SMI grammar, AJIS
// has no ILLEGAL-tolerant downstream parser to recover from a bad token,
// so a participle consumer should simply fail the parse.
func (a *adaptedLexer) Next() (participlelexer.Token, error) {
	tok, d := a.inner.Next()
	if !d.IsOK() {
		return participlelexer.Token{}, d
	}

	value := ""
	if tok.Kind != token.EOF {
		value = a.inner.cur.Slice(tok.Span.Offset, tok.Span.Length)
	}
	loc := a.inner.cur.LocationForOffset(tok.Span.Offset)

	return participlelexer.Token{
		Type:  tokenType(tok.Kind),
		Value: value,
		Pos: participlelexer.Position{
			Filename: a.filename,
			Offset:   loc.Offset,
			Line:     loc.Line,
			Column:   loc.Column,
		},
	}, nil
}
