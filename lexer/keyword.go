package lexer

import (
	"github.com/afrowaveltd/ajis/diag"
	"github.com/afrowaveltd/ajis/token"
)

// lexIdentifierOrBinary handles the alphabetic dispatch branch (§4.3.2,
// §4.3.4, §4.3.5). Binary-literal prefixes are tried before keyword
// matching so that "hex"/"b64" can never partially match an identifier.
func (l *Lexer) lexIdentifierOrBinary() (token.Token, diag.Diagnostic) {
	b, _ := l.cur.Peek()
	start := l.cur.Offset()

	if b == 'h' {
		if tok, d, handled := l.tryHexBinary(start); handled {
			return tok, d
		}
	}
	if b == 'b' {
		if tok, d, handled := l.tryB64Binary(start); handled {
			return tok, d
		}
	}

	if l.matchKeyword("true") {
		return token.Token{Kind: token.TRUE, Span: token.Span{Offset: start, Length: l.cur.Offset() - start}}, diag.Diagnostic{}
	}
	if l.matchKeyword("false") {
		return token.Token{Kind: token.FALSE, Span: token.Span{Offset: start, Length: l.cur.Offset() - start}}, diag.Diagnostic{}
	}
	if l.matchKeyword("null") {
		return token.Token{Kind: token.NULL, Span: token.Span{Offset: start, Length: l.cur.Offset() - start}}, diag.Diagnostic{}
	}

	return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_TOKEN, l.cur.Location(), "unknown identifier")
}

// matchKeyword speculatively matches kw byte-for-byte at the current cursor
// position. On a mismatch, or a match immediately followed by another
// identifier byte (letter, digit, or '_'), the cursor is restored and
// matchKeyword returns false. On success the cursor sits immediately after
// the keyword.
func (l *Lexer) matchKeyword(kw string) bool {
	save := l.cur.Save()
	for i := 0; i < len(kw); i++ {
		b, ok := l.cur.Peek()
		if !ok || b != kw[i] {
			l.cur.Restore(save)
			return false
		}
		l.cur.Advance()
	}
	if next, ok := l.cur.Peek(); ok && isIdentifierBoundaryByte(next) {
		l.cur.Restore(save)
		return false
	}
	return true
}

// tryHexBinary attempts to recognize a hex"..." literal (§4.3.4). handled
// is false when the input at start is not actually a hex-binary literal
// (the leading 'h' belongs to some other identifier), in which case the
// cursor is left untouched and the caller falls through to keyword
// matching.
func (l *Lexer) tryHexBinary(start int) (token.Token, diag.Diagnostic, bool) {
	if !l.peekLiteral("hex\"") {
		return token.Token{}, diag.Diagnostic{}, false
	}
	l.advanceN(4) // consume h e x "

	count := 0
	for {
		b, ok := l.cur.Peek()
		if !ok {
			return token.Token{Kind: token.INVALID}, diag.New(diag.UNEXPECTED_EOF, l.cur.Location(), "unterminated hex binary literal"), true
		}
		if b == '"' {
			l.cur.Advance()
			break
		}
		if !isHexDigit(b) {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_STRING, l.cur.Location(), "invalid character in hex binary literal"), true
		}
		l.cur.Advance()
		count++
	}

	if count%2 != 0 {
		return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_STRING, l.cur.Location(), "hex binary must have even number of digits"), true
	}

	end := l.cur.Offset()
	return token.Token{Kind: token.HEX_BINARY, Span: token.Span{Offset: start, Length: end - start}}, diag.Diagnostic{}, true
}

// tryB64Binary attempts to recognize a b64"..." literal (§4.3.4).
func (l *Lexer) tryB64Binary(start int) (token.Token, diag.Diagnostic, bool) {
	if !l.peekLiteral("b64\"") {
		return token.Token{}, diag.Diagnostic{}, false
	}
	l.advanceN(4) // consume b 6 4 "

	for {
		b, ok := l.cur.Peek()
		if !ok {
			return token.Token{Kind: token.INVALID}, diag.New(diag.UNEXPECTED_EOF, l.cur.Location(), "unterminated base64 binary literal"), true
		}
		if b == '"' {
			l.cur.Advance()
			break
		}
		if !isBase64Char(b) {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_STRING, l.cur.Location(), "invalid character in base64 binary literal"), true
		}
		l.cur.Advance()
	}

	end := l.cur.Offset()
	return token.Token{Kind: token.B64_BINARY, Span: token.Span{Offset: start, Length: end - start}}, diag.Diagnostic{}, true
}

// peekLiteral reports whether the next len(s) bytes equal s, without
// consuming anything.
func (l *Lexer) peekLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		b, ok := l.cur.PeekAhead(i)
		if !ok || b != s[i] {
			return false
		}
	}
	return true
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.cur.Advance()
	}
}
