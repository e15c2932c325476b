package lexer

import (
	"github.com/afrowaveltd/ajis/diag"
	"github.com/afrowaveltd/ajis/token"
)

// lexString recognizes a double-quoted STRING literal (§4.3.3). Precondition:
// the cursor is positioned at the opening '"'. The returned span covers
// content only (between the quotes); the lexer performs no escape decoding.
func (l *Lexer) lexString() (token.Token, diag.Diagnostic) {
	l.cur.Advance() // consume opening '"'
	contentStart := l.cur.Offset()

	for {
		b, ok := l.cur.Peek()
		if !ok {
			return token.Token{Kind: token.INVALID}, diag.New(diag.UNEXPECTED_EOF, l.cur.Location(), "unterminated string")
		}

		if b == '"' {
			contentEnd := l.cur.Offset()
			l.cur.Advance() // consume closing '"'
			return token.Token{Kind: token.STRING, Span: token.Span{Offset: contentStart, Length: contentEnd - contentStart}}, diag.Diagnostic{}
		}

		if b == '\\' {
			l.cur.Advance() // consume '\'
			if _, ok := l.cur.Advance(); !ok {
				return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_ESCAPE, l.cur.Location(), "escape at end of input")
			}
			continue
		}

		if b == '\n' && !l.opts.AllowMultilineStrings {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_STRING, l.cur.Location(), "newline in string")
		}

		l.cur.Advance()
	}
}
