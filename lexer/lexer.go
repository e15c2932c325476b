// Package lexer implements the AJIS lexical analyzer: a streaming tokenizer
// that converts a UTF-8 byte buffer into a sequence of Tokens, reporting the
// first failure as a diag.Diagnostic.
//
// A Lexer is stateful and is not safe for concurrent use; independent
// lexers over independent buffers are independent. Next performs no I/O and
// requires no allocation beyond the Token/Diagnostic values it returns.
package lexer

import (
	"context"
	"log/slog"

	"github.com/afrowaveltd/ajis/cursor"
	"github.com/afrowaveltd/ajis/diag"
	"github.com/afrowaveltd/ajis/token"
)

// Lexer consumes an Input Cursor under a small Options record and emits one
// Token per call to Next until end of input.
type Lexer struct {
	cur    *cursor.Cursor
	opts   Options
	logger *slog.Logger
}

// New constructs a Lexer over buf with the given Options. buf is not copied
// and must outlive the Lexer.
func New(buf []byte, opts Options) *Lexer {
	return &Lexer{cur: cursor.New(buf), opts: opts}
}

// SetLogger attaches an optional structured logger used solely to trace
// each token at debug level; it never affects lexing decisions. Passing nil
// disables tracing (the default).
func (l *Lexer) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// Next returns the next token from the input. On success the returned
// Diagnostic is the zero value (Code == diag.OK). On failure the returned
// Token has Kind == token.INVALID and its Span must not be interpreted; the
// Diagnostic describes the failure and the cursor is left at the offset
// where it was detected.
func (l *Lexer) Next() (token.Token, diag.Diagnostic) {
	if d := l.skipIgnorable(); !d.IsOK() {
		return token.Token{Kind: token.INVALID}, d
	}

	if l.cur.AtEOF() {
		tok := token.Token{Kind: token.EOF, Span: token.Span{Offset: l.cur.Len(), Length: 0}}
		l.trace(tok)
		return tok, diag.Diagnostic{}
	}

	b, _ := l.cur.Peek()
	start := l.cur.Offset()

	switch b {
	case '{':
		return l.single(token.LBRACE, start)
	case '}':
		return l.single(token.RBRACE, start)
	case '[':
		return l.single(token.LBRACKET, start)
	case ']':
		return l.single(token.RBRACKET, start)
	case ':':
		return l.single(token.COLON, start)
	case ',':
		return l.single(token.COMMA, start)
	case '"':
		return l.lexString()
	}

	switch {
	case isAsciiLetter(b):
		return l.lexIdentifierOrBinary()
	case isDigit(b) || b == '-':
		return l.lexNumber()
	default:
		d := diag.New(diag.INVALID_TOKEN, l.cur.Location(), "unexpected byte")
		return token.Token{Kind: token.INVALID}, d
	}
}

// single emits a one-byte structural token at start and advances past it.
func (l *Lexer) single(kind token.Kind, start int) (token.Token, diag.Diagnostic) {
	l.cur.Advance()
	tok := token.Token{Kind: kind, Span: token.Span{Offset: start, Length: 1}}
	l.trace(tok)
	return tok, diag.Diagnostic{}
}

func (l *Lexer) trace(tok token.Token) {
	if l.logger == nil {
		return
	}
	ctx := context.Background()
	if !l.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.logger.Debug("token",
		slog.String("kind", tok.Kind.String()),
		slog.Int("offset", tok.Span.Offset),
		slog.Int("length", tok.Span.Length))
}

// skipIgnorable discards whitespace and comments (§4.3.1). A lone '/' that
// is not followed by '/' or '*' is rolled back so the dispatch switch in
// Next sees it and rejects it as INVALID_TOKEN.
func (l *Lexer) skipIgnorable() diag.Diagnostic {
	for {
		b, ok := l.cur.Peek()
		if !ok {
			return diag.Diagnostic{}
		}

		if isWhitespace(b) {
			l.cur.Advance()
			continue
		}

		if b == '/' {
			save := l.cur.Save()
			l.cur.Advance() // consume '/'
			b2, ok2 := l.cur.Peek()
			if !ok2 {
				l.cur.Restore(save)
				return diag.Diagnostic{}
			}

			if b2 == '/' {
				l.cur.Advance() // consume second '/'
				for {
					c, ok3 := l.cur.Advance()
					if !ok3 || c == '\n' {
						break
					}
				}
				continue
			}

			if b2 == '*' {
				l.cur.Advance() // consume '*'
				var prev byte
				for {
					c, ok3 := l.cur.Advance()
					if !ok3 {
						return diag.New(diag.UNTERMINATED_COMMENT, l.cur.Location(), "unterminated block comment")
					}
					if prev == '*' && c == '/' {
						break
					}
					prev = c
				}
				continue
			}

			l.cur.Restore(save)
			return diag.Diagnostic{}
		}

		return diag.Diagnostic{}
	}
}
