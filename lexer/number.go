package lexer

import (
	"github.com/afrowaveltd/ajis/diag"
	"github.com/afrowaveltd/ajis/token"
)

// numberBase identifies which base-prefixed integer alphabet is in play.
type numberBase int

const (
	baseHex numberBase = iota
	baseBinary
	baseOctal
)

// digitGroupConfig parameterizes consumeGroupedDigits for the four numeric
// shapes (hex, binary, octal, decimal): the digit alphabet, the
// disambiguation width test used for ',' and ' ' (§4.3.6 "Disambiguation of
// , and space"), and the diagnostic code used for structural separator
// violations (consecutive separators, separator before any digit).
type digitGroupConfig struct {
	isDigit      func(byte) bool
	matchesWidth func(runLen int) bool
	errCode      diag.Code
}

// consumeGroupedDigits consumes a run of digits and (if cfg and l.opts
// permit) digit-group separators, starting at the cursor's current
// position. It implements the shared separator-disambiguation rule used by
// both base-prefixed integers (§4.3.6 "Base-prefixed integers") and decimal
// numbers (§4.3.6 "Decimal numbers"):
//
//   - a separator is consumed only when the previously consumed byte was a
//     digit and the following byte is also a digit of the current alphabet;
//   - for ',' and ' ' specifically, the consumed byte must additionally
//     start a digit run whose length exactly matches cfg.matchesWidth,
//     disambiguating a thousands separator from an ordinary COMMA token or
//     whitespace;
//   - '_' never needs that extra check, since it has no other meaning;
//   - a separator directly after the prefix (no digit yet), two separators
//     in a row (an '_' followed directly by another separator byte), and a
//     change of separator character mid-literal are all hard failures
//     rather than early terminations.
//
// It returns the length of every completed digit group in order, whether
// any digit was seen at all, and — on a hard failure — a failed Diagnostic.
func (l *Lexer) consumeGroupedDigits(cfg digitGroupConfig) (groups []int, sawDigit bool, haveSep bool, errDiag diag.Diagnostic, failed bool) {
	var sepChar byte
	groupLen := 0
	prevWasSep := false

	for {
		b, ok := l.cur.Peek()
		if !ok {
			break
		}

		if cfg.isDigit(b) {
			l.cur.Advance()
			groupLen++
			sawDigit = true
			prevWasSep = false
			continue
		}

		if l.opts.AllowNumberSeparators && isSepByte(b) {
			if !sawDigit {
				return nil, false, false, diag.New(cfg.errCode, l.cur.Location(), "separator before any digit"), true
			}
			if prevWasSep {
				return nil, false, false, diag.New(cfg.errCode, l.cur.Location(), "consecutive separators"), true
			}

			next, nextOk := l.cur.PeekAhead(1)
			if b == '_' && nextOk && isSepByte(next) {
				return nil, false, false, diag.New(cfg.errCode, l.cur.Location(), "consecutive separators"), true
			}
			if !nextOk || !cfg.isDigit(next) {
				break // number ends before the separator
			}

			if b != '_' {
				runLen := l.digitRunLength(cfg.isDigit, 1)
				if !cfg.matchesWidth(runLen) {
					break // run length doesn't match grouping width; number ends
				}
			}

			if !haveSep {
				sepChar = b
				haveSep = true
			} else if sepChar != b {
				return nil, false, false, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "mixed number separators"), true
			}

			l.cur.Advance()
			groups = append(groups, groupLen)
			groupLen = 0
			prevWasSep = true
			continue
		}

		break
	}

	groups = append(groups, groupLen)
	return groups, sawDigit, haveSep, diag.Diagnostic{}, false
}

// digitRunLength counts the consecutive run of cfg-digit bytes starting at
// PeekAhead(from), without consuming anything.
func (l *Lexer) digitRunLength(isDigit func(byte) bool, from int) int {
	n := 0
	for {
		b, ok := l.cur.PeekAhead(from + n)
		if !ok || !isDigit(b) {
			break
		}
		n++
	}
	return n
}

// lexNumber recognizes a NUMBER token (§4.3.6): either a base-prefixed
// integer or a decimal number, both optionally preceded by a single '-'.
func (l *Lexer) lexNumber() (token.Token, diag.Diagnostic) {
	start := l.cur.Offset()

	if b, ok := l.cur.Peek(); ok && b == '-' {
		l.cur.Advance()
		if d, ok := l.cur.Peek(); !ok || !isDigit(d) {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "expected digit after '-'")
		}
	}

	if b0, ok0 := l.cur.Peek(); ok0 && b0 == '0' {
		if b1, ok1 := l.cur.PeekAhead(1); ok1 {
			switch b1 {
			case 'x', 'X':
				return l.lexBasePrefixed(start, baseHex)
			case 'b', 'B':
				return l.lexBasePrefixed(start, baseBinary)
			case 'o', 'O':
				return l.lexBasePrefixed(start, baseOctal)
			}
		}
	}

	return l.lexDecimal(start)
}

// lexBasePrefixed recognizes a base-prefixed integer after the optional
// sign: 0x/0X, 0b/0B, or 0o/0O followed by digits of that base, with
// optional grouping separators and grouping-consistency rules.
func (l *Lexer) lexBasePrefixed(start int, base numberBase) (token.Token, diag.Diagnostic) {
	l.cur.Advance() // '0'
	l.cur.Advance() // x/b/o letter

	cfg, noDigitCode := baseConfig(base)

	groups, sawDigit, haveSep, errDiag, failed := l.consumeGroupedDigits(cfg)
	if failed {
		return token.Token{Kind: token.INVALID}, errDiag
	}
	if !sawDigit {
		return token.Token{Kind: token.INVALID}, diag.New(noDigitCode, l.cur.Location(), "expected at least one digit after base prefix")
	}

	if haveSep {
		if ok, code, ctx := validateGrouping(base, groups); !ok {
			return token.Token{Kind: token.INVALID}, diag.New(code, l.cur.Location(), ctx)
		}
	}

	if b, ok := l.cur.Peek(); ok && (b == '.' || b == 'e' || b == 'E') {
		return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "base literal cannot have fraction or exponent")
	}

	end := l.cur.Offset()
	return token.Token{Kind: token.NUMBER, Span: token.Span{Offset: start, Length: end - start}}, diag.Diagnostic{}
}

func baseConfig(base numberBase) (digitGroupConfig, diag.Code) {
	switch base {
	case baseHex:
		return digitGroupConfig{
			isDigit:      isHexDigit,
			matchesWidth: func(n int) bool { return n == 2 || n == 4 },
			errCode:      diag.INVALID_HEX,
		}, diag.INVALID_HEX
	case baseBinary:
		return digitGroupConfig{
			isDigit:      isBinDigit,
			matchesWidth: func(n int) bool { return n == 4 },
			errCode:      diag.INVALID_BINARY,
		}, diag.INVALID_BINARY
	default: // baseOctal
		return digitGroupConfig{
			isDigit:      isOctDigit,
			matchesWidth: func(n int) bool { return n == 3 },
			errCode:      diag.INVALID_NUMBER,
		}, diag.INVALID_NUMBER
	}
}

// validateGrouping checks digit-group consistency once any separator has
// been used in a base-prefixed integer (§4.3.6 "Grouping consistency").
func validateGrouping(base numberBase, groups []int) (bool, diag.Code, string) {
	first := groups[0]
	switch base {
	case baseHex:
		var width int
		switch {
		case first == 1 || first == 2:
			width = 2
		case first == 3 || first == 4:
			width = 4
		default:
			return false, diag.INVALID_HEX, "hex grouping must be by 2 or 4 digits"
		}
		for _, g := range groups[1:] {
			if g != width {
				return false, diag.INVALID_HEX, "inconsistent digit grouping"
			}
		}
	case baseBinary:
		if first < 1 || first > 4 {
			return false, diag.INVALID_BINARY, "binary grouping must start with 1 to 4 digits"
		}
		for _, g := range groups[1:] {
			if g != 4 {
				return false, diag.INVALID_BINARY, "inconsistent digit grouping"
			}
		}
	case baseOctal:
		if first < 1 || first > 3 {
			return false, diag.INVALID_NUMBER, "octal grouping must start with 1 to 3 digits"
		}
		for _, g := range groups[1:] {
			if g != 3 {
				return false, diag.INVALID_NUMBER, "inconsistent digit grouping"
			}
		}
	}
	return true, diag.OK, ""
}

// lexDecimal recognizes a decimal NUMBER after the optional sign: the
// leading-zero rule, an optionally grouped integer part, an optional
// fraction, and an optional exponent. Separators are never permitted
// inside the fraction or exponent.
func (l *Lexer) lexDecimal(start int) (token.Token, diag.Diagnostic) {
	if b0, ok0 := l.cur.Peek(); ok0 && b0 == '0' {
		if nxt, nxtOk := l.cur.PeekAhead(1); nxtOk {
			if isDigit(nxt) {
				l.cur.Advance()
				return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "leading zero not allowed")
			}
			if l.opts.AllowNumberSeparators && isSepByte(nxt) {
				if nxt2, ok2 := l.cur.PeekAhead(2); ok2 && isDigit(nxt2) {
					l.cur.Advance()
					return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "leading zero with separator not allowed")
				}
			}
		}
	}

	cfg := digitGroupConfig{
		isDigit:      isDigit,
		matchesWidth: func(n int) bool { return n == 3 },
		errCode:      diag.INVALID_NUMBER,
	}
	groups, sawDigit, haveSep, errDiag, failed := l.consumeGroupedDigits(cfg)
	if failed {
		return token.Token{Kind: token.INVALID}, errDiag
	}
	if !sawDigit {
		return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "expected digits")
	}

	if haveSep {
		first := groups[0]
		if first < 1 || first > 3 {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "invalid first digit group size")
		}
		for _, g := range groups[1:] {
			if g != 3 {
				return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "invalid digit group size (must be 3)")
			}
		}
	}

	if b, ok := l.cur.Peek(); ok && b == '.' {
		l.cur.Advance()
		if d, ok := l.cur.Peek(); !ok || !isDigit(d) {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "expected digit after '.'")
		}
		for {
			d, ok := l.cur.Peek()
			if !ok || !isDigit(d) {
				break
			}
			l.cur.Advance()
		}
	}

	if b, ok := l.cur.Peek(); ok && (b == 'e' || b == 'E') {
		l.cur.Advance()
		if s, ok := l.cur.Peek(); ok && (s == '+' || s == '-') {
			l.cur.Advance()
		}
		if d, ok := l.cur.Peek(); !ok || !isDigit(d) {
			return token.Token{Kind: token.INVALID}, diag.New(diag.INVALID_NUMBER, l.cur.Location(), "expected digit in exponent")
		}
		for {
			d, ok := l.cur.Peek()
			if !ok || !isDigit(d) {
				break
			}
			l.cur.Advance()
		}
	}

	end := l.cur.Offset()
	return token.Token{Kind: token.NUMBER, Span: token.Span{Offset: start, Length: end - start}}, diag.Diagnostic{}
}
