package lexer

// Character predicates used by the sub-recognizers. Kept as free functions,
// matching the teacher's isIdentifierStart/isIdentifierChar/isHexDigit style
// in parser/lexer/lexer.go rather than methods on Lexer, since none of them
// need lexer state.

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isOctDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isSepByte(b byte) bool {
	return b == '_' || b == ' ' || b == ','
}

func isBase64Char(b byte) bool {
	return isAsciiLetter(b) || isDigit(b) || b == '+' || b == '/' || b == '='
}

func isIdentifierBoundaryByte(b byte) bool {
	return isAsciiLetter(b) || isDigit(b) || b == '_'
}
