package lexer

// Options controls the AJIS lexer's acceptance of non-JSON extensions.
// The zero value is strict, JSON-compatible mode: both extensions disabled.
type Options struct {
	// AllowMultilineStrings disables the "newline in string" check inside
	// double-quoted STRING literals.
	AllowMultilineStrings bool

	// AllowNumberSeparators activates the '_'/','/' ' digit-group-separator
	// rules inside NUMBER literals (both decimal and base-prefixed).
	AllowNumberSeparators bool
}
