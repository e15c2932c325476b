// Package diagprint renders a diag.Diagnostic as a caret-annotated source
// snippet, in the Rust-style format demonstrated by the AJIS reference
// implementation's ajis_error_print_pretty.
package diagprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/afrowaveltd/ajis/diag"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorBlue  = "\033[1;34m"
)

// Pretty writes d to out in the form:
//
//	Error: invalid number (inconsistent grouping)
//	  --> test.ajis:20:9
//	    |
//	 20 | [9,10,11,12,13,14,15,16],
//	    |         ^^ inconsistent grouping
//	    |
//
// filename labels the location line; it may be empty, in which case
// "<input>" is used. source is the full buffer the Diagnostic's Location
// was computed against, used only to recover the offending line; a location
// at len(source) (an error at end of input) shows the last line with the
// caret just past its end. If source is empty or the location lies beyond
// its end, only the header and location lines are printed. color enables
// ANSI escapes; set it false when out is not a terminal.
func Pretty(out io.Writer, filename string, source []byte, d diag.Diagnostic, color bool) {
	if d.IsOK() {
		return
	}
	if filename == "" {
		filename = "<input>"
	}

	red, blue, reset := "", "", ""
	if color {
		red, blue, reset = colorRed, colorBlue, colorReset
	}

	fmt.Fprintf(out, "%sError:%s %s", red, reset, d.Code)
	if d.Context != "" {
		fmt.Fprintf(out, " (%s)", d.Context)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %s-->%s %s:%d:%d\n", blue, reset, filename, d.Location.Line, d.Location.Column)

	if len(source) == 0 || d.Location.Offset > len(source) {
		return
	}

	lineStart := d.Location.Offset
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := d.Location.Offset
	for lineEnd < len(source) && source[lineEnd] != '\n' && source[lineEnd] != '\r' {
		lineEnd++
	}

	width := len(fmt.Sprintf("%d", d.Location.Line))
	if width < 2 {
		width = 2
	}

	fmt.Fprintf(out, " %*s %s|%s\n", width, "", blue, reset)
	fmt.Fprintf(out, " %s%*d |%s %s\n", blue, width, d.Location.Line, reset, source[lineStart:lineEnd])
	fmt.Fprintf(out, " %*s %s|%s ", width, "", blue, reset)

	colOffset := d.Location.Offset - lineStart
	for i := 0; i < colOffset; i++ {
		fmt.Fprint(out, " ")
	}

	fmt.Fprintf(out, "%s^", red)
	if highlightLen(d.Context) > 1 && d.Location.Offset+1 < lineEnd {
		fmt.Fprint(out, "^")
	}
	fmt.Fprint(out, reset)

	if d.Context != "" {
		fmt.Fprintf(out, " %s", d.Context)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, " %*s %s|%s\n", width, "", blue, reset)
}

// highlightLen is the same small heuristic as the reference printer: a
// context mentioning grouping or separators highlights two characters
// instead of one, since those failures are usually detected one byte past
// the offending pair.
func highlightLen(context string) int {
	if strings.Contains(context, "separator") || strings.Contains(context, "group") {
		return 2
	}
	return 1
}
