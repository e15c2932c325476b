package diagprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afrowaveltd/ajis/cursor"
	"github.com/afrowaveltd/ajis/diag"
)

func TestPrettyNoColorContainsLocationAndCaret(t *testing.T) {
	source := []byte("[9,10,11,12,13,14,15,16],\n")
	d := diag.New(diag.INVALID_NUMBER, cursor.Location{Line: 1, Column: 9, Offset: 8}, "inconsistent grouping")

	var buf bytes.Buffer
	Pretty(&buf, "test.ajis", source, d, false)
	out := buf.String()

	assert.True(t, strings.Contains(out, "Error: invalid number (inconsistent grouping)"))
	assert.True(t, strings.Contains(out, "--> test.ajis:1:9"))
	assert.True(t, strings.Contains(out, "^^"))
	assert.False(t, strings.Contains(out, "\033["))
}

func TestPrettyWithColorEmitsEscapes(t *testing.T) {
	source := []byte("01")
	d := diag.New(diag.INVALID_NUMBER, cursor.Location{Line: 1, Column: 2, Offset: 1}, "leading zero not allowed")

	var buf bytes.Buffer
	Pretty(&buf, "", source, d, true)
	out := buf.String()

	assert.True(t, strings.Contains(out, "\033[1;31m"))
	assert.True(t, strings.Contains(out, "<input>"))
}

func TestPrettyOKDiagnosticIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, "f", []byte("x"), diag.Diagnostic{}, false)
	assert.Equal(t, "", buf.String())
}

func TestPrettyOffsetBeyondSourceSkipsSnippet(t *testing.T) {
	d := diag.New(diag.UNTERMINATED_COMMENT, cursor.Location{Line: 1, Column: 5, Offset: 99}, "")
	var buf bytes.Buffer
	Pretty(&buf, "f.ajis", []byte("short"), d, false)
	out := buf.String()
	assert.True(t, strings.Contains(out, "-->"))
	assert.False(t, strings.Contains(out, "|"))
}
