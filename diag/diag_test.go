package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afrowaveltd/ajis/cursor"
)

func TestDiagnosticIsOK(t *testing.T) {
	var d Diagnostic
	assert.True(t, d.IsOK())
	assert.Equal(t, "ok", d.Error())

	d2 := New(INVALID_NUMBER, cursor.Location{Line: 1, Column: 1, Offset: 0}, "bad")
	assert.False(t, d2.IsOK())
}

func TestDiagnosticErrorFormat(t *testing.T) {
	loc := cursor.Location{Line: 3, Column: 7, Offset: 20}
	d := New(UNTERMINATED_COMMENT, loc, "unterminated block comment")
	assert.Equal(t, "3:7: unterminated comment (unterminated block comment)", d.Error())

	d2 := New(UNEXPECTED_EOF, loc, "")
	assert.Equal(t, "3:7: unexpected end of input", d2.Error())
}

func TestCodeStringUnknown(t *testing.T) {
	assert.Equal(t, "Code(999)", Code(999).String())
}

func TestFromCursorLocation(t *testing.T) {
	l := cursor.Location{Line: 2, Column: 4, Offset: 10}
	loc := FromCursorLocation(l)
	assert.Equal(t, Location{Line: 2, Column: 4, Offset: 10}, loc)
}
