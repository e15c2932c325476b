package lexer

import (
	"testing"

	participlelexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrowaveltd/ajis/token"
)

func TestDefinitionSymbolsIncludesEveryKind(t *testing.T) {
	def := NewDefinition(Options{})
	symbols := def.Symbols()

	assert.Equal(t, participlelexer.EOF, symbols["EOF"])
	assert.Equal(t, participlelexer.TokenType(token.STRING), symbols["STRING"])
	assert.Equal(t, participlelexer.TokenType(token.HEX_BINARY), symbols["HEX_BINARY"])
	assert.Len(t, symbols, 15)
}

func TestDefinitionLexStringProducesParticipleTokens(t *testing.T) {
	def := NewDefinition(Options{AllowNumberSeparators: true})
	plex, err := def.LexString("test.ajis", `{"a":1,000}`)
	require.NoError(t, err)

	var got []participlelexer.Token
	for {
		tok, err := plex.Next()
		require.NoError(t, err)
		got = append(got, tok)
		if tok.Type == participlelexer.EOF {
			break
		}
	}

	require.Len(t, got, 6)
	assert.Equal(t, participlelexer.TokenType(token.LBRACE), got[0].Type)
	assert.Equal(t, "{", got[0].Value)
	assert.Equal(t, participlelexer.TokenType(token.STRING), got[1].Type)
	assert.Equal(t, "a", got[1].Value)
	assert.Equal(t, participlelexer.TokenType(token.COLON), got[2].Type)
	assert.Equal(t, participlelexer.TokenType(token.NUMBER), got[3].Type)
	assert.Equal(t, "1,000", got[3].Value)
	assert.Equal(t, participlelexer.TokenType(token.RBRACE), got[4].Type)
	assert.Equal(t, participlelexer.EOF, got[5].Type)
}

func TestDefinitionLexBytesSurfacesDiagnosticAsError(t *testing.T) {
	def := NewDefinition(Options{})
	plex, err := def.LexBytes("test.ajis", []byte("01"))
	require.NoError(t, err)

	_, err = plex.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leading zero not allowed")
}
