package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"minicc/pkg/lexer"
)

func tokenize(t *testing.T, source string) []*lexer.Line {
	t.Helper()

	lines, err := lexer.Tokenize("test.mc", strings.NewReader(source))
	require.NoError(t, err)

	return lines
}

func TestTokenize_SplitsPunctuation(t *testing.T) {
	r := require.New(t)

	lines := tokenize(t, "x=(y+2)*3;")
	r.Len(lines, 1)
	r.Equal([]string{"x", "=", "(", "y", "+", "2", ")", "*", "3", ";"}, lines[0].Tokens)
}

func TestTokenize_SkipsBlankAndCommentLines(t *testing.T) {
	r := require.New(t)

	lines := tokenize(t, `
// leading comment

int x ; // trailing comment
`)
	r.Len(lines, 1)
	r.Equal([]string{"int", "x", ";"}, lines[0].Tokens)
	r.Equal(4, lines[0].Number)
	r.Equal("test.mc:4", lines[0].Position())
}

func TestTokenize_StringLiteral(t *testing.T) {
	r := require.New(t)

	lines := tokenize(t, `s = "a + (b)" ;`)
	r.Len(lines, 1)
	r.Equal([]string{"s", "=", `"a + (b)"`, ";"}, lines[0].Tokens)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	r := require.New(t)

	_, err := lexer.Tokenize("test.mc", strings.NewReader("int x ;\ns = \"oops ;\n"))
	r.Error(err)
	r.Contains(err.Error(), "test.mc:2:")
	r.Contains(err.Error(), "unterminated string literal")
}

func TestLine_WrapError(t *testing.T) {
	r := require.New(t)

	line := &lexer.Line{File: "main.mc", Number: 3}

	err := line.WrapError(errors.New("bad token"))
	r.Error(err)
	r.Contains(err.Error(), "main.mc:3:")

	// wrapping is idempotent
	other := &lexer.Line{File: "other.mc", Number: 9}
	r.Equal(err, other.WrapError(err))

	r.NoError(line.WrapError(nil))
}
