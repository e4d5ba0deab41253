package sqlscript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davemendes/salespipe/internal/sqlscript"
)

func trimmed(statements []string) []string {
	out := make([]string, 0, len(statements))

	for _, s := range statements {
		out = append(out, normalize(s))
	}

	return out
}

func normalize(s string) string {
	fields := make([]byte, 0, len(s))

	space := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\n' || c == '\t' {
			space = len(fields) > 0
			continue
		}

		if space {
			fields = append(fields, ' ')
			space = false
		}

		fields = append(fields, c)
	}

	return string(fields)
}

func TestSplit_Simple(t *testing.T) {
	got := sqlscript.Split("CREATE TABLE a(x int); CREATE TABLE b(y int);")

	assert.Equal(t, []string{
		"CREATE TABLE a(x int);",
		"CREATE TABLE b(y int);",
	}, trimmed(got))
}

func TestSplit_SemicolonInsideQuotes(t *testing.T) {
	got := sqlscript.Split(`INSERT INTO t VALUES ('a;b');`)

	require.Len(t, got, 1)
	assert.Equal(t, `INSERT INTO t VALUES ('a;b');`, normalize(got[0]))
}

func TestSplit_DoubleQuotedIdentifier(t *testing.T) {
	got := sqlscript.Split(`SELECT ";" FROM "odd;name"; SELECT 1;`)

	require.Len(t, got, 2)
	assert.Equal(t, `SELECT ";" FROM "odd;name";`, normalize(got[0]))
}

func TestSplit_CommentsStripped(t *testing.T) {
	script := `-- leading comment
CREATE TABLE a(x int); -- trailing comment
/* block
   comment */ CREATE TABLE b(y int);`

	got := sqlscript.Split(script)

	assert.Equal(t, []string{
		"CREATE TABLE a(x int);",
		"CREATE TABLE b(y int);",
	}, trimmed(got))
}

func TestSplit_TrailingStatementWithoutSemicolon(t *testing.T) {
	got := sqlscript.Split("CREATE TABLE a(x int); CREATE INDEX ix ON a(x)")

	require.Len(t, got, 2)
	assert.Equal(t, "CREATE INDEX ix ON a(x)", normalize(got[1]))
}

// Escaped quotes are not understood: '' closes and reopens the string.
// The doubled quote below happens to leave the state balanced, so the
// statement still splits at its real terminator. This pins the accepted
// limitation rather than any smarter behavior.
func TestSplit_EscapedQuotesNotHandled(t *testing.T) {
	got := sqlscript.Split(`INSERT INTO t VALUES ('it''s;fine');`)

	// The machine sees the string end at the second quote, reopen at the
	// third, and close at the fourth, so the embedded semicolon is still
	// inside a string when reached.
	require.Len(t, got, 1)
}

func TestSplit_Empty(t *testing.T) {
	assert.Empty(t, sqlscript.Split(""))
	assert.Len(t, sqlscript.Split("   \n  "), 1) // whitespace-only tail is emitted; the runner skips it
}
