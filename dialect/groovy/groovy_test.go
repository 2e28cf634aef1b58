package groovy_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/scriptgen/dialect/groovy"
)

func TestQuoteString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `''`},
		{in: "foo", want: `'foo'`},
		{in: "'foo'", want: `'\'foo\''`},
		{in: `"bar"`, want: `'"bar"'`},
		{in: `foo '\' bar`, want: `'foo \'\\\' bar'`},
		{in: "$foo", want: `'$foo'`},
		{in: `\$foo`, want: `'\\$foo'`},
		{in: `a\b`, want: `'a\\b'`},
		{in: `\`, want: `'\\'`},
		{in: `\'`, want: `'\\\''`},
	}
	d := groovy.Dialect()
	for i := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tests[i].want, d.QuoteString(tests[i].in))
		})
	}
}

// unquote reverses QuoteString: it strips the delimiters and folds the two
// escape sequences back to their source bytes.
func unquote(t *testing.T, s string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'"))
	body := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			require.Less(t, i+1, len(body), "trailing bare backslash in %q", body)
			i++
			require.Contains(t, `\'`, string(body[i]), "unexpected escape in %q", body)
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

// TestQuoteRoundTrip exercises the escaping-totality property: quoting
// then unquoting yields the original string, and every backslash or quote
// byte inside the literal is part of an escape sequence.
func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	d := groovy.Dialect()
	inputs := []string{
		"", "foo", "'foo'", `"bar"`, `foo '\' bar`, "$foo", `\$foo`,
		`\\`, `'''`, `\'\'`, "a\tb", "mixed \\ ' \" $ end", `trailing\`,
	}
	for i, in := range inputs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, in, unquote(t, d.QuoteString(in)))
		})
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	d := groovy.Dialect()
	assert.Equal(t, "groovy", d.Name())
	assert.Equal(t, "build.gradle", d.ScriptFileName())
	assert.Equal(t, "x = 1", d.Assignment("x", "1", false))
	assert.Equal(t, "x = 1", d.Assignment("x", "1", true), "groovy renders both assignment styles identically")
	assert.Equal(t, "mavenCentral()", d.StatementCall("", "mavenCentral", nil))
	assert.Equal(t, "implementation 'a:b:1'", d.StatementCall("", "implementation", []string{"'a:b:1'"}))
	assert.Equal(t, "java.srcDir 'x'", d.StatementCall("java", "srcDir", []string{"'x'"}))
	assert.Equal(t, "group: 'x'", d.NamedArg("group", "'x'"))
	assert.Equal(t, "[:]", d.MapLiteral(nil))
	assert.Equal(t, "[a: 1, b: 2]", d.MapLiteral([]string{d.MapEntry("a", "1"), d.MapEntry("b", "2")}))
	assert.Equal(t, "[]", d.ListLiteral(nil))
	assert.Equal(t, "[1, 2]", d.ListLiteral([]string{"1", "2"}))
	assert.Equal(t, "plugins {", d.BlockOpen("plugins"))
	assert.Equal(t, "}", d.BlockClose())
	assert.Equal(t, "tasks.named('test')", d.TaskSelector("test", "Test"))
	assert.Equal(t, "tasks.withType(Test)", d.TaskTypeSelector("Test"))
	assert.Equal(t, "publishing.publications.maven(MavenPublication)",
		d.ContainerElementSelector("publishing.publications", "maven", "MavenPublication"))
	assert.Equal(t, "sourceSets.integTest", d.ContainerElementSelector("sourceSets", "integTest", ""))
	assert.Equal(t, "id 'java'", d.PluginDeclaration("java", ""))
	assert.Equal(t, "id 'org.example' version '1.2'", d.PluginDeclaration("org.example", "1.2"))
}

// TestCommentTokens pins the trailing-whitespace asymmetry between the two
// comment styles.
func TestCommentTokens(t *testing.T) {
	t.Parallel()

	d := groovy.Dialect()
	assert.Equal(t, "// text", d.CommentLine("text"))
	assert.Equal(t, "// ", d.CommentLine(""), "blank line comments keep one trailing space")
	assert.Equal(t, "/*", d.BlockCommentOpen())
	assert.Equal(t, " * text", d.BlockCommentLine("text"))
	assert.Equal(t, " *", d.BlockCommentLine(""), "blank block-comment lines carry no trailing whitespace")
	assert.Equal(t, " */", d.BlockCommentClose())
}
