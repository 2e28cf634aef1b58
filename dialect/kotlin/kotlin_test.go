package kotlin_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/scriptgen/dialect/kotlin"
)

func TestQuoteString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `""`},
		{in: "foo", want: `"foo"`},
		{in: `"bar"`, want: `"\"bar\""`},
		{in: "'foo'", want: `"'foo'"`},
		{in: "$foo", want: `"\$foo"`},
		{in: `a\b`, want: `"a\\b"`},
		{in: `\$x`, want: `"\\\$x"`},
	}
	d := kotlin.Dialect()
	for i := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tests[i].want, d.QuoteString(tests[i].in))
		})
	}
}

// unquote reverses QuoteString for the round-trip property check.
func unquote(t *testing.T, s string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`))
	body := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			require.Less(t, i+1, len(body), "trailing bare backslash in %q", body)
			i++
			require.Contains(t, `\"$`, string(body[i]), "unexpected escape in %q", body)
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	d := kotlin.Dialect()
	inputs := []string{
		"", "foo", `"bar"`, "$foo", `\$foo`, `\\`, `"$"`, "mixed \\ ' \" $ end",
	}
	for i, in := range inputs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, in, unquote(t, d.QuoteString(in)))
		})
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	d := kotlin.Dialect()
	assert.Equal(t, "kotlin", d.Name())
	assert.Equal(t, "build.gradle.kts", d.ScriptFileName())
	assert.Equal(t, "x = 1", d.Assignment("x", "1", false))
	assert.Equal(t, "x.set(1)", d.Assignment("x", "1", true), "legacy style renders provider mutation")
	assert.Equal(t, "mavenCentral()", d.StatementCall("", "mavenCentral", nil))
	assert.Equal(t, `implementation("a:b:1")`, d.StatementCall("", "implementation", []string{`"a:b:1"`}))
	assert.Equal(t, "group = 1", d.NamedArg("group", "1"))
	assert.Equal(t, "mapOf()", d.MapLiteral(nil))
	assert.Equal(t, `mapOf("a" to 1)`, d.MapLiteral([]string{d.MapEntry("a", "1")}))
	assert.Equal(t, "listOf()", d.ListLiteral(nil))
	assert.Equal(t, `tasks.named<Test>("test")`, d.TaskSelector("test", "Test"))
	assert.Equal(t, `tasks.named("test")`, d.TaskSelector("test", ""))
	assert.Equal(t, "tasks.withType<JavaCompile>", d.TaskTypeSelector("JavaCompile"))
	assert.Equal(t, `publishing.publications.create<MavenPublication>("maven")`,
		d.ContainerElementSelector("publishing.publications", "maven", "MavenPublication"))
	assert.Equal(t, `sourceSets.create("integTest")`, d.ContainerElementSelector("sourceSets", "integTest", ""))
	assert.Equal(t, `id("java")`, d.PluginDeclaration("java", ""))
	assert.Equal(t, `id("org.example") version "1.2"`, d.PluginDeclaration("org.example", "1.2"))
	assert.Equal(t, "// ", d.CommentLine(""))
	assert.Equal(t, " *", d.BlockCommentLine(""))
}
