// Package kotlin implements the Kotlin DSL rendering strategy for build
// scripts (build.gradle.kts).
package kotlin

import (
	"strings"

	"github.com/syssam/scriptgen/script"
)

// Dialect returns the Kotlin DSL strategy.
func Dialect() script.Dialect {
	return kotlin{}
}

type kotlin struct{}

func (kotlin) Name() string           { return "kotlin" }
func (kotlin) ScriptFileName() string { return "build.gradle.kts" }

// QuoteString renders s as a double-quoted Kotlin string. Double-quoted
// Kotlin strings interpolate, so dollar signs are escaped along with
// backslashes and double quotes. Backslashes are doubled first.
func (kotlin) QuoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `$`, `\$`)
	return `"` + s + `"`
}

// Assignment renders the legacy style as a provider .set call; the Kotlin
// DSL distinguishes eager assignment from lazy property mutation.
func (kotlin) Assignment(target, value string, legacy bool) string {
	if legacy {
		return target + ".set(" + value + ")"
	}
	return target + " = " + value
}

// StatementCall always parenthesizes; Kotlin has no command-expression
// statement form.
func (kotlin) StatementCall(target, name string, args []string) string {
	call := name
	if target != "" {
		call = target + "." + name
	}
	return call + "(" + strings.Join(args, ", ") + ")"
}

func (kotlin) NamedArg(name, value string) string {
	return name + " = " + value
}

func (k kotlin) MapEntry(key, value string) string {
	return k.QuoteString(key) + " to " + value
}

func (kotlin) MapLiteral(entries []string) string {
	return "mapOf(" + strings.Join(entries, ", ") + ")"
}

func (kotlin) ListLiteral(elems []string) string {
	return "listOf(" + strings.Join(elems, ", ") + ")"
}

func (kotlin) BlockOpen(selector string) string { return selector + " {" }
func (kotlin) BlockClose() string               { return "}" }

func (k kotlin) TaskSelector(taskName, taskType string) string {
	if taskType != "" {
		return "tasks.named<" + taskType + ">(" + k.QuoteString(taskName) + ")"
	}
	return "tasks.named(" + k.QuoteString(taskName) + ")"
}

func (kotlin) TaskTypeSelector(taskType string) string {
	return "tasks.withType<" + taskType + ">"
}

func (k kotlin) ContainerElementSelector(container, element, typeName string) string {
	if typeName != "" {
		return container + ".create<" + typeName + ">(" + k.QuoteString(element) + ")"
	}
	return container + ".create(" + k.QuoteString(element) + ")"
}

func (k kotlin) PluginDeclaration(id, version string) string {
	decl := "id(" + k.QuoteString(id) + ")"
	if version != "" {
		decl += " version " + k.QuoteString(version)
	}
	return decl
}

// CommentLine keeps the marker's trailing space on blank lines, mirroring
// the groovy dialect; block-comment blank lines carry none.
func (kotlin) CommentLine(text string) string {
	return "// " + text
}

func (kotlin) BlockCommentOpen() string { return "/*" }

func (kotlin) BlockCommentLine(text string) string {
	if text == "" {
		return " *"
	}
	return " * " + text
}

func (kotlin) BlockCommentClose() string { return " */" }
