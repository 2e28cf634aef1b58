// Package groovy implements the Groovy DSL rendering strategy for build
// scripts (build.gradle). It is the default dialect.
package groovy

import (
	"strings"

	"github.com/syssam/scriptgen/script"
)

// Dialect returns the Groovy DSL strategy.
func Dialect() script.Dialect {
	return groovy{}
}

type groovy struct{}

func (groovy) Name() string           { return "groovy" }
func (groovy) ScriptFileName() string { return "build.gradle" }

// QuoteString renders s as a single-quoted Groovy string. Backslashes are
// doubled before quotes are escaped, so a backslash preceding a quote is
// itself escaped first. Double quotes and dollar signs pass through
// unmodified: single-quoted Groovy strings do not interpolate.
func (groovy) QuoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// Assignment renders both assignment styles identically; Groovy property
// assignment covers eager and provider-backed properties alike.
func (groovy) Assignment(target, value string, legacy bool) string {
	return target + " = " + value
}

// StatementCall drops the parentheses when arguments are present, matching
// the conventional Groovy statement form: implementation 'a:b:1', but
// mavenCentral().
func (groovy) StatementCall(target, name string, args []string) string {
	call := name
	if target != "" {
		call = target + "." + name
	}
	if len(args) == 0 {
		return call + "()"
	}
	return call + " " + strings.Join(args, ", ")
}

func (groovy) NamedArg(name, value string) string {
	return name + ": " + value
}

func (groovy) MapEntry(key, value string) string {
	return key + ": " + value
}

func (groovy) MapLiteral(entries []string) string {
	if len(entries) == 0 {
		return "[:]"
	}
	return "[" + strings.Join(entries, ", ") + "]"
}

func (groovy) ListLiteral(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}

func (groovy) BlockOpen(selector string) string { return selector + " {" }
func (groovy) BlockClose() string               { return "}" }

func (g groovy) TaskSelector(taskName, taskType string) string {
	return "tasks.named(" + g.QuoteString(taskName) + ")"
}

func (groovy) TaskTypeSelector(taskType string) string {
	return "tasks.withType(" + taskType + ")"
}

func (groovy) ContainerElementSelector(container, element, typeName string) string {
	sel := container + "." + element
	if typeName != "" {
		sel += "(" + typeName + ")"
	}
	return sel
}

func (g groovy) PluginDeclaration(id, version string) string {
	decl := "id " + g.QuoteString(id)
	if version != "" {
		decl += " version " + g.QuoteString(version)
	}
	return decl
}

// CommentLine keeps the marker's trailing space on blank lines; the
// asymmetry with BlockCommentLine is intentional and load-bearing for
// bit-exact output.
func (groovy) CommentLine(text string) string {
	return "// " + text
}

func (groovy) BlockCommentOpen() string { return "/*" }

func (groovy) BlockCommentLine(text string) string {
	if text == "" {
		return " *"
	}
	return " * " + text
}

func (groovy) BlockCommentClose() string { return " */" }
