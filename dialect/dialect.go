// Package dialect names the supported output syntaxes for generated build
// scripts and resolves them to their strategy implementations.
//
// Each dialect is identified by a constant string:
//
//	dialect.Groovy = "groovy"
//	dialect.Kotlin = "kotlin"
//
// The strategies themselves live in the groovy and kotlin subpackages and
// implement script.Dialect. They supply only token shape, quoting and the
// treatment of the legacy assignment style; blank lines, comment placement
// and statement merging are decided by the shared layout engine in the
// script package.
package dialect

import (
	"fmt"

	"github.com/syssam/scriptgen/dialect/groovy"
	"github.com/syssam/scriptgen/dialect/kotlin"
	"github.com/syssam/scriptgen/script"
)

// Dialect names.
const (
	// Groovy is the Groovy DSL (build.gradle). It is the default dialect.
	Groovy = "groovy"
	// Kotlin is the Kotlin DSL (build.gradle.kts).
	Kotlin = "kotlin"
)

// Default is the dialect used when none is requested.
const Default = Groovy

// All returns the supported dialect names in stable order.
func All() []string {
	return []string{Groovy, Kotlin}
}

// Lookup resolves a dialect name to its strategy.
func Lookup(name string) (script.Dialect, error) {
	switch name {
	case Groovy:
		return groovy.Dialect(), nil
	case Kotlin:
		return kotlin.Dialect(), nil
	default:
		return nil, fmt.Errorf("dialect: unsupported dialect %q (supported: %v)", name, All())
	}
}
