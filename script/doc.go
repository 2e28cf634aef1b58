// Package script holds the statement/expression model of a generated build
// script, the symbol registry that lets later statements reference earlier
// declared elements, and the dialect-agnostic layout engine that turns the
// finalized model into exact source text.
//
// Content is assembled through Builder:
//
//	b := script.NewBuilder()
//	b.Plugin("Apply the java-library plugin.", "java-library")
//	b.MavenCentral()
//	b.Implementation("", "com.google.guava:guava:33.0.0-jre")
//	b.TaskMethodInvocation("Use JUnit Platform for unit tests.",
//		"test", "Test", "useJUnitPlatform")
//	text, err := b.Render(groovy.Dialect())
//
// Statement order as declared is the base render order. The plugins,
// repositories and dependencies sections are accumulated separately and
// rendered once each at fixed slots; task-scoped statements merge into one
// block per task name (or task type) and render after everything else,
// per-type blocks first. Ordinary blocks and container elements are never
// merged.
//
// Rendering is deterministic and pure: identical model state always yields
// identical text, for any dialect.
package script
