// Package scriptgen generates syntactically valid, consistently formatted
// build-configuration scripts from a structured, dialect-independent model.
//
// Callers describe what a generated script should contain (plugins,
// dependencies, repositories, tasks, property assignments, method calls,
// nested configuration blocks) through the builder API in the script
// package; the model is then rendered into exact source text by one of the
// dialect strategies (Groovy or Kotlin DSL).
//
// Rendering is deterministic: identical model state always yields identical
// text, including whitespace, comment layout and quoting. Related statements
// declared from several non-adjacent builder calls (task configuration,
// plugin/repository/dependency sections) collapse into single merged blocks
// at render time.
//
// # Package layout
//
//   - script: the statement/expression model, symbol registry, builder API
//     and the dialect-agnostic layout engine
//   - dialect, dialect/groovy, dialect/kotlin: per-syntax strategies
//   - compiler/load: YAML project descriptors
//   - compiler/gen: descriptor-driven file generation
//   - cmd/scriptgen: command-line interface
//
// This root package holds the error types shared across the module.
package scriptgen
