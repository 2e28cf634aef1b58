package script

// Dialect supplies the syntax-specific tokens one target script syntax
// needs: quoting and escaping of string literals, block delimiters, call
// and assignment shape, mapping/list forms and comment markers. The
// statement model and the layout engine depend only on this interface,
// never on a concrete dialect.
//
// Implementations live under the dialect package; all of them share the
// same layout algorithm, so they must not emit blank lines or indentation
// of their own.
type Dialect interface {
	// Name returns the dialect identifier, e.g. "groovy".
	Name() string

	// ScriptFileName returns the conventional file name for a build script
	// in this dialect, e.g. "build.gradle".
	ScriptFileName() string

	// QuoteString returns s as a quoted, fully escaped string literal.
	// Escaping must be total: no byte of s may be left in a form the
	// dialect's literal syntax would misinterpret.
	QuoteString(s string) string

	// Assignment renders a property assignment statement. legacy selects
	// the provider-style mutation form in dialects that distinguish it.
	Assignment(target, value string, legacy bool) string

	// StatementCall renders a statement-level method invocation. target
	// may be empty for a bare call. args are fully rendered argument
	// tokens, named arguments first.
	StatementCall(target, name string, args []string) string

	// NamedArg renders one named argument of a call.
	NamedArg(name, value string) string

	// MapEntry renders one key/value pair of an ordered-mapping literal.
	MapEntry(key, value string) string

	// MapLiteral renders an ordered-mapping literal from rendered entries.
	MapLiteral(entries []string) string

	// ListLiteral renders an ordered-list literal from rendered elements.
	ListLiteral(elems []string) string

	// BlockOpen renders the opening line of a block for the given
	// selector text.
	BlockOpen(selector string) string

	// BlockClose renders the closing line of a block.
	BlockClose() string

	// TaskSelector renders the selector configuring one named task.
	TaskSelector(taskName, taskType string) string

	// TaskTypeSelector renders the selector configuring every task of a
	// type.
	TaskTypeSelector(taskType string) string

	// ContainerElementSelector renders the selector declaring a named
	// element inside a container. typeName may be empty.
	ContainerElementSelector(container, element, typeName string) string

	// PluginDeclaration renders one line of the plugins section. version
	// may be empty.
	PluginDeclaration(id, version string) string

	// CommentLine renders one line of a statement comment. An empty text
	// must keep the marker's trailing space.
	CommentLine(text string) string

	// BlockCommentOpen, BlockCommentLine and BlockCommentClose render the
	// file-level header comment. An empty text line must carry no
	// trailing whitespace.
	BlockCommentOpen() string
	BlockCommentLine(text string) string
	BlockCommentClose() string
}
