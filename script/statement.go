package script

// Statement is one unit of generated content: a property assignment, a
// method invocation, a plugin declaration or a nested block. Statements are
// created through the builder API and become read-only once the script is
// rendered.
type Statement interface {
	// comment returns the statement's attached comment, possibly
	// multi-line, or the empty string.
	comment() string
	// isBlock reports whether the statement renders as a braced block and
	// therefore takes part in the block separation rule.
	isBlock() bool
}

type stmtBase struct {
	note string
}

func (s stmtBase) comment() string { return s.note }
func (stmtBase) isBlock() bool     { return false }

// assignStmt renders as "target = value". Legacy marks the provider-style
// mutation form; dialects that do not distinguish the two render both
// identically.
type assignStmt struct {
	stmtBase
	target Expr
	value  Expr
	legacy bool
}

// callStmt renders as a statement-level method invocation. A nil target
// yields a bare call.
type callStmt struct {
	stmtBase
	target Expr
	name   string
	args   []Expr
}

// pluginStmt renders as one plugin declaration inside the plugins section.
type pluginStmt struct {
	stmtBase
	id      string
	version string
}

// selKind discriminates how a block's opening selector is produced.
type selKind int

const (
	selPlain   selKind = iota // selector is the block name verbatim
	selTask                   // one named task, e.g. tasks.named('test')
	selTaskAll                // all tasks of a type, e.g. tasks.withType(Test)
	selElement                // container element declaration
)

// selector describes the text before the opening brace of a block.
type selector struct {
	kind      selKind
	name      string // plain block name, task name or element name
	typeName  string // task type or element type, may be empty for selElement
	container string // container path for selElement
}

// blockStmt is a braced block of nested statements. Blocks are never
// auto-merged: two blocks with the same selector render separately.
type blockStmt struct {
	stmtBase
	sel  selector
	body *BlockBuilder
}

func (blockStmt) isBlock() bool { return true }
