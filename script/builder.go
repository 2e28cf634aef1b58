package script

import (
	"strings"

	"github.com/syssam/scriptgen"
)

// Builder assembles the model of one generated build script. All content is
// added through builder calls; the first Render finalizes the model and
// further mutation panics. Rendering is pure: the same finalized builder
// always yields byte-identical text, and Render may be called repeatedly.
//
// The plugins, repositories and dependencies sections are separate
// accumulators rendered once each at fixed slots at the top of the script,
// regardless of when their helper methods were called relative to other
// builder calls. Task-scoped statements are regrouped into one block per
// task (or task type) and rendered after all other top-level content.
type Builder struct {
	header       []string
	plugins      []Statement
	repositories *BlockBuilder
	dependencies *BlockBuilder
	body         *BlockBuilder

	perType     *taskUnits
	perInstance *taskUnits

	reg       *registry
	err       error
	finalized bool
}

// NewBuilder returns an empty script builder with its own symbol registry.
func NewBuilder() *Builder {
	b := &Builder{
		perType:     newTaskUnits(),
		perInstance: newTaskUnits(),
		reg:         newRegistry(),
	}
	b.repositories = b.newBlock()
	b.dependencies = b.newBlock()
	b.body = b.newBlock()
	return b
}

// BlockBuilder appends statements to one nested scope. It is handed out by
// Block and ContainerElement and shares the owning builder's registry,
// error state and lifecycle.
type BlockBuilder struct {
	script *Builder
	stmts  []Statement
}

func (b *Builder) newBlock() *BlockBuilder {
	return &BlockBuilder{script: b}
}

// assertMutable panics when the model has already been rendered. Mutating a
// finalized script is a programmer error, not a recoverable condition.
func (b *Builder) assertMutable() {
	if b.finalized {
		panic("script: builder is finalized; create a new builder per script")
	}
}

// fail records the first construction error; Render surfaces it.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// checkValue validates a literal/expression value at construction time so
// that an unsupported shape is attributed to the builder call that produced
// it. ctx is the statement target or comment, whichever locates the call.
func (b *Builder) checkValue(ctx string, v any) {
	if !validValue(v) {
		b.fail(scriptgen.NewInvalidLiteralError(ctx, v))
	}
}

func (b *Builder) checkArgs(ctx string, args []any) {
	for _, a := range args {
		b.checkValue(ctx, a)
	}
}

// context picks the most useful locator for error messages.
func context(target, comment string) string {
	if target != "" {
		return target
	}
	return comment
}

// HeaderComment adds file-level header lines rendered as a single block
// comment at the top of the script. Each line may itself contain newlines.
func (b *Builder) HeaderComment(lines ...string) *Builder {
	b.assertMutable()
	for _, l := range lines {
		b.header = append(b.header, strings.Split(l, "\n")...)
	}
	return b
}

// Plugin declares a plugin in the plugins section.
func (b *Builder) Plugin(comment, id string) *Builder {
	return b.PluginWithVersion(comment, id, "")
}

// PluginWithVersion declares a plugin with an explicit version.
func (b *Builder) PluginWithVersion(comment, id, version string) *Builder {
	b.assertMutable()
	b.plugins = append(b.plugins, &pluginStmt{stmtBase: stmtBase{note: comment}, id: id, version: version})
	return b
}

// MavenCentral adds the Maven Central repository.
func (b *Builder) MavenCentral() *Builder {
	b.assertMutable()
	b.repositories.invoke("", nil, "mavenCentral")
	return b
}

// MavenLocal adds the local Maven cache as a repository.
func (b *Builder) MavenLocal() *Builder {
	b.assertMutable()
	b.repositories.invoke("", nil, "mavenLocal")
	return b
}

// MavenRepository adds a remote Maven repository by URL.
func (b *Builder) MavenRepository(comment, url string) *Builder {
	b.assertMutable()
	maven := b.newBlock()
	maven.assign("", Path("url"), Call("uri", url), false)
	b.repositories.stmts = append(b.repositories.stmts, &blockStmt{
		stmtBase: stmtBase{note: comment},
		sel:      selector{kind: selPlain, name: "maven"},
		body:     maven,
	})
	return b
}

// Dependency adds one statement per coordinate to the dependencies section
// for the given configuration, e.g. Dependency("", "implementation",
// "com.google.guava:guava:33.0.0-jre"). The comment attaches to the first
// coordinate.
func (b *Builder) Dependency(comment, configuration string, coordinates ...string) *Builder {
	b.assertMutable()
	for i, c := range coordinates {
		note := ""
		if i == 0 {
			note = comment
		}
		b.dependencies.invoke(note, nil, configuration, c)
	}
	return b
}

// Implementation adds implementation-configuration dependencies.
func (b *Builder) Implementation(comment string, coordinates ...string) *Builder {
	return b.Dependency(comment, "implementation", coordinates...)
}

// TestImplementation adds test-implementation dependencies.
func (b *Builder) TestImplementation(comment string, coordinates ...string) *Builder {
	return b.Dependency(comment, "testImplementation", coordinates...)
}

// TestRuntimeOnly adds test-runtime dependencies.
func (b *Builder) TestRuntimeOnly(comment string, coordinates ...string) *Builder {
	return b.Dependency(comment, "testRuntimeOnly", coordinates...)
}

// PlatformDependency adds a platform (BOM) dependency, rendered as
// configuration platform('coordinate').
func (b *Builder) PlatformDependency(comment, configuration, coordinate string) *Builder {
	return b.DependencyOn(comment, configuration, Call("platform", coordinate))
}

// ProjectDependency adds a dependency on another project of the build,
// rendered as configuration project(':path').
func (b *Builder) ProjectDependency(comment, configuration, projectPath string) *Builder {
	return b.DependencyOn(comment, configuration, Call("project", projectPath))
}

// DependencyOn adds a dependency with an arbitrary notation expression,
// for example a reference to a declared version-catalog element.
func (b *Builder) DependencyOn(comment, configuration string, notation any) *Builder {
	b.assertMutable()
	b.checkValue(context(configuration, comment), notation)
	b.dependencies.invoke(comment, nil, configuration, notation)
	return b
}

// PropertyAssignment assigns a value to a dotted property path at the top
// level of the script.
func (b *Builder) PropertyAssignment(comment, target string, value any) *Builder {
	b.body.PropertyAssignment(comment, target, value)
	return b
}

// LegacyPropertyAssignment assigns a value using the legacy provider-style
// mutation form. The default dialect renders it identically to
// PropertyAssignment.
func (b *Builder) LegacyPropertyAssignment(comment, target string, value any) *Builder {
	b.body.LegacyPropertyAssignment(comment, target, value)
	return b
}

// PropertyAssignmentOn assigns a value to an explicit target expression,
// for example a property of a referenced container element.
func (b *Builder) PropertyAssignmentOn(comment string, target Expr, value any) *Builder {
	b.body.PropertyAssignmentOn(comment, target, value)
	return b
}

// MethodInvocation adds a top-level statement call. The name may be dotted;
// everything before the last segment becomes the call target.
func (b *Builder) MethodInvocation(comment, name string, args ...any) *Builder {
	b.body.MethodInvocation(comment, name, args...)
	return b
}

// Block opens a named nested block at the top level and returns its scope.
// Two blocks with the same name produce two separate rendered blocks.
func (b *Builder) Block(comment, name string) *BlockBuilder {
	return b.body.Block(comment, name)
}

// ContainerElement declares a named element inside a container block (for
// example a source set or a publication) and returns its scope together
// with a Symbol that later statements can reference through Ref.
func (b *Builder) ContainerElement(comment, container, element, typeName string) (*BlockBuilder, Symbol) {
	return b.body.ContainerElement(comment, container, element, typeName)
}

// TaskPropertyAssignment assigns a property inside the configuration block
// of one named task. All statements sharing the task name merge into a
// single block, in first-use order, rendered after every per-type block.
func (b *Builder) TaskPropertyAssignment(comment, taskName, taskType, target string, value any) *Builder {
	b.assertMutable()
	unit := b.perInstance.unit(b, taskName, taskType)
	unit.PropertyAssignment(comment, target, value)
	return b
}

// TaskMethodInvocation adds a statement call inside the configuration block
// of one named task.
func (b *Builder) TaskMethodInvocation(comment, taskName, taskType, name string, args ...any) *Builder {
	b.assertMutable()
	unit := b.perInstance.unit(b, taskName, taskType)
	unit.MethodInvocation(comment, name, args...)
	return b
}

// TaskTypePropertyAssignment assigns a property for every task of the given
// type. Per-type blocks render before all per-instance blocks.
func (b *Builder) TaskTypePropertyAssignment(comment, taskType, target string, value any) *Builder {
	b.assertMutable()
	unit := b.perType.unit(b, taskType, taskType)
	unit.PropertyAssignment(comment, target, value)
	return b
}

// TaskTypeMethodInvocation adds a statement call for every task of the
// given type.
func (b *Builder) TaskTypeMethodInvocation(comment, taskType, name string, args ...any) *Builder {
	b.assertMutable()
	unit := b.perType.unit(b, taskType, taskType)
	unit.MethodInvocation(comment, name, args...)
	return b
}

// PropertyAssignment assigns a value to a dotted property path inside this
// scope.
func (s *BlockBuilder) PropertyAssignment(comment, target string, value any) *BlockBuilder {
	s.script.assertMutable()
	s.script.checkValue(context(target, comment), value)
	s.assign(comment, Path(target), Lit(value), false)
	return s
}

// LegacyPropertyAssignment assigns a value using the legacy provider-style
// mutation form.
func (s *BlockBuilder) LegacyPropertyAssignment(comment, target string, value any) *BlockBuilder {
	s.script.assertMutable()
	s.script.checkValue(context(target, comment), value)
	s.assign(comment, Path(target), Lit(value), true)
	return s
}

// PropertyAssignmentOn assigns a value to an explicit target expression.
func (s *BlockBuilder) PropertyAssignmentOn(comment string, target Expr, value any) *BlockBuilder {
	s.script.assertMutable()
	s.script.checkValue(comment, value)
	s.assign(comment, target, Lit(value), false)
	return s
}

// MethodInvocation adds a statement call to this scope. The name may be
// dotted; everything before the last segment becomes the call target.
func (s *BlockBuilder) MethodInvocation(comment, name string, args ...any) *BlockBuilder {
	s.script.assertMutable()
	s.script.checkArgs(context(name, comment), args)
	target, short := splitTarget(name)
	s.invoke(comment, target, short, args...)
	return s
}

// Block opens a named nested block inside this scope and returns it.
func (s *BlockBuilder) Block(comment, name string) *BlockBuilder {
	s.script.assertMutable()
	body := s.script.newBlock()
	s.stmts = append(s.stmts, &blockStmt{
		stmtBase: stmtBase{note: comment},
		sel:      selector{kind: selPlain, name: name},
		body:     body,
	})
	return body
}

// ContainerElement declares a named element inside a container block and
// returns its scope and Symbol. Two declarations with the same container
// and element name produce two independent blocks and two independent
// symbols; container elements are never merged.
func (s *BlockBuilder) ContainerElement(comment, container, element, typeName string) (*BlockBuilder, Symbol) {
	s.script.assertMutable()
	body := s.script.newBlock()
	s.stmts = append(s.stmts, &blockStmt{
		stmtBase: stmtBase{note: comment},
		sel:      selector{kind: selElement, name: element, typeName: typeName, container: container},
		body:     body,
	})
	return body, s.script.reg.declare(container, element)
}

func (s *BlockBuilder) assign(comment string, target, value Expr, legacy bool) {
	s.stmts = append(s.stmts, &assignStmt{
		stmtBase: stmtBase{note: comment},
		target:   target,
		value:    value,
		legacy:   legacy,
	})
}

func (s *BlockBuilder) invoke(comment string, target Expr, name string, args ...any) {
	s.stmts = append(s.stmts, &callStmt{
		stmtBase: stmtBase{note: comment},
		target:   target,
		name:     name,
		args:     exprs(args),
	})
}

// taskUnits is a keyed accumulator for task-scoped statements. Units are
// created in first-use order and finalized into render blocks only at
// render time.
type taskUnits struct {
	order []string
	units map[string]*BlockBuilder
	types map[string]string
}

func newTaskUnits() *taskUnits {
	return &taskUnits{
		units: make(map[string]*BlockBuilder),
		types: make(map[string]string),
	}
}

// unit returns the scope for key, creating it on first use. The task type
// recorded on first use wins.
func (u *taskUnits) unit(b *Builder, key, taskType string) *BlockBuilder {
	s, ok := u.units[key]
	if !ok {
		s = b.newBlock()
		u.units[key] = s
		u.types[key] = taskType
		u.order = append(u.order, key)
	}
	return s
}
