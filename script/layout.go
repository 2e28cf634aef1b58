package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/scriptgen"
)

const indentUnit = "    "

// Render produces the final script text for the given dialect. The first
// call finalizes the model; rendering itself never mutates it, so repeated
// calls are valid and yield byte-identical output.
//
// Render fails fast on the first construction error recorded by the builder
// and on any symbolic reference that does not resolve in this script's
// registry.
func (b *Builder) Render(d Dialect) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.finalized = true
	p := &printer{d: d, reg: b.reg}
	if len(b.header) > 0 {
		p.emit(0, d.BlockCommentOpen())
		for _, l := range b.header {
			p.emit(0, d.BlockCommentLine(l))
		}
		p.emit(0, d.BlockCommentClose())
	}
	if err := p.statements(b.topLevel(), 0, len(b.header) > 0); err != nil {
		return "", err
	}
	if len(p.lines) == 0 {
		return "", nil
	}
	return strings.Join(p.lines, "\n") + "\n", nil
}

// topLevel assembles the finalized top-level statement sequence: the
// section containers at their fixed slots, then the body in call order,
// then the merged per-type task blocks, then the per-instance ones. Empty
// sections are omitted. The slice is rebuilt on every render so that
// rendering stays pure.
func (b *Builder) topLevel() []Statement {
	var stmts []Statement
	if len(b.plugins) > 0 {
		stmts = append(stmts, sectionBlock(b, "plugins", b.plugins))
	}
	if len(b.repositories.stmts) > 0 {
		stmts = append(stmts, sectionBlock(b, "repositories", b.repositories.stmts))
	}
	if len(b.dependencies.stmts) > 0 {
		stmts = append(stmts, sectionBlock(b, "dependencies", b.dependencies.stmts))
	}
	stmts = append(stmts, b.body.stmts...)
	for _, key := range b.perType.order {
		stmts = append(stmts, &blockStmt{
			sel:  selector{kind: selTaskAll, typeName: b.perType.types[key]},
			body: b.perType.units[key],
		})
	}
	for _, key := range b.perInstance.order {
		stmts = append(stmts, &blockStmt{
			sel:  selector{kind: selTask, name: key, typeName: b.perInstance.types[key]},
			body: b.perInstance.units[key],
		})
	}
	return stmts
}

func sectionBlock(b *Builder, name string, stmts []Statement) Statement {
	return &blockStmt{
		sel:  selector{kind: selPlain, name: name},
		body: &BlockBuilder{script: b, stmts: stmts},
	}
}

// printer linearizes the statement tree into output lines, deciding blank
// lines and comment placement. It is the dialect-agnostic half of
// rendering; all token shapes come from the dialect.
type printer struct {
	d     Dialect
	reg   *registry
	lines []string
}

func (p *printer) emit(depth int, text string) {
	p.lines = append(p.lines, strings.Repeat(indentUnit, depth)+text)
}

func (p *printer) blank() {
	p.lines = append(p.lines, "")
}

// statements walks one scope's direct children in order. Blank-line rules:
// the first statement gets no leading blank (unless it follows the file
// header); a commented statement and the statement after it are separated;
// blocks are separated from their siblings on both sides; everything else
// renders compactly.
func (p *printer) statements(stmts []Statement, depth int, afterHeader bool) error {
	prevComment, prevBlock := false, false
	for i, s := range stmts {
		switch {
		case i == 0:
			if afterHeader {
				p.blank()
			}
		case s.comment() != "" || prevComment || s.isBlock() || prevBlock:
			p.blank()
		}
		if c := s.comment(); c != "" {
			for _, l := range strings.Split(c, "\n") {
				p.emit(depth, p.d.CommentLine(l))
			}
		}
		if err := p.statement(s, depth); err != nil {
			return err
		}
		prevComment, prevBlock = s.comment() != "", s.isBlock()
	}
	return nil
}

func (p *printer) statement(s Statement, depth int) error {
	switch st := s.(type) {
	case *assignStmt:
		target, err := p.expr(st.target)
		if err != nil {
			return err
		}
		value, err := p.expr(st.value)
		if err != nil {
			return err
		}
		p.emit(depth, p.d.Assignment(target, value, st.legacy))
	case *callStmt:
		var target string
		if st.target != nil {
			t, err := p.expr(st.target)
			if err != nil {
				return err
			}
			target = t
		}
		args, err := p.arguments(st.args)
		if err != nil {
			return err
		}
		p.emit(depth, p.d.StatementCall(target, st.name, args))
	case *pluginStmt:
		p.emit(depth, p.d.PluginDeclaration(st.id, st.version))
	case *blockStmt:
		p.emit(depth, p.d.BlockOpen(p.selector(st.sel)))
		if err := p.statements(st.body.stmts, depth+1, false); err != nil {
			return err
		}
		p.emit(depth, p.d.BlockClose())
	default:
		return fmt.Errorf("script: unknown statement type %T", s)
	}
	return nil
}

func (p *printer) selector(sel selector) string {
	switch sel.kind {
	case selTask:
		return p.d.TaskSelector(sel.name, sel.typeName)
	case selTaskAll:
		return p.d.TaskTypeSelector(sel.typeName)
	case selElement:
		return p.d.ContainerElementSelector(sel.container, sel.name, sel.typeName)
	default:
		return sel.name
	}
}

// arguments renders a call argument list. Ordered-mapping arguments expand
// into named arguments placed before all positional arguments, which keep
// their original relative order regardless of where the mapping appeared in
// the call.
func (p *printer) arguments(args []Expr) ([]string, error) {
	var named, positional []string
	for _, a := range args {
		if lit, ok := a.(Literal); ok {
			if entries, ok := lit.Value.([]MapEntry); ok {
				for _, e := range entries {
					v, err := p.value(e.Value)
					if err != nil {
						return nil, err
					}
					named = append(named, p.d.NamedArg(e.Key, v))
				}
				continue
			}
		}
		s, err := p.expr(a)
		if err != nil {
			return nil, err
		}
		positional = append(positional, s)
	}
	return append(named, positional...), nil
}

func (p *printer) expr(e Expr) (string, error) {
	switch x := e.(type) {
	case Literal:
		return p.literal(x.Value)
	case *MethodCall:
		args, err := p.arguments(x.Args)
		if err != nil {
			return "", err
		}
		call := x.Name + "(" + strings.Join(args, ", ") + ")"
		if x.Target != nil {
			t, err := p.expr(x.Target)
			if err != nil {
				return "", err
			}
			call = t + "." + call
		}
		return call, nil
	case *PropertyPath:
		if x.Receiver == nil {
			return x.Name, nil
		}
		r, err := p.expr(x.Receiver)
		if err != nil {
			return "", err
		}
		return r + "." + x.Name, nil
	case ElementRef:
		t, err := p.reg.resolve(x.id)
		if err != nil {
			return "", err
		}
		return t.path(), nil
	default:
		return "", fmt.Errorf("script: unknown expression type %T", e)
	}
}

// value renders a mapping value or list element, which may be either a
// plain literal value or a nested expression.
func (p *printer) value(v any) (string, error) {
	if e, ok := v.(Expr); ok {
		return p.expr(e)
	}
	return p.literal(v)
}

func (p *printer) literal(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return p.d.QuoteString(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case []MapEntry:
		entries := make([]string, len(t))
		for i, e := range t {
			v, err := p.value(e.Value)
			if err != nil {
				return "", err
			}
			entries[i] = p.d.MapEntry(e.Key, v)
		}
		return p.d.MapLiteral(entries), nil
	case []any:
		elems := make([]string, len(t))
		for i, e := range t {
			v, err := p.value(e)
			if err != nil {
				return "", err
			}
			elems[i] = v
		}
		return p.d.ListLiteral(elems), nil
	default:
		// Construction-time validation keeps this path unreachable for
		// builder-made statements.
		return "", scriptgen.NewInvalidLiteralError("", v)
	}
}
