package script

import (
	"strings"

	"github.com/google/uuid"
)

// Expr is a value-producing node usable as a call argument or an assigned
// value. Expressions are immutable once built; MethodCall and PropertyPath
// may nest other expressions arbitrarily.
type Expr interface {
	expr()
}

// Literal wraps a plain value. Supported shapes are strings, booleans,
// integers, floats, ordered mappings ([]MapEntry) and ordered lists ([]any).
// Mapping values and list elements may themselves be expressions.
type Literal struct {
	Value any
}

func (Literal) expr() {}

// MapEntry is one key/value pair of an ordered mapping. Keys render as bare
// identifiers in dialects that support them.
type MapEntry struct {
	Key   string
	Value any
}

// MethodCall is a method-invocation expression, e.g. uri('https://...').
// Target is optional; when set, the call renders against it with a dot.
type MethodCall struct {
	Target Expr
	Name   string
	Args   []Expr
}

func (*MethodCall) expr() {}

// PropertyPath is a dot-joined property access, e.g. libs.junit.
// A nil Receiver yields a bare identifier.
type PropertyPath struct {
	Receiver Expr
	Name     string
}

func (*PropertyPath) expr() {}

// ElementRef is a symbolic reference to a declared container element.
// It resolves through the owning builder's registry at render time.
type ElementRef struct {
	id uuid.UUID
}

func (ElementRef) expr() {}

// Lit returns a literal expression for v. If v is already an expression it
// is returned unchanged.
func Lit(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return Literal{Value: v}
}

// Pair returns one entry of an ordered mapping.
func Pair(key string, value any) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// Map returns an ordered-mapping literal preserving entry order.
func Map(entries ...MapEntry) Literal {
	return Literal{Value: entries}
}

// List returns an ordered-list literal.
func List(elems ...any) Literal {
	return Literal{Value: elems}
}

// Call returns a method-call expression. The name may be a dotted path
// ("tasks.register"); everything before the last segment becomes the call
// target. Non-expression arguments are wrapped as literals.
func Call(name string, args ...any) *MethodCall {
	target, short := splitTarget(name)
	return &MethodCall{Target: target, Name: short, Args: exprs(args)}
}

// CallOn returns a method-call expression against an explicit target.
func CallOn(target Expr, name string, args ...any) *MethodCall {
	return &MethodCall{Target: target, Name: name, Args: exprs(args)}
}

// Path returns a property-path expression for a dotted path such as
// "java.sourceCompatibility".
func Path(path string) Expr {
	var e Expr
	for _, seg := range strings.Split(path, ".") {
		e = &PropertyPath{Receiver: e, Name: seg}
	}
	return e
}

// Ref returns a symbolic reference to a declared container element.
// Rendering fails with an UnresolvedReferenceError if sym was not produced
// by the same script's ContainerElement call.
func Ref(sym Symbol) ElementRef {
	return ElementRef{id: sym.id}
}

func exprs(args []any) []Expr {
	out := make([]Expr, len(args))
	for i, a := range args {
		out[i] = Lit(a)
	}
	return out
}

// splitTarget splits a dotted call name into its receiver path and the
// final method name.
func splitTarget(name string) (Expr, string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return nil, name
	}
	return Path(name[:i]), name[i+1:]
}

// validValue reports whether v is a renderable literal value or expression.
// Mapping values and list elements are checked recursively.
func validValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case Literal:
		return validValue(t.Value)
	case []MapEntry:
		for _, e := range t {
			if !validValue(e.Value) {
				return false
			}
		}
		return true
	case []any:
		for _, e := range t {
			if !validValue(e) {
				return false
			}
		}
		return true
	case *MethodCall:
		for _, a := range t.Args {
			if !validValue(a) {
				return false
			}
		}
		return true
	case *PropertyPath, ElementRef:
		return true
	default:
		return false
	}
}
