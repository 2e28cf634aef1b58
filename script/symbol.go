package script

import (
	"github.com/google/uuid"

	"github.com/syssam/scriptgen"
)

// Symbol identifies one declared container element. It is handed out by
// ContainerElement and can be turned into an expression with Ref. A Symbol
// resolves at any later render, independent of where the reference appears,
// provided the element was declared in the same script before Render is
// invoked.
type Symbol struct {
	id uuid.UUID
}

// symbolTarget is the resolved textual location of a container element.
type symbolTarget struct {
	container string
	element   string
}

// path returns the dotted reference form, containerPath.elementName.
func (t symbolTarget) path() string {
	if t.container == "" {
		return t.element
	}
	return t.container + "." + t.element
}

// registry maps opaque symbol handles to declared container elements.
// Each builder owns exactly one registry; symbols from one script do not
// resolve in another.
type registry struct {
	elements map[uuid.UUID]symbolTarget
}

func newRegistry() *registry {
	return &registry{elements: make(map[uuid.UUID]symbolTarget)}
}

// declare registers a container element and returns its handle.
// Two declarations with the same container/element pair produce two
// independent handles.
func (r *registry) declare(container, element string) Symbol {
	id := uuid.New()
	r.elements[id] = symbolTarget{container: container, element: element}
	return Symbol{id: id}
}

// resolve returns the textual location of the element behind id, or an
// UnresolvedReferenceError if the element was never declared here.
func (r *registry) resolve(id uuid.UUID) (symbolTarget, error) {
	t, ok := r.elements[id]
	if !ok {
		return symbolTarget{}, scriptgen.NewUnresolvedReferenceError(id.String())
	}
	return t, nil
}
