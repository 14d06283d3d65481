package phie

import (
	"fmt"
	"strings"
)

// Body is the attribute body sum type: an attribute holds primitive data, an
// atom name, a locator chain, or a copy — never more than one.
type Body interface {
	isBody()
	String() string
}

// dataBody is a primitive machine word.
type dataBody struct{ Word Datum }

func (dataBody) isBody() {}
func (b dataBody) String() string {
	return fmt.Sprintf("Δ↦0x%04X", uint64(b.Word))
}

// AtomData wraps a Datum as an attribute Body, e.g. a literal positional
// argument of an atom. A vertex's own primitive value goes in Vertex.Delta
// instead.
func AtomData(w Datum) Body { return dataBody{Word: w} }

// atomBody names a built-in atom from the registry.
type atomBody struct{ Name string }

func (atomBody) isBody() {}
func (b atomBody) String() string { return "λ↦" + b.Name }

// NewAtom returns a Body naming a built-in atom. Most callers instead set
// Vertex.Lambda directly.
func NewAtom(name string) Body { return atomBody{Name: name} }

// Step is one element of a locator's attribute-name chain, optionally marked
// with a copy-binding suffix.
type Step struct {
	Name string
	Bind *Anchor
}

// Name is a plain chain step with no copy-binding suffix.
func Name(n string) Step { return Step{Name: n} }

// Bound is a chain step marked with a copy-binding suffix: after this step
// resolves, the resulting vertex is copied with its outer anchor rebound to
// bind.
func Bound(n string, bind Anchor) Step {
	b := bind
	return Step{Name: n, Bind: &b}
}

func (s Step) String() string {
	if s.Bind == nil {
		return s.Name
	}
	return s.Name + "(" + s.Bind.String() + ")"
}

// locatorBody is an anchor plus a chain of attribute names.
type locatorBody struct {
	Anchor Anchor
	Chain  []Step
}

func (locatorBody) isBody() {}
func (b locatorBody) String() string {
	parts := make([]string, 0, len(b.Chain)+1)
	parts = append(parts, b.Anchor.String())
	for _, s := range b.Chain {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ".")
}

// Locate builds a locator attribute body: an anchor plus an ordered chain of
// attribute-name steps. A zero-length chain denotes a bare reference to the
// vertex at anchor.
func Locate(anchor Anchor, steps ...Step) Body {
	return locatorBody{Anchor: anchor, Chain: steps}
}

// copyBody is a vertex id plus a binding anchor: sugar for a bare locator of
// length one with a copy-binding suffix.
type copyBody struct {
	Target VertexID
	Bind   Anchor
}

func (copyBody) isBody() {}
func (b copyBody) String() string {
	return b.Target.String() + "(" + b.Bind.String() + ")"
}

// Copy builds an attribute body that, when resolved, materializes a
// transient copy of the vertex target with its outer anchor bound to bind.
func Copy(target VertexID, bind Anchor) Body {
	return copyBody{Target: target, Bind: bind}
}
