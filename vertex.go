package phie

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Attrs maps attribute names to their bodies: phi, rho/sigma tie-breaks
// aside, and the positional/labelled attributes a vertex carries.
type Attrs map[string]Body

// Vertex is one graph node: a mapping from attribute name to attribute body,
// plus an optional primitive datum or atom tag pulled out into dedicated
// fields, mirroring how the teacher's Object keeps Value and Tag separate
// from its generic slot map instead of stuffing everything into one
// interface{}-typed bag.
//
// Delta and Lambda are mutually exclusive; a vertex with either is a leaf of
// resolution.
type Vertex struct {
	Attrs  Attrs
	Delta  *Datum
	Lambda string
}

// IsLeaf reports whether the vertex is a primitive datum or an atom, and so
// terminates resolution rather than requiring a further phi lookup.
func (v Vertex) IsLeaf() bool {
	return v.Delta != nil || v.Lambda != ""
}

// Attr returns the body of the named attribute and whether it is present.
// "phi" is never satisfied by Delta or Lambda; those are consulted directly
// by the resolver's phi-decoration tie-break.
func (v Vertex) Attr(name string) (Body, bool) {
	b, ok := v.Attrs[name]
	return b, ok
}

// Names returns the vertex's attribute names in a deterministic order
// (delta/lambda first if present, then the rest sorted), suitable for debug
// dumps and golden test output. Attribute ordering is otherwise semantically
// irrelevant to resolution.
func (v Vertex) Names() []string {
	names := make([]string, 0, len(v.Attrs)+1)
	for n := range v.Attrs {
		names = append(names, n)
	}
	slices.Sort(names)
	if v.Delta != nil {
		names = append([]string{Delta}, names...)
	}
	if v.Lambda != "" {
		names = append([]string{Lambda}, names...)
	}
	return names
}

// String renders the vertex the way 𝜑-calculus surface syntax would, sorted
// for determinism.
func (v Vertex) String() string {
	parts := make([]string, 0, len(v.Attrs)+1)
	if v.Delta != nil {
		parts = append(parts, fmt.Sprintf("Δ↦0x%04X", uint64(*v.Delta)))
	}
	if v.Lambda != "" {
		parts = append(parts, "λ↦"+v.Lambda)
	}
	names := make([]string, 0, len(v.Attrs))
	for n := range v.Attrs {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		parts = append(parts, n+"↦"+v.Attrs[n].String())
	}
	return "⟦" + strings.Join(parts, ", ") + "⟧"
}
