package phie

import "fmt"

// AnchorKind identifies which of the four anchor forms an Anchor holds.
type AnchorKind int

// Anchor kinds, per the data model's locator anchors.
const (
	// AnchorThis is ξ, the vertex currently being evaluated.
	AnchorThis AnchorKind = iota
	// AnchorOuter is 𝜋, the vertex the current copy was spawned from.
	AnchorOuter
	// AnchorRoot is Φ, the Universe's root.
	AnchorRoot
	// AnchorVertex is an absolute νN reference.
	AnchorVertex
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorThis:
		return "ξ"
	case AnchorOuter:
		return "𝜋"
	case AnchorRoot:
		return "Φ"
	case AnchorVertex:
		return "ν"
	default:
		return fmt.Sprintf("AnchorKind(%d)", int(k))
	}
}

// Anchor is the starting point of a locator expression: ξ (this), 𝜋 (outer),
// Φ (root), or an absolute vertex id.
type Anchor struct {
	Kind AnchorKind
	ID   VertexID // meaningful only when Kind == AnchorVertex
}

// This returns the ξ anchor.
func This() Anchor { return Anchor{Kind: AnchorThis} }

// Outer returns the 𝜋 anchor.
func Outer() Anchor { return Anchor{Kind: AnchorOuter} }

// RootAnchor returns the Φ anchor.
func RootAnchor() Anchor { return Anchor{Kind: AnchorRoot} }

// AtVertex returns an absolute νN anchor.
func AtVertex(id VertexID) Anchor {
	return Anchor{Kind: AnchorVertex, ID: id}
}

func (a Anchor) String() string {
	if a.Kind == AnchorVertex {
		return a.ID.String()
	}
	return a.Kind.String()
}

// Frame is the evaluation context for a single vertex instance: the vertex
// whose attributes are being read, the frame it was spawned from (its 𝜋), and
// the Universe's root. Frames form a chain threaded through nested copies, so
// that a locator like "𝜋.𝜋.a0" can walk more than one level up by following
// Outer pointers, exactly as a chain of rho lookups would in the surface
// syntax.
type Frame struct {
	Vertex VertexID
	Outer  *Frame
	Root   VertexID
}

// NewRootFrame returns the initial evaluation frame the Dataizer starts from:
// this, outer, and root all equal to the Universe's root.
func NewRootFrame(root VertexID) *Frame {
	f := &Frame{Vertex: root, Root: root}
	f.Outer = f
	return f
}

// child returns the frame for a vertex reached from f, with outer bound
// according to bind. A nil bind (a bare reference with no copy-binding
// suffix) leaves outer unbound: nothing has established a parent link for a
// vertex nobody has copied.
func (f *Frame) child(vertex VertexID, bind *Anchor) *Frame {
	nf := &Frame{Vertex: vertex, Root: f.Root}
	if bind == nil {
		return nf
	}
	nf.Outer = f.resolve(*bind)
	return nf
}

// resolve looks up the frame an anchor currently refers to. It returns nil
// for an outer anchor that was never bound.
func (f *Frame) resolve(a Anchor) *Frame {
	switch a.Kind {
	case AnchorThis:
		return f
	case AnchorOuter:
		return f.Outer
	case AnchorRoot:
		return &Frame{Vertex: f.Root, Root: f.Root}
	case AnchorVertex:
		return &Frame{Vertex: a.ID, Root: f.Root}
	default:
		panic(fmt.Sprintf("phie: unknown anchor kind %d", a.Kind))
	}
}
