/*
Package phie implements the dataization core of a small abstract processor
for a minimal object calculus (𝜑-calculus), the formal substrate of a
nominal object-oriented language.

𝜑-calculus programs are graphs of objects. Each object, called a vertex, is a
mapping from attribute names to attribute bodies. An attribute body is either
a primitive datum, a built-in atom, or a locator that describes how to reach
another vertex's value by walking a chain of attribute names from some
starting anchor. Dataization is the process of reducing such a graph to a
single machine word: starting at a distinguished root vertex, the evaluator
repeatedly resolves the root's phi ("value") attribute, descending into
whichever vertex that resolves to, until a primitive datum is produced.

Four attribute names are given special meaning beyond phi: delta holds a
primitive datum directly, lambda names a built-in atom, and rho and sigma
both read the outer anchor that copy-and-bind sets (sigma has no meaning
distinct from rho here). A chain of attribute names may additionally carry copy-binding
suffixes, instructing the resolver to copy the vertex reached at that step
and rebind its outer anchor before continuing.

A minimal, fixed set of atoms is provided: int-add, int-sub, int-less,
int-eq, if, and write, plus int-neg and int-div. New atoms can only be
added by extending the registry in atoms.go; there is no plugin mechanism.

To dataize a program:

	u := phie.NewUniverse()
	u.MustPut(0, phie.Vertex{Attrs: phie.Attrs{"phi": phie.Locate(phie.AtVertex(1))}})
	u.MustPut(1, phie.Vertex{Delta: phie.NewDatum(42)})
	word, cycles, err := phie.Dataize(u, phie.DefaultConfig())

The graph itself is constructed programmatically or by a collaborator that
parses 𝜑-calculus surface syntax; this package treats any such parser as an
external black box and never interprets text itself.
*/
package phie
