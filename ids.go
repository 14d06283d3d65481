package phie

import "fmt"

// VertexID is a vertex identifier: a small non-negative integer assigned at
// graph-construction time and stable for the life of a Universe.
type VertexID int

// String renders a vertex id the way 𝜑-calculus surface syntax spells it,
// e.g. "ν13".
func (id VertexID) String() string {
	return fmt.Sprintf("ν%d", int(id))
}

// Datum is a primitive machine word, the leaf value dataization produces.
type Datum uint64

// NewDatum returns a pointer to a Datum holding w, suitable for assignment to
// Vertex.Delta.
func NewDatum(w uint64) *Datum {
	d := Datum(w)
	return &d
}

// Special attribute names, per the data model's "special" category.
const (
	Phi    = "phi"
	Delta  = "delta"
	Lambda = "lambda"
	Rho    = "rho"
	Sigma  = "sigma"
)

// IsPositional reports whether name is a positional attribute name of the
// form "a0", "a1", …, returning its index. No other code in this module
// calls it; atoms build their argument names with PositionalName.
func IsPositional(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'a' {
		return 0, false
	}
	n := 0
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// PositionalName returns the attribute name for positional argument i, e.g.
// PositionalName(0) is "a0".
func PositionalName(i int) string {
	return fmt.Sprintf("a%d", i)
}
