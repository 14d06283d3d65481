// Package universetest provides utilities for testing phie Universes, in
// the same spirit as the teacher's testutils package.
package universetest

import (
	"testing"

	"github.com/objectionary/phie"
)

// MustUniverse builds a Universe from a fixed id->vertex mapping, failing
// the test immediately on a duplicate id rather than panicking deep inside
// a table-driven test body.
func MustUniverse(t *testing.T, vertices map[phie.VertexID]phie.Vertex) *phie.Universe {
	t.Helper()
	u := phie.NewUniverse()
	for id, v := range vertices {
		if err := u.Put(id, v); err != nil {
			t.Fatalf("MustUniverse: put ν%d: %v", id, err)
		}
	}
	return u
}

// CountingSink wraps another Sink and counts how many words pass through
// it, for tests asserting on write's call count without caring about the
// values themselves.
type CountingSink struct {
	Sink  phie.Sink
	Calls int
}

// Emit implements phie.Sink.
func (s *CountingSink) Emit(d phie.Datum) {
	s.Calls++
	if s.Sink != nil {
		s.Sink.Emit(d)
	}
}

// CheckKind is a testing helper that fails the test unless err is a
// *phie.Error of the given Kind.
func CheckKind(t *testing.T, err error, want phie.Kind) {
	t.Helper()
	if !phie.AsKind(err, want) {
		t.Fatalf("err = %v, want Kind %s", err, want)
	}
}

// CheckWord is a testing helper that fails the test unless a Dataize run
// succeeded and produced want.
func CheckWord(t *testing.T, u *phie.Universe, cfg phie.Config, want phie.Datum) {
	t.Helper()
	word, _, err := phie.Dataize(u, cfg)
	if err != nil {
		t.Fatalf("Dataize: %v", err)
	}
	if word != want {
		t.Errorf("word = %d, want %d", word, want)
	}
}
