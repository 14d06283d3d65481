package phie

import "testing"

func dataizeAtom(t *testing.T, lambda string, args ...Datum) Datum {
	t.Helper()
	u := NewUniverse()
	attrs := Attrs{}
	for i, a := range args {
		attrs[PositionalName(i)] = AtomData(a)
	}
	u.MustPut(0, Vertex{Lambda: lambda, Attrs: attrs})
	word, _, err := Dataize(u, DefaultConfig())
	if err != nil {
		t.Fatalf("Dataize(%s): %v", lambda, err)
	}
	return word
}

func TestAtomIntAdd(t *testing.T) {
	if got := dataizeAtom(t, "int-add", 3, 4); got != 7 {
		t.Errorf("int-add(3, 4) = %d, want 7", got)
	}
}

func TestAtomIntSub(t *testing.T) {
	if got := dataizeAtom(t, "int-sub", 10, 3); got != 7 {
		t.Errorf("int-sub(10, 3) = %d, want 7", got)
	}
}

func TestAtomIntNeg(t *testing.T) {
	if got := dataizeAtom(t, "int-neg", 7); int64(got) != -7 {
		t.Errorf("int-neg(7) = %d, want -7", int64(got))
	}
	negSeven := int64(-7)
	if got := dataizeAtom(t, "int-neg", Datum(uint64(negSeven))); int64(got) != 7 {
		t.Errorf("int-neg(-7) = %d, want 7", int64(got))
	}
}

func TestAtomIntDiv(t *testing.T) {
	if got := dataizeAtom(t, "int-div", 10, 3); int64(got) != 3 {
		t.Errorf("int-div(10, 3) = %d, want 3", int64(got))
	}
}

func TestAtomIntDivByZero(t *testing.T) {
	u := NewUniverse()
	u.MustPut(0, Vertex{Lambda: "int-div", Attrs: Attrs{
		"a0": AtomData(10),
		"a1": AtomData(0),
	}})
	_, _, err := Dataize(u, DefaultConfig())
	if !AsKind(err, DivisionByZero) {
		t.Errorf("err = %v, want DivisionByZero", err)
	}
}

func TestAtomIntLess(t *testing.T) {
	if got := dataizeAtom(t, "int-less", 3, 4); got != 1 {
		t.Errorf("int-less(3, 4) = %d, want 1", got)
	}
	if got := dataizeAtom(t, "int-less", 4, 3); got != 0 {
		t.Errorf("int-less(4, 3) = %d, want 0", got)
	}
}

func TestAtomIntEq(t *testing.T) {
	if got := dataizeAtom(t, "int-eq", 5, 5); got != 1 {
		t.Errorf("int-eq(5, 5) = %d, want 1", got)
	}
	if got := dataizeAtom(t, "int-eq", 5, 6); got != 0 {
		t.Errorf("int-eq(5, 6) = %d, want 0", got)
	}
}

// TestAtomIfLazy checks that if never dataizes the branch it doesn't select:
// vertex 2, the unselected else-branch, has no phi/delta/lambda and would
// fail resolution the moment anything tried to dataize it.
func TestAtomIfLazy(t *testing.T) {
	u := NewUniverse()
	u.MustPut(0, Vertex{Lambda: "if", Attrs: Attrs{
		"a0": AtomData(1),
		"a1": Locate(AtVertex(1)),
		"a2": Locate(AtVertex(2)),
	}})
	d := Datum(5)
	u.MustPut(1, Vertex{Delta: &d})
	u.MustPut(2, Vertex{})

	word, _, err := Dataize(u, DefaultConfig())
	if err != nil {
		t.Fatalf("Dataize: %v", err)
	}
	if word != 5 {
		t.Errorf("word = %d, want 5", word)
	}
}

// TestAtomIfElseBranch checks the mirror case: a false condition selects a2
// and the untouched a1 may be anything, including a vertex that would fail.
func TestAtomIfElseBranch(t *testing.T) {
	u := NewUniverse()
	u.MustPut(0, Vertex{Lambda: "if", Attrs: Attrs{
		"a0": AtomData(0),
		"a1": Locate(AtVertex(1)),
		"a2": Locate(AtVertex(2)),
	}})
	u.MustPut(1, Vertex{})
	d := Datum(8)
	u.MustPut(2, Vertex{Delta: &d})

	word, _, err := Dataize(u, DefaultConfig())
	if err != nil {
		t.Fatalf("Dataize: %v", err)
	}
	if word != 8 {
		t.Errorf("word = %d, want 8", word)
	}
}

// TestAtomWrite checks that write forwards its argument to the configured
// Sink and also returns it as its own value.
func TestAtomWrite(t *testing.T) {
	u := NewUniverse()
	u.MustPut(0, Vertex{Lambda: "write", Attrs: Attrs{
		"a0": AtomData(99),
	}})

	rec := &RecorderSink{}
	cfg := DefaultConfig()
	cfg.Sink = rec
	word, _, err := Dataize(u, cfg)
	if err != nil {
		t.Fatalf("Dataize: %v", err)
	}
	if word != 99 {
		t.Errorf("word = %d, want 99", word)
	}
	if len(rec.Words) != 1 || rec.Words[0] != 99 {
		t.Errorf("recorded words = %v, want [99]", rec.Words)
	}
}

// TestAtomWriteNoSink checks that write tolerates a nil Sink.
func TestAtomWriteNoSink(t *testing.T) {
	if got := dataizeAtom(t, "write", 3); got != 3 {
		t.Errorf("write(3) = %d, want 3", got)
	}
}

func TestUnknownAtom(t *testing.T) {
	u := NewUniverse()
	u.MustPut(0, Vertex{Lambda: "no-such-atom"})

	_, _, err := Dataize(u, DefaultConfig())
	if !AsKind(err, AtomTypeError) {
		t.Errorf("err = %v, want AtomTypeError", err)
	}
}
