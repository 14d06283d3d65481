package phie

import "testing"

func TestUniversePutGet(t *testing.T) {
	u := NewUniverse()
	v := Vertex{Attrs: Attrs{"a0": AtomData(Datum(1))}}
	if err := u.Put(1, v); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := u.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Attrs["a0"].String() != v.Attrs["a0"].String() {
		t.Errorf("Get returned %v, want %v", got, v)
	}
}

func TestUniversePutDuplicate(t *testing.T) {
	u := NewUniverse()
	u.MustPut(1, Vertex{})
	if err := u.Put(1, Vertex{}); !AsKind(err, DuplicateVertex) {
		t.Errorf("Put error = %v, want DuplicateVertex", err)
	}
}

func TestUniverseGetMissing(t *testing.T) {
	u := NewUniverse()
	if _, err := u.Get(42); !AsKind(err, MissingVertex) {
		t.Errorf("Get on empty Universe = %v, want MissingVertex", err)
	}
}

func TestUniverseMustPutPanics(t *testing.T) {
	u := NewUniverse()
	u.MustPut(1, Vertex{})
	defer func() {
		if recover() == nil {
			t.Fatal("MustPut over an existing id should panic")
		}
	}()
	u.MustPut(1, Vertex{})
}

func TestUniverseIDsSorted(t *testing.T) {
	u := NewUniverse()
	for _, id := range []VertexID{5, 1, 3} {
		u.MustPut(id, Vertex{})
	}
	ids := u.IDs()
	want := []VertexID{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
}
