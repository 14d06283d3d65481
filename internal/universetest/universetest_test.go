package universetest

import (
	"testing"

	"github.com/objectionary/phie"
)

func TestMustUniverseAndCheckWord(t *testing.T) {
	d := phie.Datum(42)
	u := MustUniverse(t, map[phie.VertexID]phie.Vertex{
		0: {Delta: &d},
	})
	CheckWord(t, u, phie.DefaultConfig(), 42)
}

func TestCheckKind(t *testing.T) {
	u := MustUniverse(t, map[phie.VertexID]phie.Vertex{
		0: {},
	})
	_, _, err := phie.Dataize(u, phie.DefaultConfig())
	CheckKind(t, err, phie.AttributeNotFound)
}

func TestCountingSink(t *testing.T) {
	rec := &phie.RecorderSink{}
	counting := &CountingSink{Sink: rec}

	u := MustUniverse(t, map[phie.VertexID]phie.Vertex{
		0: {Lambda: "write", Attrs: phie.Attrs{"a0": phie.AtomData(7)}},
	})
	cfg := phie.DefaultConfig()
	cfg.Sink = counting
	CheckWord(t, u, cfg, 7)

	if counting.Calls != 1 {
		t.Errorf("Calls = %d, want 1", counting.Calls)
	}
	if len(rec.Words) != 1 || rec.Words[0] != 7 {
		t.Errorf("recorded words = %v, want [7]", rec.Words)
	}
}
