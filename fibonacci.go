package phie

// Fibonacci builds a Universe that computes the n'th Fibonacci number via
// genuine recursive self-reference: a single small set of template vertices
// (the call frame, its body, the branch, and the two decrement atoms) is
// reused at every recursion depth through Copy, with only the outer anchor
// changing to point at that depth's argument holder. No vertex is ever
// constructed per recursion level; the illusion of unbounded depth comes
// entirely from the Frame chain built at resolution time.
//
// Vertex layout:
//
//	0 root   — phi delegates to vertex 1's "call"
//	1 arg    — the literal n, exposed as phi; carries "call" to invoke frame
//	2 frame  — a0 aliases its outer's phi (the argument); phi runs body;
//	           nm1/nm2 build fresh (n-1)/(n-2) argument holders
//	3 body   — delegates straight to the branch, one hop out
//	4 branch — if a0<2 return a0, else add(fib(n-1), fib(n-2))
//	5 less   — int-less(a0, 2)
//	6 add    — int-add(a0, a1), operands built via frame's nm1/nm2
//	7 sub1   — int-sub(a0, 1): a fresh n-1 holder, itself carrying "call"
//	8 sub2   — int-sub(a0, 2): a fresh n-2 holder, itself carrying "call"
func Fibonacci(n uint64) *Universe {
	const (
		root   VertexID = 0
		arg    VertexID = 1
		frame  VertexID = 2
		body   VertexID = 3
		branch VertexID = 4
		less   VertexID = 5
		add    VertexID = 6
		sub1   VertexID = 7
		sub2   VertexID = 8
	)

	u := NewUniverse()

	u.MustPut(root, Vertex{Attrs: Attrs{
		"n0": Copy(arg, This()),
		Phi:  Locate(This(), Name("n0"), Name("call")),
	}})

	n0 := Datum(n)
	u.MustPut(arg, Vertex{
		Delta: &n0,
		Attrs: Attrs{
			"call": Copy(frame, This()),
		},
	})

	u.MustPut(frame, Vertex{Attrs: Attrs{
		"a0":  Locate(Outer(), Name(Phi)),
		Phi:   Copy(body, This()),
		"nm1": Copy(sub1, Outer()),
		"nm2": Copy(sub2, Outer()),
	}})

	u.MustPut(body, Vertex{Attrs: Attrs{
		Phi: Copy(branch, Outer()),
	}})

	u.MustPut(branch, Vertex{Attrs: Attrs{
		"a0": Copy(less, Outer()),
		"a1": Locate(Outer(), Name("a0")),
		"a2": Copy(add, Outer()),
	}, Lambda: "if"})

	two := Datum(2)
	u.MustPut(less, Vertex{Lambda: "int-less", Attrs: Attrs{
		"a0": Locate(Outer(), Name("a0")),
		"a1": AtomData(two),
	}})

	u.MustPut(add, Vertex{Lambda: "int-add", Attrs: Attrs{
		"a0": Locate(Outer(), Name("nm1"), Name("call")),
		"a1": Locate(Outer(), Name("nm2"), Name("call")),
	}})

	one := Datum(1)
	u.MustPut(sub1, Vertex{Lambda: "int-sub", Attrs: Attrs{
		"a0":   Locate(Outer(), Name(Phi)),
		"a1":   AtomData(one),
		"call": Copy(frame, This()),
	}})

	u.MustPut(sub2, Vertex{Lambda: "int-sub", Attrs: Attrs{
		"a0":   Locate(Outer(), Name(Phi)),
		"a1":   AtomData(two),
		"call": Copy(frame, This()),
	}})

	return u
}
