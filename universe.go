package phie

import "golang.org/x/exp/slices"

// Universe is the object graph: a total mapping from vertex id to vertex,
// with a designated root. The Universe does not itself interpret attribute
// bodies; it is a flat indexed container over which the resolver and
// Dataizer operate.
type Universe struct {
	vertices map[VertexID]Vertex
	root     VertexID
}

// NewUniverse returns an empty Universe whose root is vertex 0.
func NewUniverse() *Universe {
	return &Universe{vertices: make(map[VertexID]Vertex), root: 0}
}

// Root returns the Universe's designated root id, conventionally 0.
func (u *Universe) Root() VertexID {
	return u.root
}

// Put inserts vertex at id. It fails with a DuplicateVertex error if id is
// already present; vertices are immutable after insertion.
func (u *Universe) Put(id VertexID, v Vertex) error {
	if _, ok := u.vertices[id]; ok {
		return newError(DuplicateVertex, nil, nil)
	}
	u.vertices[id] = v
	return nil
}

// MustPut inserts vertex at id and panics if id is already present. It is a
// convenience for programmatic graph construction, the same "just do it"
// shape as the teacher's CoreInstall layered over a checked SetSlot.
func (u *Universe) MustPut(id VertexID, v Vertex) {
	if err := u.Put(id, v); err != nil {
		panic(err)
	}
}

// Get returns the vertex at id, failing with a MissingVertex error if absent.
func (u *Universe) Get(id VertexID) (Vertex, error) {
	v, ok := u.vertices[id]
	if !ok {
		return Vertex{}, newError(MissingVertex, nil, nil)
	}
	return v, nil
}

// Size returns the number of vertices in the Universe.
func (u *Universe) Size() int {
	return len(u.vertices)
}

// IDs returns the Universe's vertex ids in sorted order, for debug dumps and
// deterministic test iteration.
func (u *Universe) IDs() []VertexID {
	ids := make([]VertexID, 0, len(u.vertices))
	for id := range u.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
