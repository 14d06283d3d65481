package phie

import "github.com/zephyrtronium/contains"

// ResolveAttr resolves the value of attribute name on the vertex at frame:
// the full path-resolution contract, applying phi-decoration, the rho/outer
// tie-break, copy-binding suffixes, and locator splicing along the way.
// It is the single entry point the Dataizer and every atom go through to
// read an attribute; a bare attribute lookup is just a one-step locator
// walk starting from ξ.
func (u *Universe) ResolveAttr(frame *Frame, name string) (Outcome, error) {
	return u.walkChain(frame, This(), []Step{{Name: name}}, newCycleGuard(), nil)
}

// newCycleGuard returns an empty set for tracking vertices visited during a
// single phi-decoration chase, the same contains.Set-backed shape the
// teacher uses to guard its own prototype-chain walks.
func newCycleGuard() *contains.Set {
	return &contains.Set{}
}

// walkChain resolves anchor, then applies chain to it one step at a time.
// It underlies both ResolveAttr and locatorBody resolution, since a stored
// Locator is exactly an anchor plus a chain evaluated relative to the frame
// that held it.
func (u *Universe) walkChain(base *Frame, anchor Anchor, chain []Step, seen *contains.Set, trail Trail) (Outcome, error) {
	cur := base.resolve(anchor)
	if cur == nil {
		return Outcome{}, newError(UnboundOuter, trail, nil)
	}
	if len(chain) == 0 {
		return u.terminal(cur, trail)
	}
	for i, step := range chain {
		last := i == len(chain)-1
		outcome, next, err := u.applyStep(cur, step.Name, seen, trail)
		if err != nil {
			return Outcome{}, err
		}
		if next == nil {
			if !last {
				if outcome.IsDatum() {
					return Outcome{}, newError(DataNotObject, trail, nil)
				}
				return Outcome{}, newError(AtomNotObject, trail, nil)
			}
			return outcome, nil
		}
		if step.Bind != nil {
			next = cur.child(next.Vertex, step.Bind)
		}
		cur = next
		if last {
			return u.terminal(cur, trail)
		}
	}
	panic("phie: unreachable")
}

// terminal returns a VertexOutcome for cur, checking that cur's vertex was
// actually Put into the Universe first. A locator or copy that ends on an
// absent vertex fails right here, with the trail that led to it, instead of
// succeeding silently and surfacing MissingVertex later under a fresh
// ResolveAttr call whose trail starts over from nothing.
func (u *Universe) terminal(cur *Frame, trail Trail) (Outcome, error) {
	if _, err := u.Get(cur.Vertex); err != nil {
		return Outcome{}, withFullTrail(err, trail)
	}
	return VertexOutcome(cur), nil
}

// applyStep looks up name on the vertex at cur, applying the rho tie-break
// and phi-decoration. It returns either a terminal outcome (next == nil) or
// the frame the chain should continue from.
func (u *Universe) applyStep(cur *Frame, name string, seen *contains.Set, trail Trail) (Outcome, *Frame, error) {
	// rho and sigma are both raw anchor reads, not attribute lookups: neither
	// goes through v.Attr or falls back to phi-decoration on a miss.
	if name == Rho || name == Sigma {
		if cur.Outer == nil {
			return Outcome{}, nil, newError(UnboundOuter, trail, nil)
		}
		return Outcome{}, cur.Outer, nil
	}

	v, err := u.Get(cur.Vertex)
	if err != nil {
		return Outcome{}, nil, withTrail(err, Visit{cur.Vertex, name})
	}
	vis := Visit{cur.Vertex, name}

	if name == Phi {
		if body, ok := v.Attr(Phi); ok {
			if !seen.Add(uintptr(cur.Vertex)) {
				return Outcome{}, nil, newError(PhiCycle, append(trail, vis), nil)
			}
			return u.settle(cur, body, seen, append(trail, vis))
		}
		if v.Delta != nil {
			return DatumOutcome(*v.Delta), nil, nil
		}
		if v.Lambda != "" {
			return AtomOutcome(v.Lambda, cur), nil, nil
		}
		return Outcome{}, nil, newError(AttributeNotFound, append(trail, vis), nil)
	}

	if body, ok := v.Attr(name); ok {
		return u.settle(cur, body, seen, append(trail, vis))
	}

	// phi-decoration: retry name on the vertex phi resolves to.
	if phiBody, ok := v.Attr(Phi); ok {
		phiVis := Visit{cur.Vertex, Phi}
		if !seen.Add(uintptr(cur.Vertex)) {
			return Outcome{}, nil, newError(PhiCycle, append(trail, phiVis), nil)
		}
		outcome, next, err := u.settle(cur, phiBody, seen, append(trail, phiVis))
		if err != nil {
			return Outcome{}, nil, err
		}
		if next != nil {
			return u.applyStep(next, name, seen, trail)
		}
		if outcome.IsDatum() {
			return Outcome{}, nil, newError(DataNotObject, append(trail, vis), nil)
		}
		return Outcome{}, nil, newError(AtomNotObject, append(trail, vis), nil)
	}

	return Outcome{}, nil, newError(AttributeNotFound, append(trail, vis), nil)
}

// settle resolves an attribute body found at cur to an Outcome, translating
// a Vertex-kind result into the (Outcome{}, next) shape applyStep and
// walkChain thread through their loops.
func (u *Universe) settle(cur *Frame, body Body, seen *contains.Set, trail Trail) (Outcome, *Frame, error) {
	switch b := body.(type) {
	case dataBody:
		return DatumOutcome(b.Word), nil, nil
	case atomBody:
		return AtomOutcome(b.Name, cur), nil, nil
	case copyBody:
		nf := cur.child(b.Target, &b.Bind)
		return Outcome{}, nf, nil
	case locatorBody:
		outcome, err := u.walkChain(cur, b.Anchor, b.Chain, seen, trail)
		if err != nil {
			return Outcome{}, nil, err
		}
		if outcome.IsVertex() {
			return Outcome{}, outcome.Frame, nil
		}
		return outcome, nil, nil
	default:
		panic("phie: unknown attribute body type")
	}
}
