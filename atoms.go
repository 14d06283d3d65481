package phie

import (
	"errors"
	"fmt"
)

// AtomFunc is a built-in atom's implementation: given the evaluator driving
// the current dataization and the receiver's frame (the context its
// positional attributes resolve in), it produces a Datum or a vertex still
// to be dataized. An atom must never return an AtomOutcome itself; reduceOnce
// collapses any nested atom result before it gets there.
type AtomFunc func(e *evaluator, recv *Frame) (Outcome, error)

var atomRegistry map[string]AtomFunc

func init() {
	atomRegistry = map[string]AtomFunc{
		"int-add":  atomIntAdd,
		"int-neg":  atomIntNeg,
		"int-sub":  atomIntSub,
		"int-div":  atomIntDiv,
		"int-less": atomIntLess,
		"int-eq":   atomIntEq,
		"if":       atomIf,
		"write":    atomWrite,
	}
}

func atomIntAdd(e *evaluator, recv *Frame) (Outcome, error) {
	a, b, err := e.pair(recv)
	if err != nil {
		return Outcome{}, err
	}
	return DatumOutcome(a + b), nil
}

func atomIntSub(e *evaluator, recv *Frame) (Outcome, error) {
	a, b, err := e.pair(recv)
	if err != nil {
		return Outcome{}, err
	}
	return DatumOutcome(a - b), nil
}

func atomIntNeg(e *evaluator, recv *Frame) (Outcome, error) {
	a, err := e.arg(recv, 0)
	if err != nil {
		return Outcome{}, err
	}
	return DatumOutcome(Datum(-int64(a))), nil
}

// atomIntDiv raises DivisionByZero on a zero divisor rather than panicking,
// since the int64 division below would otherwise crash the process the way
// the reference implementation's own division can.
func atomIntDiv(e *evaluator, recv *Frame) (Outcome, error) {
	a, b, err := e.pair(recv)
	if err != nil {
		return Outcome{}, err
	}
	if b == 0 {
		return Outcome{}, newError(DivisionByZero, nil, nil)
	}
	return DatumOutcome(Datum(int64(a) / int64(b))), nil
}

func atomIntLess(e *evaluator, recv *Frame) (Outcome, error) {
	a, b, err := e.pair(recv)
	if err != nil {
		return Outcome{}, err
	}
	return DatumOutcome(boolDatum(int64(a) < int64(b))), nil
}

func atomIntEq(e *evaluator, recv *Frame) (Outcome, error) {
	a, b, err := e.pair(recv)
	if err != nil {
		return Outcome{}, err
	}
	return DatumOutcome(boolDatum(a == b)), nil
}

// atomIf is lazy: only the selected branch is ever resolved, and reduceOnce
// stops at the first vertex it lands on rather than dataizing it, so the
// branch isn't evaluated a second time when the caller's own dataize loop
// picks it up.
func atomIf(e *evaluator, recv *Frame) (Outcome, error) {
	cond, err := e.arg(recv, 0)
	if err != nil {
		return Outcome{}, err
	}
	branch := 1
	if cond == 0 {
		branch = 2
	}
	outcome, err := e.u.ResolveAttr(recv, PositionalName(branch))
	if err != nil {
		return Outcome{}, wrapArity(err)
	}
	return e.reduceOnce(outcome)
}

// atomWrite dataizes its argument, forwards it to the configured Sink if
// any, and returns it unchanged, so write(x) behaves as the identity of x
// for whatever consumes its result.
func atomWrite(e *evaluator, recv *Frame) (Outcome, error) {
	a, err := e.arg(recv, 0)
	if err != nil {
		return Outcome{}, err
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.Emit(a)
	}
	return DatumOutcome(a), nil
}

// pair reads the standard two-argument (a0, a1) shape shared by the
// arithmetic and comparison atoms.
func (e *evaluator) pair(recv *Frame) (Datum, Datum, error) {
	a, err := e.arg(recv, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := e.arg(recv, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func boolDatum(v bool) Datum {
	if v {
		return 1
	}
	return 0
}

// wrapArity reclassifies a missing positional attribute as AtomArity: the
// receiver itself was invoked without enough arguments.
func wrapArity(err error) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Kind == AttributeNotFound {
		return &Error{Kind: AtomArity, Trail: pe.Trail}
	}
	return err
}

// wrapType reclassifies an argument that dataizes to AttributeNotFound (an
// object with neither phi nor delta/lambda: nothing groundable to a word) as
// AtomTypeError: the argument was structurally the wrong kind of thing.
func wrapType(err error) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Kind == AttributeNotFound {
		return &Error{Kind: AtomTypeError, Trail: pe.Trail}
	}
	return err
}

func unknownAtom(name string) error {
	return newError(AtomTypeError, nil, fmt.Errorf("unknown atom %q", name))
}
