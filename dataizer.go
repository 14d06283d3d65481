package phie

import "github.com/objectionary/phie/internal/telemetry"

// Config controls a single Dataize run.
type Config struct {
	// StepLimit caps the number of dataization/invocation cycles a run may
	// take before it fails with StepLimit. Zero means unlimited.
	StepLimit int
	// Sink receives every value the write atom emits, in evaluation order.
	// Nil discards them.
	Sink Sink
	// Logger, if set, receives a trace of the run's progress.
	Logger *telemetry.Logger
}

// DefaultConfig returns a Config with no step limit, no sink, and no logger.
func DefaultConfig() Config {
	return Config{}
}

// evaluator carries the mutable state of one Dataize run: the Universe it
// reads from, the run's Config, and the cycle counter both the top-level
// loop and every atom invocation advance.
type evaluator struct {
	u      *Universe
	cfg    Config
	cycles int
}

// Dataize reduces the Universe's root vertex to a primitive word, per the
// Resolving/Dataizing/Invoking state machine: repeatedly asking for phi,
// following vertex results, and invoking atoms, until a Datum falls out or
// an error or the step limit ends the run. It returns the word, the number
// of cycles taken, and any error.
func Dataize(u *Universe, cfg Config) (Datum, int, error) {
	e := &evaluator{u: u, cfg: cfg}
	log := cfg.Logger
	if log != nil {
		log.Debug("dataize start", telemetry.String("root", u.Root().String()))
	}
	d, err := e.dataize(NewRootFrame(u.Root()))
	if err != nil {
		if log != nil {
			log.Warn("dataize failed", telemetry.Int("cycles", e.cycles), telemetry.Err(err))
		}
		return 0, e.cycles, err
	}
	if log != nil {
		log.Info("dataize done", telemetry.Int("word", int(d)), telemetry.Int("cycles", e.cycles))
	}
	return d, e.cycles, nil
}

// dataize is the Dataizing state: ask frame's vertex for phi, then keep
// reducing whatever comes back until a Datum results.
func (e *evaluator) dataize(frame *Frame) (Datum, error) {
	if err := e.tick(); err != nil {
		return 0, err
	}
	outcome, err := e.u.ResolveAttr(frame, Phi)
	if err != nil {
		return 0, err
	}
	return e.dataizeOutcome(outcome)
}

// dataizeOutcome collapses an Outcome of any kind down to a Datum: an atom
// is invoked (Invoking state), and a vertex is dataized in turn (back to
// Resolving/Dataizing).
func (e *evaluator) dataizeOutcome(o Outcome) (Datum, error) {
	o, err := e.reduceOnce(o)
	if err != nil {
		return 0, err
	}
	switch {
	case o.IsDatum():
		return o.Datum, nil
	case o.IsVertex():
		return e.dataize(o.Frame)
	default:
		panic("phie: atom outcome survived reduceOnce")
	}
}

// reduceOnce invokes at most the atoms needed to turn o into a Datum-or-
// vertex outcome, without dataizing a resulting vertex further. Atoms like
// "if" use this to stay lazy in the branch they return.
func (e *evaluator) reduceOnce(o Outcome) (Outcome, error) {
	if !o.IsAtom() {
		return o, nil
	}
	fn, ok := atomRegistry[o.Atom]
	if !ok {
		return Outcome{}, unknownAtom(o.Atom)
	}
	if err := e.tick(); err != nil {
		return Outcome{}, err
	}
	res, err := fn(e, o.Frame)
	if err != nil {
		return Outcome{}, err
	}
	return e.reduceOnce(res)
}

// arg resolves and fully dataizes the i'th positional attribute of recv, the
// standard way an atom reads one of its own arguments.
func (e *evaluator) arg(recv *Frame, i int) (Datum, error) {
	outcome, err := e.u.ResolveAttr(recv, PositionalName(i))
	if err != nil {
		return 0, wrapArity(err)
	}
	d, err := e.dataizeOutcome(outcome)
	if err != nil {
		return 0, wrapType(err)
	}
	return d, nil
}

// tick advances the cycle counter and enforces StepLimit.
func (e *evaluator) tick() error {
	e.cycles++
	if e.cfg.StepLimit > 0 && e.cycles > e.cfg.StepLimit {
		return newError(StepLimit, nil, nil)
	}
	return nil
}
