package editor

// InputKind tells the session what a Sequence needs next.
type InputKind int

const (
	// InputRead asks for one line for StateInput.Key.
	InputRead InputKind = iota

	// InputInterrupted means the session was aborted.
	InputInterrupted

	// InputFinished means every field was answered and the record can be built.
	InputFinished
)

func (k InputKind) String() string {
	switch k {
	case InputRead:
		return "read"
	case InputInterrupted:
		return "interrupted"
	case InputFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// StateInput is what the Sequence reports for its current state.
type StateInput[K any] struct {
	Kind    InputKind
	Key     K
	Default DefaultValue

	// Problem is the diagnostic of the last rejected answer for Key. It is
	// set by Reject and cleared by any transition.
	Problem error
}

// Defaults supplies the current value of a field so a revisited prompt can
// offer it again.
type Defaults[K any] interface {
	Current(key K) (string, bool)
}

const (
	posInterrupted = -1
	posFinished    = -2
)

// Sequence is the cursor over an ordered list of fields.
//
// Its states are one per field plus Interrupted and Finished. The zero
// position is the first field. A Sequence over an empty order starts
// Finished.
type Sequence[K any] struct {
	order    []K
	defaults Defaults[K]
	pos      int
	problem  error
}

// NewSequence creates a Sequence positioned on the first field of order.
// defaults may be nil, in which case every prompt starts empty.
func NewSequence[K any](order []K, defaults Defaults[K]) *Sequence[K] {
	s := &Sequence[K]{
		order:    append([]K(nil), order...),
		defaults: defaults,
	}
	if len(s.order) == 0 {
		s.pos = posFinished
	}
	return s
}

// Input reports what the session should do next.
func (s *Sequence[K]) Input() StateInput[K] {
	switch s.pos {
	case posInterrupted:
		return StateInput[K]{Kind: InputInterrupted}
	case posFinished:
		return StateInput[K]{Kind: InputFinished}
	}

	key := s.order[s.pos]
	var hint DefaultValue
	if s.defaults != nil {
		hint = DefaultFrom(s.defaults.Current(key))
	}
	return StateInput[K]{
		Kind:    InputRead,
		Key:     key,
		Default: hint,
		Problem: s.problem,
	}
}

// Next moves to the following field, or to Finished after the last one.
// It does nothing once the sequence is Interrupted or Finished.
func (s *Sequence[K]) Next() {
	if s.pos < 0 {
		return
	}
	s.problem = nil
	if s.pos == len(s.order)-1 {
		s.pos = posFinished
		return
	}
	s.pos++
}

// Prev moves to the previous field and stays on the first one.
// From Interrupted it restarts at the first field; from Finished it returns
// to the last field for review.
func (s *Sequence[K]) Prev() {
	s.problem = nil
	if len(s.order) == 0 {
		s.pos = posFinished
		return
	}
	switch {
	case s.pos == posInterrupted:
		s.pos = 0
	case s.pos == posFinished:
		s.pos = len(s.order) - 1
	case s.pos > 0:
		s.pos--
	}
}

// Interrupt moves to Interrupted from any state.
func (s *Sequence[K]) Interrupt() {
	s.problem = nil
	s.pos = posInterrupted
}

// Finish moves to Finished from any state.
func (s *Sequence[K]) Finish() {
	s.problem = nil
	s.pos = posFinished
}

// Reject keeps the cursor on the current field and attaches err to it, so
// the next Input reports the problem alongside the same prompt.
func (s *Sequence[K]) Reject(err error) {
	if s.pos < 0 {
		return
	}
	s.problem = err
}

// Position returns the index of the current field, or -1 when the sequence
// is Interrupted or Finished.
func (s *Sequence[K]) Position() int {
	if s.pos < 0 {
		return -1
	}
	return s.pos
}
