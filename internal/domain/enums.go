package domain

// SolveState is the position of the solve driver's state machine.
type SolveState int

const (
	StateRunning   SolveState = iota // deduction is making progress
	StateStalled                     // a pass filled nothing; one guess pending
	StateDone                        // every cell filled
	StateAbandoned                   // stalled even after a guess; gave up
)

func (s SolveState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStalled:
		return "stalled"
	case StateDone:
		return "done"
	case StateAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Terminal reports whether the driver has stopped in this state.
func (s SolveState) Terminal() bool {
	return s == StateDone || s == StateAbandoned
}
