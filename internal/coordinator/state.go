package coordinator

// State is the coordinator's processing lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is one observable lifecycle transition. Reason is set only for
// StateFailed. Succeeded and Failed are transient: each is followed
// immediately by an Idle status once the attempt settles.
type Status struct {
	State  State
	Reason string
}
