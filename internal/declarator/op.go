package declarator

// State is the state of a CRUD operation slot
type State int

const (
	// StateAbsent means the operation was not specified
	StateAbsent State = iota
	// StateDisabled means the operation was explicitly turned off
	StateDisabled
	// StateEnabled means the operation is configured
	StateEnabled
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDisabled:
		return "disabled"
	case StateEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Op is a three-state CRUD slot. The zero value is absent.
type Op[T any] struct {
	state State
	cfg   T
}

// Absent returns an unspecified operation
func Absent[T any]() Op[T] {
	return Op[T]{}
}

// Disabled returns an explicitly disabled operation
func Disabled[T any]() Op[T] {
	return Op[T]{state: StateDisabled}
}

// Enabled returns a configured operation
func Enabled[T any](cfg T) Op[T] {
	return Op[T]{state: StateEnabled, cfg: cfg}
}

// State returns the slot state
func (o Op[T]) State() State {
	return o.state
}

// Enabled reports whether the operation is configured
func (o Op[T]) Enabled() bool {
	return o.state == StateEnabled
}

// Disabled reports whether the operation was explicitly turned off
func (o Op[T]) Disabled() bool {
	return o.state == StateDisabled
}

// Config returns the operation configuration and whether it is enabled
func (o Op[T]) Config() (T, bool) {
	return o.cfg, o.state == StateEnabled
}
