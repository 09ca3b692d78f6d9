package slider

// Ownership records who is currently driving the slider value.
// A single tri-state replaces a pair of "user is using" / "list is using"
// booleans, so there is no combination in which both claim the value.
type Ownership int

const (
	Idle             Ownership = iota // Nobody is interacting with the slider
	UserDragging                      // A drag gesture is in progress on the slider
	ExternallyDriven                  // A collaborator (e.g. a scrolling list) is pushing a value
)

// String returns a human readable name, mostly for logs.
func (o Ownership) String() string {
	switch o {
	case Idle:
		return "idle"
	case UserDragging:
		return "user-dragging"
	case ExternallyDriven:
		return "externally-driven"
	default:
		return "unknown"
	}
}
