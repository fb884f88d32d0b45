package input

// ButtonCode identifies a discrete controller button.
type ButtonCode int

const (
	// ButtonMoveBackward steps to the neighbor behind the viewer.
	ButtonMoveBackward ButtonCode = iota
	// ButtonMoveForward steps to the neighbor ahead of the viewer.
	ButtonMoveForward
)

// AxisCode identifies a continuous controller axis.
type AxisCode int

const (
	// AxisYaw is the twist axis; it pans the point of view.
	AxisYaw AxisCode = iota
	// AxisForward is the push axis; summed with AxisTilt it builds movement
	// momentum.
	AxisForward
	// AxisTilt is the tilt axis, the second momentum contributor.
	AxisTilt
)

// AxisState latches the most recent raw value per axis. Controllers report
// one axis per event while momentum is computed from two, so the session
// evaluates movement against the latched values on every sample.
type AxisState struct {
	values map[AxisCode]float64
}

// NewAxisState creates an empty latch; unseen axes read as zero.
func NewAxisState() *AxisState {
	return &AxisState{values: make(map[AxisCode]float64)}
}

// Set stores the latest raw value for an axis.
func (s *AxisState) Set(code AxisCode, value float64) {
	s.values[code] = value
}

// Value returns the latched raw value for an axis, zero if never seen.
func (s *AxisState) Value(code AxisCode) float64 {
	return s.values[code]
}
