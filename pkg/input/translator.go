package input

import "time"

// Default tuning for translating controller samples into motion.
const (
	// DefaultSensitivity scales raw axis values into degrees.
	DefaultSensitivity = 0.0032
	// DefaultMovementCount is how much accumulated momentum triggers a move.
	DefaultMovementCount = 10
	// DefaultMovementThreshold is the dead zone edge for the scaled
	// momentum signal.
	DefaultMovementThreshold = 1.0
	// DefaultMovementCooldown suppresses further moves after a move fires.
	DefaultMovementCooldown = 250 * time.Millisecond
)

// Settings holds the translator tuning knobs.
type Settings struct {
	Sensitivity       float64
	MovementCount     int
	MovementThreshold float64
	MovementCooldown  time.Duration
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity:       DefaultSensitivity,
		MovementCount:     DefaultMovementCount,
		MovementThreshold: DefaultMovementThreshold,
		MovementCooldown:  DefaultMovementCooldown,
	}
}

// Decision is the discrete outcome of a momentum or button evaluation.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionForward
	DecisionBackward
)

// String returns a short label for logging.
func (d Decision) String() string {
	switch d {
	case DecisionForward:
		return "forward"
	case DecisionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Translator debounces continuous controller input into discrete move
// decisions and continuous pan deltas.
//
// Sustained pressure past the dead zone accumulates momentum, one count per
// sample; crossing the movement count fires a move decision. Any sample back
// inside the dead zone clears the momentum immediately, and for a cooldown
// window after each move the momentum is forcibly held at zero so a single
// long push does not chain moves. Not safe for concurrent use.
type Translator struct {
	settings Settings

	lastMove time.Time
	counter  int
}

// NewTranslator creates a translator with zero momentum and the cooldown
// anchored at now.
func NewTranslator(settings Settings, now time.Time) *Translator {
	if settings.Sensitivity == 0 {
		settings = DefaultSettings()
	}
	return &Translator{
		settings: settings,
		lastMove: now,
	}
}

// Reset clears accumulated momentum and restarts the cooldown window. Called
// after every pano change so momentum never carries across a transition.
func (t *Translator) Reset(now time.Time) {
	t.counter = 0
	t.lastMove = now
}

// Yaw converts a raw twist sample into a heading delta. Returns false when
// the sample produces no pan.
func (t *Translator) Yaw(raw float64) (float64, bool) {
	delta := raw * t.settings.Sensitivity
	if delta == 0 {
		return 0, false
	}
	return delta, true
}

// Momentum feeds one sample of the two movement axes and returns the move
// decision for this instant.
func (t *Translator) Momentum(rawForward, rawTilt float64, now time.Time) Decision {
	signal := -t.settings.Sensitivity * (rawForward + rawTilt)

	switch {
	case signal > t.settings.MovementThreshold:
		t.counter++
	case signal < -t.settings.MovementThreshold:
		t.counter--
	default:
		t.counter = 0
	}

	if now.Sub(t.lastMove) < t.settings.MovementCooldown {
		t.counter = 0
		return DecisionNone
	}

	switch {
	case t.counter > t.settings.MovementCount:
		return DecisionForward
	case t.counter < -t.settings.MovementCount:
		return DecisionBackward
	default:
		return DecisionNone
	}
}

// Button maps a button transition to a move decision. Only a pressed edge
// (value > 0) produces a decision; buttons bypass momentum and cooldown.
func (t *Translator) Button(code ButtonCode, value int) Decision {
	if value <= 0 {
		return DecisionNone
	}

	switch code {
	case ButtonMoveForward:
		return DecisionForward
	case ButtonMoveBackward:
		return DecisionBackward
	default:
		return DecisionNone
	}
}
