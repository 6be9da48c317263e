package animate

// Config is a raw, partially specified animation configuration. Optional
// fields are pointers; nil fields fall back to the matching entry of
// Defaults when resolved. Kind has no default and must be set.
type Config struct {
	Kind Kind

	// Duration and Delay are in seconds. Negative or NaN values fall back
	// to the defaults.
	Duration *float64
	Delay    *float64

	// Easing is free-form CSS timing-function syntax ("ease-out",
	// "cubic-bezier(0.4, 0, 0.2, 1)", ...). It is passed through untouched.
	Easing *string

	// Distance is the travel magnitude in pixels for slide and bounce.
	// The sign encodes direction, the magnitude encodes travel.
	Distance *float64

	// Rotation is the rotation span in degrees for rotate.
	Rotation *Rotation

	// Scale is the starting scale factor for scale; the end is always 1.
	Scale *float64

	// Opacity is the start/end opacity pair. Every kind except rotate
	// fades between the two values while it plays.
	Opacity *Opacity

	// Axis is the travel axis for slide.
	Axis *Axis

	// AnimateOnMount controls the very first bind to a freshly mounted
	// element: when unset or false, the end state is applied instantly and
	// no animation plays. Subsequent generations always animate.
	AnimateOnMount *bool

	// ContinuousRotation selects the rotate start-angle strategy: when set,
	// the effective start is read from the element's currently rendered
	// rotation so consecutive rotations chain instead of snapping back to
	// the configured start.
	ContinuousRotation *bool

	// OnComplete is invoked once when the visual animation ends.
	OnComplete func(CompletionEvent)
}

// Rotation describes a rotation span in degrees. A nil Start means 0, which
// is the bare-number form: end angle only.
type Rotation struct {
	Start *float64
	End   float64
}

// RotateTo returns the bare-number rotation form: start 0, end deg.
func RotateTo(end float64) *Rotation {
	return &Rotation{End: end}
}

// Opacity is a start/end opacity pair, each in [0, 1].
type Opacity struct {
	Start float64
	End   float64
}

// DefaultTable holds the fallback value for every optional configuration
// field.
type DefaultTable struct {
	Duration float64
	Delay    float64
	Easing   string
	Scale    float64
	Opacity  Opacity
	Axis     Axis
}

// Defaults is the process-wide default table. It is established at program
// start and never mutated.
var Defaults = DefaultTable{
	Duration: 0.5,
	Delay:    0,
	Easing:   "ease-out",
	Scale:    0.8,
	Opacity:  Opacity{Start: 0, End: 1},
	Axis:     AxisX,
}
