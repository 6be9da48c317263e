package animate

import "math"

// Resolved is a Config with every optional field replaced by a validated
// concrete value. It is a pure function of the raw configuration and carries
// no element state.
type Resolved struct {
	Kind          Kind
	Duration      float64
	Delay         float64
	Easing        string
	Distance      float64
	RotationStart float64
	RotationEnd   float64
	Scale         float64
	Opacity       Opacity
	Axis          Axis

	AnimateOnMount     bool
	ContinuousRotation bool

	OnComplete func(CompletionEvent)
}

// Resolve normalizes raw into a fully-resolved configuration. It never
// panics; every malformed numeric input falls back to its default. The only
// error is a missing or unknown Kind, which has no sensible default and is
// reported as an *InvalidKindError.
func Resolve(raw Config) (Resolved, error) {
	switch raw.Kind {
	case KindFade, KindSlide, KindScale, KindRotate, KindBounce:
	default:
		return Resolved{}, &InvalidKindError{Kind: raw.Kind}
	}

	r := Resolved{
		Kind:       raw.Kind,
		Duration:   nonNegative(raw.Duration, Defaults.Duration),
		Delay:      nonNegative(raw.Delay, Defaults.Delay),
		Easing:     Defaults.Easing,
		Scale:      Defaults.Scale,
		Opacity:    Defaults.Opacity,
		Axis:       Defaults.Axis,
		OnComplete: raw.OnComplete,
	}

	if raw.Easing != nil && *raw.Easing != "" {
		r.Easing = *raw.Easing
	}
	if raw.Distance != nil && !math.IsNaN(*raw.Distance) {
		r.Distance = *raw.Distance
	}
	if raw.Rotation != nil {
		if raw.Rotation.Start != nil && !math.IsNaN(*raw.Rotation.Start) {
			r.RotationStart = *raw.Rotation.Start
		}
		if !math.IsNaN(raw.Rotation.End) {
			r.RotationEnd = raw.Rotation.End
		}
	}
	if raw.Scale != nil && !math.IsNaN(*raw.Scale) && *raw.Scale > 0 {
		r.Scale = *raw.Scale
	}
	if raw.Opacity != nil {
		r.Opacity = Opacity{
			Start: clampUnit(raw.Opacity.Start, Defaults.Opacity.Start),
			End:   clampUnit(raw.Opacity.End, Defaults.Opacity.End),
		}
	}
	if raw.Axis != nil && (*raw.Axis == AxisX || *raw.Axis == AxisY) {
		r.Axis = *raw.Axis
	}
	if raw.AnimateOnMount != nil {
		r.AnimateOnMount = *raw.AnimateOnMount
	}
	if raw.ContinuousRotation != nil {
		r.ContinuousRotation = *raw.ContinuousRotation
	}

	return r, nil
}

// nonNegative validates a time field: numeric and >= 0, else the default.
func nonNegative(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || *v < 0 {
		return def
	}
	return *v
}

// clampUnit validates an opacity field: NaN falls back to the default,
// everything else is clamped to [0, 1].
func clampUnit(v, def float64) float64 {
	switch {
	case math.IsNaN(v):
		return def
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
