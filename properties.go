package animate

import (
	"fmt"
	"math"
)

// Custom property names read by the stylesheet keyframes. Every value the
// driver writes is element-scoped; the keyframes carry literal fallbacks for
// elements animated without a bind.
const (
	PropDuration     = "--animation-duration"
	PropDelay        = "--animation-delay"
	PropEasing       = "--animation-easing"
	PropOpacityStart = "--opacity-start"
	PropOpacityEnd   = "--opacity-end"
	PropDistance     = "--distance"
	PropScale        = "--scale"
	PropDegreesStart = "--degrees-start"
	PropDegreesEnd   = "--degrees-end"
)

// applyProperties writes the custom properties for cfg onto el.
// rotationStart is the effective start angle, which in continuous mode may
// differ from the configured one.
func applyProperties(el Element, cfg Resolved, rotationStart float64) {
	el.SetProperty(PropDuration, fmt.Sprintf("%gs", cfg.Duration))
	el.SetProperty(PropDelay, fmt.Sprintf("%gs", cfg.Delay))
	el.SetProperty(PropEasing, cfg.Easing)

	switch cfg.Kind {
	case KindFade, KindSlide, KindScale, KindBounce:
		el.SetProperty(PropOpacityStart, fmt.Sprintf("%g", cfg.Opacity.Start))
		el.SetProperty(PropOpacityEnd, fmt.Sprintf("%g", cfg.Opacity.End))
	case KindRotate:
		// Rotation keeps the element fully opaque; direction lives in the
		// degree values, not in the class variables.
	}

	switch cfg.Kind {
	case KindSlide, KindBounce:
		el.SetProperty(PropDistance, fmt.Sprintf("%gpx", math.Abs(cfg.Distance)))
	case KindScale:
		el.SetProperty(PropScale, fmt.Sprintf("%g", cfg.Scale))
	case KindRotate:
		el.SetProperty(PropDegreesStart, fmt.Sprintf("%gdeg", rotationStart))
		el.SetProperty(PropDegreesEnd, fmt.Sprintf("%gdeg", cfg.RotationEnd))
	}
}

// applyEndState writes the configuration's final visual state directly,
// bypassing the animation. Used on the first bind when animate-on-mount is
// disabled.
func applyEndState(el Element, cfg Resolved) {
	switch cfg.Kind {
	case KindFade, KindSlide, KindScale, KindBounce:
		el.SetStyle("opacity", fmt.Sprintf("%g", cfg.Opacity.End))
	case KindRotate:
	}

	switch cfg.Kind {
	case KindSlide, KindBounce:
		el.SetStyle("transform", "translate(0, 0)")
	case KindScale:
		el.SetStyle("transform", "scale(1)")
	case KindRotate:
		el.SetStyle("transform", fmt.Sprintf("rotate(%gdeg)", cfg.RotationEnd))
	}
}
