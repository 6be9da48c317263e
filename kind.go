package animate

import "fmt"

// Kind selects the keyframe family of an animation.
type Kind int

const (
	// KindUnspecified is the zero value. A configuration must name a kind
	// explicitly; there is no sensible default animation.
	KindUnspecified Kind = iota
	KindFade
	KindSlide
	KindScale
	KindRotate
	KindBounce
)

func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindSlide:
		return "slide"
	case KindScale:
		return "scale"
	case KindRotate:
		return "rotate"
	case KindBounce:
		return "bounce"
	default:
		return "unspecified"
	}
}

// ParseKind converts a kind name ("fade", "slide", ...) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "fade":
		return KindFade, nil
	case "slide":
		return KindSlide, nil
	case "scale":
		return KindScale, nil
	case "rotate":
		return KindRotate, nil
	case "bounce":
		return KindBounce, nil
	default:
		return KindUnspecified, &ArgumentError{
			ParamName: "kind",
			Message:   fmt.Sprintf("unknown animation kind '%s'", name),
		}
	}
}

// Axis is the travel axis of a slide animation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis converts an axis name ("x" or "y") to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisX, &ArgumentError{
			ParamName: "axis",
			Message:   fmt.Sprintf("unknown axis '%s'", name),
		}
	}
}

// Direction is the sign-derived direction component of a class name.
type Direction int

const (
	DirectionPositive Direction = iota
	DirectionNegative
)

func (d Direction) String() string {
	if d == DirectionNegative {
		return "negative"
	}
	return "positive"
}

// directionOf maps a signed magnitude to a Direction. Zero is positive.
func directionOf(v float64) Direction {
	if v < 0 {
		return DirectionNegative
	}
	return DirectionPositive
}

// ClassPrefix is shared by every animation utility class. The driver removes
// all classes carrying it before starting a new cycle.
const ClassPrefix = "animate-"

// ClassName derives the directional utility class for the configuration:
//
//	fade                     animate-fade
//	scale                    animate-scale
//	slide (axis, distance)   animate-slide-{axis}-{direction}
//	bounce (distance)        animate-bounce-{direction}
//	rotate (end - start)     animate-rotate-{direction}
func (r Resolved) ClassName() (string, error) {
	switch r.Kind {
	case KindFade:
		return ClassPrefix + "fade", nil
	case KindScale:
		return ClassPrefix + "scale", nil
	case KindSlide:
		return fmt.Sprintf("%sslide-%s-%s", ClassPrefix, r.Axis, directionOf(r.Distance)), nil
	case KindBounce:
		return fmt.Sprintf("%sbounce-%s", ClassPrefix, directionOf(r.Distance)), nil
	case KindRotate:
		return fmt.Sprintf("%srotate-%s", ClassPrefix, directionOf(r.RotationEnd-r.RotationStart)), nil
	default:
		return "", &InvalidKindError{Kind: r.Kind}
	}
}

// ClassNames enumerates every class the library can derive, in stable order.
// The stylesheet generator emits exactly one rule and keyframe family per
// entry.
func ClassNames() []string {
	return []string{
		ClassPrefix + "fade",
		ClassPrefix + "scale",
		ClassPrefix + "slide-x-positive",
		ClassPrefix + "slide-x-negative",
		ClassPrefix + "slide-y-positive",
		ClassPrefix + "slide-y-negative",
		ClassPrefix + "bounce-positive",
		ClassPrefix + "bounce-negative",
		ClassPrefix + "rotate-positive",
		ClassPrefix + "rotate-negative",
	}
}
