// Package stylesheet generates the CSS contract consumed by the animate
// driver: one utility class and @keyframes family per directional class
// name, each reading the element-scoped custom properties the driver sets
// (with literal fallbacks), plus a reduced-motion accessibility override.
//
// Generating the stylesheet from animate.ClassNames keeps the class table,
// the keyframe definitions and the driver in sync from a single source.
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/atlekbai/animate"
)

// Options control stylesheet generation.
type Options struct {
	// ReducedMotionDuration replaces the animation duration when the
	// platform signals a reduced-motion preference. Empty means "0.01s".
	ReducedMotionDuration string
}

func (o Options) reducedDuration() string {
	if o.ReducedMotionDuration == "" {
		return "0.01s"
	}
	return o.ReducedMotionDuration
}

// KeyframesName returns the @keyframes identifier backing a utility class.
func KeyframesName(class string) string {
	return class + "-frames"
}

// Classes returns the utility-class block: one rule per directional class,
// wiring the animation shorthand to the timing custom properties.
func Classes() string {
	var b strings.Builder
	for _, class := range animate.ClassNames() {
		fmt.Fprintf(&b, ".%s {\n", class)
		fmt.Fprintf(&b, "\tanimation: %s var(%s, 0.5s) var(%s, ease-out) var(%s, 0s) both;\n",
			KeyframesName(class), animate.PropDuration, animate.PropEasing, animate.PropDelay)
		b.WriteString("}\n\n")
	}
	return b.String()
}

// Keyframes returns the @keyframes definitions backing the classes.
func Keyframes() string {
	var b strings.Builder
	for _, class := range animate.ClassNames() {
		fmt.Fprintf(&b, "@keyframes %s {\n", KeyframesName(class))
		for _, fr := range classFrames(class) {
			fmt.Fprintf(&b, "\t%s {\n", fr.at)
			for _, decl := range fr.decls {
				fmt.Fprintf(&b, "\t\t%s;\n", decl)
			}
			b.WriteString("\t}\n")
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}

// ReducedMotion returns the accessibility override collapsing duration and
// delay for users who prefer reduced motion.
func ReducedMotion(opts Options) string {
	names := animate.ClassNames()
	selectors := make([]string, len(names))
	for i, class := range names {
		selectors[i] = "." + class
	}
	var b strings.Builder
	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "\t%s {\n", strings.Join(selectors, ",\n\t"))
	fmt.Fprintf(&b, "\t\tanimation-duration: %s !important;\n", opts.reducedDuration())
	b.WriteString("\t\tanimation-delay: 0s !important;\n")
	b.WriteString("\t}\n}\n")
	return b.String()
}

// Sheet returns the complete stylesheet: classes, keyframes and the
// reduced-motion override.
func Sheet(opts Options) string {
	return Classes() + Keyframes() + ReducedMotion(opts)
}

// frame is one keyframe selector and its declarations.
type frame struct {
	at    string
	decls []string
}

// classFrames builds the keyframe stops for a directional class. The class
// name is authoritative: family, axis and direction are parsed back out of
// it so the keyframes can never drift from the driver's derivation.
func classFrames(class string) []frame {
	parts := strings.Split(strings.TrimPrefix(class, animate.ClassPrefix), "-")
	opacityFrom := fmt.Sprintf("opacity: var(%s, 0)", animate.PropOpacityStart)
	opacityTo := fmt.Sprintf("opacity: var(%s, 1)", animate.PropOpacityEnd)

	switch parts[0] {
	case "fade":
		return []frame{
			{"from", []string{opacityFrom}},
			{"to", []string{opacityTo}},
		}

	case "scale":
		return []frame{
			{"from", []string{
				fmt.Sprintf("transform: scale(var(%s, 0.8))", animate.PropScale),
				opacityFrom,
			}},
			{"to", []string{"transform: scale(1)", opacityTo}},
		}

	case "slide":
		axis := strings.ToUpper(parts[1])
		offset := fmt.Sprintf("var(%s, 16px)", animate.PropDistance)
		if parts[2] == "negative" {
			offset = fmt.Sprintf("calc(-1 * var(%s, 16px))", animate.PropDistance)
		}
		return []frame{
			{"from", []string{
				fmt.Sprintf("transform: translate%s(%s)", axis, offset),
				opacityFrom,
			}},
			{"to", []string{
				fmt.Sprintf("transform: translate%s(0)", axis),
				opacityTo,
			}},
		}

	case "bounce":
		stops := []struct{ at, factor string }{
			{"0%", "1"}, {"60%", "-0.25"}, {"80%", "0.1"}, {"100%", "0"},
		}
		if parts[1] == "negative" {
			stops = []struct{ at, factor string }{
				{"0%", "-1"}, {"60%", "0.25"}, {"80%", "-0.1"}, {"100%", "0"},
			}
		}
		frames := make([]frame, 0, len(stops))
		for i, stop := range stops {
			decls := []string{fmt.Sprintf(
				"transform: translateY(calc(%s * var(%s, 24px)))",
				stop.factor, animate.PropDistance,
			)}
			if i == 0 {
				decls = append(decls, opacityFrom)
			}
			if i == len(stops)-1 {
				decls = append(decls, opacityTo)
			}
			frames = append(frames, frame{stop.at, decls})
		}
		return frames

	case "rotate":
		endFallback := "180deg"
		if parts[1] == "negative" {
			endFallback = "-180deg"
		}
		return []frame{
			{"from", []string{fmt.Sprintf("transform: rotate(var(%s, 0deg))", animate.PropDegreesStart)}},
			{"to", []string{fmt.Sprintf("transform: rotate(var(%s, %s))", animate.PropDegreesEnd, endFallback)}},
		}
	}
	return nil
}
