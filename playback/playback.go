// Package playback plays resolved animation configurations frame by frame
// on an element's inline styles. It mirrors the class-driven animate driver
// for hosts that have no stylesheet (test rigs, terminal previews,
// style-less embedders): same magnitudes, same end state, same one-shot
// completion notification, driven by explicit Step calls instead of CSS
// keyframes.
package playback

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/atlekbai/animate"
)

// Easing maps a CSS timing-function keyword to a tween easing function.
// Unrecognized values (cubic-bezier() syntax included) fall back to the
// ease-out curve, the resolver default.
func Easing(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "ease":
		return ease.OutQuad
	case "ease-in":
		return ease.InCubic
	case "ease-out":
		return ease.OutCubic
	case "ease-in-out":
		return ease.InOutCubic
	default:
		return ease.OutCubic
	}
}

// Player drives one resolved configuration on one element. Create one per
// cycle; a finished player stays finished.
type Player struct {
	el    animate.Element
	cfg   animate.Resolved
	delay float32

	opacity *gween.Tween
	motion  *gween.Sequence

	done bool
}

// NewPlayer prepares a playhead for cfg on el.
func NewPlayer(el animate.Element, cfg animate.Resolved) *Player {
	p := &Player{el: el, cfg: cfg, delay: float32(cfg.Delay)}
	duration := float32(cfg.Duration)
	easing := Easing(cfg.Easing)

	switch cfg.Kind {
	case animate.KindFade, animate.KindSlide, animate.KindScale, animate.KindBounce:
		p.opacity = gween.New(float32(cfg.Opacity.Start), float32(cfg.Opacity.End), duration, easing)
	case animate.KindRotate:
		// Rotation leaves opacity untouched, matching the keyframes.
	}

	switch cfg.Kind {
	case animate.KindSlide:
		p.motion = gween.NewSequence(gween.New(float32(cfg.Distance), 0, duration, easing))
	case animate.KindScale:
		p.motion = gween.NewSequence(gween.New(float32(cfg.Scale), 1, duration, easing))
	case animate.KindRotate:
		p.motion = gween.NewSequence(gween.New(float32(cfg.RotationStart), float32(cfg.RotationEnd), duration, easing))
	case animate.KindBounce:
		// Overshoot stops matching the bounce keyframes: in, past, settle.
		d := float32(cfg.Distance)
		p.motion = gween.NewSequence(
			gween.New(d, -d/4, duration*0.6, easing),
			gween.New(-d/4, d/10, duration*0.2, easing),
			gween.New(d/10, 0, duration*0.2, easing),
		)
	}
	return p
}

// Step advances the playhead by dt seconds and writes the current frame to
// the element's inline styles. It returns true exactly once, on the step
// that completes the animation; the completion callback fires on that step.
func (p *Player) Step(dt float64) bool {
	if p.done || p.el == nil || !p.el.Alive() {
		return false
	}

	d := float32(dt)
	if p.delay > 0 {
		if d <= p.delay {
			p.delay -= d
			return false
		}
		d -= p.delay
		p.delay = 0
	}

	finished := true
	if p.opacity != nil {
		v, fin := p.opacity.Update(d)
		p.el.SetStyle("opacity", fmt.Sprintf("%g", v))
		finished = finished && fin
	}
	if p.motion != nil {
		v, _, fin := p.motion.Update(d)
		p.el.SetStyle("transform", p.transformValue(v))
		finished = finished && fin
	}

	if !finished {
		return false
	}
	p.done = true
	if p.cfg.OnComplete != nil {
		p.cfg.OnComplete(animate.CompletionEvent{Target: p.el})
	}
	return true
}

// Done reports whether the playhead has finished.
func (p *Player) Done() bool {
	return p.done
}

func (p *Player) transformValue(v float32) string {
	switch p.cfg.Kind {
	case animate.KindSlide:
		if p.cfg.Axis == animate.AxisY {
			return fmt.Sprintf("translateY(%gpx)", v)
		}
		return fmt.Sprintf("translateX(%gpx)", v)
	case animate.KindScale:
		return fmt.Sprintf("scale(%g)", v)
	case animate.KindRotate:
		return fmt.Sprintf("rotate(%gdeg)", v)
	case animate.KindBounce:
		return fmt.Sprintf("translateY(%gpx)", v)
	default:
		return ""
	}
}
