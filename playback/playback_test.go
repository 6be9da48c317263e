package playback

import (
	"testing"

	"github.com/atlekbai/animate"
)

// styleElement is a minimal Element double: inline styles and liveness only.
type styleElement struct {
	alive  bool
	styles map[string]string
}

func newStyleElement() *styleElement {
	return &styleElement{alive: true, styles: map[string]string{}}
}

func (e *styleElement) Alive() bool                   { return e.alive }
func (e *styleElement) AddClass(string)               {}
func (e *styleElement) RemoveClass(string)            {}
func (e *styleElement) Classes() []string             { return nil }
func (e *styleElement) SetProperty(string, string)    {}
func (e *styleElement) SetStyle(name, value string)   { e.styles[name] = value }
func (e *styleElement) Style(name string) string      { return e.styles[name] }
func (e *styleElement) ComputedStyle(string) string   { return "" }
func (e *styleElement) Reflow()                       {}
func (e *styleElement) OnAnimationEnd(func(animate.CompletionEvent)) func() {
	return func() {}
}

func resolve(t *testing.T, raw animate.Config) animate.Resolved {
	t.Helper()
	cfg, err := animate.Resolve(raw)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return cfg
}

func floatPtr(v float64) *float64 { return &v }

func TestFadeReachesEndOpacity(t *testing.T) {
	el := newStyleElement()
	completions := 0
	cfg := resolve(t, animate.Config{Kind: animate.KindFade})
	cfg.OnComplete = func(animate.CompletionEvent) { completions++ }
	p := NewPlayer(el, cfg)

	if done := p.Step(0.25); done {
		t.Fatal("playhead finished halfway through")
	}
	if el.styles["opacity"] == "" {
		t.Fatal("expected an opacity frame after the first step")
	}

	if done := p.Step(0.3); !done {
		t.Fatal("expected completion after the full duration")
	}
	if el.styles["opacity"] != "1" {
		t.Errorf("expected final opacity 1, got %q", el.styles["opacity"])
	}
	if completions != 1 {
		t.Errorf("expected one completion, got %d", completions)
	}
	if !p.Done() {
		t.Error("expected Done after completion")
	}

	// A finished player stays finished and never re-fires.
	if p.Step(0.1) {
		t.Error("finished player reported completion again")
	}
	if completions != 1 {
		t.Errorf("completion re-fired, got %d", completions)
	}
}

func TestSlideEndsAtOrigin(t *testing.T) {
	el := newStyleElement()
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:     animate.KindSlide,
		Distance: floatPtr(-100),
	}))

	for i := 0; i < 20 && !p.Done(); i++ {
		p.Step(0.05)
	}
	if !p.Done() {
		t.Fatal("expected slide to finish")
	}
	if el.styles["transform"] != "translateX(0px)" {
		t.Errorf("expected final transform translateX(0px), got %q", el.styles["transform"])
	}
}

func TestSlideAxisY(t *testing.T) {
	el := newStyleElement()
	axis := animate.AxisY
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:     animate.KindSlide,
		Distance: floatPtr(40),
		Axis:     &axis,
	}))

	p.Step(0.1)
	if got := el.styles["transform"]; len(got) < len("translateY(") || got[:11] != "translateY(" {
		t.Errorf("expected a translateY frame, got %q", got)
	}
}

func TestRotateEndsAtConfiguredAngle(t *testing.T) {
	el := newStyleElement()
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:     animate.KindRotate,
		Rotation: &animate.Rotation{Start: floatPtr(45), End: 225},
	}))

	for i := 0; i < 20 && !p.Done(); i++ {
		p.Step(0.05)
	}
	if el.styles["transform"] != "rotate(225deg)" {
		t.Errorf("expected final transform rotate(225deg), got %q", el.styles["transform"])
	}
	if el.styles["opacity"] != "" {
		t.Errorf("rotation must not touch opacity, got %q", el.styles["opacity"])
	}
}

func TestScaleEndsAtOne(t *testing.T) {
	el := newStyleElement()
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:  animate.KindScale,
		Scale: floatPtr(0.6),
	}))

	for i := 0; i < 20 && !p.Done(); i++ {
		p.Step(0.05)
	}
	if el.styles["transform"] != "scale(1)" {
		t.Errorf("expected final transform scale(1), got %q", el.styles["transform"])
	}
}

func TestBounceSettlesAtOrigin(t *testing.T) {
	el := newStyleElement()
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:     animate.KindBounce,
		Distance: floatPtr(24),
	}))

	for i := 0; i < 40 && !p.Done(); i++ {
		p.Step(0.05)
	}
	if !p.Done() {
		t.Fatal("expected bounce to finish")
	}
	if el.styles["transform"] != "translateY(0px)" {
		t.Errorf("expected bounce to settle at translateY(0px), got %q", el.styles["transform"])
	}
}

func TestDelayConsumesTimeBeforeFrames(t *testing.T) {
	el := newStyleElement()
	p := NewPlayer(el, resolve(t, animate.Config{
		Kind:  animate.KindFade,
		Delay: floatPtr(0.2),
	}))

	p.Step(0.1)
	if el.styles["opacity"] != "" {
		t.Errorf("expected no frame during the delay, got %q", el.styles["opacity"])
	}
	p.Step(0.15)
	if el.styles["opacity"] == "" {
		t.Error("expected a frame once the delay elapsed")
	}
}

func TestDetachedElementNeverCompletes(t *testing.T) {
	el := newStyleElement()
	el.alive = false
	completions := 0
	cfg := resolve(t, animate.Config{Kind: animate.KindFade})
	cfg.OnComplete = func(animate.CompletionEvent) { completions++ }
	p := NewPlayer(el, cfg)

	if p.Step(10) {
		t.Error("detached element must not complete")
	}
	if completions != 0 {
		t.Errorf("expected no completions, got %d", completions)
	}
}

func TestEasingMapping(t *testing.T) {
	tests := []struct {
		name string
		t    float32 // normalized time
		want float32 // expected eased progress
	}{
		{"linear", 0.5, 0.5},
	}
	for _, tt := range tests {
		fn := Easing(tt.name)
		// TweenFunc signature: (elapsed, begin, change, duration).
		got := fn(tt.t, 0, 1, 1)
		if got != tt.want {
			t.Errorf("Easing(%q)(%v): expected %v, got %v", tt.name, tt.t, tt.want, got)
		}
	}

	// Unknown keywords fall back to the ease-out curve.
	fallback := Easing("cubic-bezier(0.4, 0, 0.2, 1)")
	easeOut := Easing("ease-out")
	if fallback(0.5, 0, 1, 1) != easeOut(0.5, 0, 1, 1) {
		t.Error("expected unknown easing to fall back to ease-out")
	}
}
