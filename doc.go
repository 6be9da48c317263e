// Package animate drives declarative CSS entrance animations on DOM-like
// elements for component-based UI frameworks.
//
// Given a small configuration (kind, duration, delay, easing, magnitude and
// direction parameters), the library derives a directional utility class,
// sets the custom properties the stylesheet keyframes read, and manages the
// teardown/reflow/reapply cycle that makes a restarted animation play as a
// fresh one instead of being coalesced by the renderer. It supports:
//
//   - Five keyframe families: fade, slide, scale, rotate, bounce
//   - Default-applying, clamping configuration resolution
//   - Replay with a monotonically increasing generation counter
//   - Animate-on-mount suppression for the first bind
//   - One-shot, target-filtered completion callbacks
//   - Reset or continuous rotation start strategies
//
// # Basic Usage
//
// Resolve a configuration and bind it to an element:
//
//	cfg, err := animate.Resolve(animate.Config{Kind: animate.KindFade})
//	if err != nil {
//	    // missing or unknown kind
//	}
//	driver := animate.NewDriver(el)
//	driver.Bind(cfg)
//
// # Replay
//
// Replay strips the animation state, forces a reflow and advances the
// generation; the caller rebinds in reaction:
//
//	driver.OnReplay(func(generation int) { driver.Bind(cfg) })
//	handle := driver.Handle()
//	handle.Replay()
//
// # Elements
//
// The driver talks to the host through the Element interface (class list,
// inline styles, custom properties, computed style, reflow, animation-end
// events). Implementations bridge to a real DOM node, a virtual DOM, or a
// test double; the driver only borrows the element and never extends its
// lifetime.
//
// # Stylesheet
//
// The class and custom-property contract consumed by the browser is
// generated by the stylesheet subpackage, keeping keyframes and driver in
// sync from a single class table. Named configurations can be loaded from
// YAML with the preset subpackage, and the playback subpackage plays the
// same resolved configurations frame by frame on hosts without a
// stylesheet.
package animate
