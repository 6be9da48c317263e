package animate

import "strings"

// CompletionEvent is delivered when a CSS animation or transition on an
// element finishes. Target carries the element the event fired on, which may
// be a descendant of the bound element when the event bubbled.
type CompletionEvent struct {
	Target        Element
	AnimationName string
}

// Element is the driver's view of a DOM-like node. Implementations bridge to
// a real node (syscall/js, a virtual DOM, a test double). The driver borrows
// the element for the duration of a single operation; it never owns the
// node's lifetime and never rolls back visual state on teardown.
type Element interface {
	// Alive reports whether the node is still attached to a live document.
	// Every driver operation on a dead element is a silent no-op.
	Alive() bool

	AddClass(name string)
	RemoveClass(name string)
	Classes() []string

	// SetProperty sets an element-scoped CSS custom property, e.g.
	// "--animation-duration".
	SetProperty(name, value string)

	// SetStyle and Style access inline style declarations. Setting the
	// empty string removes the declaration.
	SetStyle(name, value string)
	Style(name string) string

	// ComputedStyle reads the currently rendered value of a style property.
	ComputedStyle(name string) string

	// Reflow forces a synchronous style and layout recomputation, flushing
	// pending writes so the next class change starts a fresh animation.
	Reflow()

	// OnAnimationEnd subscribes fn to animation completion events. The
	// returned func removes the subscription and is safe to call more than
	// once.
	OnAnimationEnd(fn func(CompletionEvent)) (remove func())
}

// removeAnimationClasses strips every class carrying ClassPrefix from el.
func removeAnimationClasses(el Element) {
	for _, class := range el.Classes() {
		if strings.HasPrefix(class, ClassPrefix) {
			el.RemoveClass(class)
		}
	}
}
