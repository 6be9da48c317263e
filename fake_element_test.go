package animate

import "sync"

// fakeElement is an in-memory Element double recording every driver
// operation in order.
type fakeElement struct {
	mu        sync.Mutex
	alive     bool
	classes   []string
	styles    map[string]string
	props     map[string]string
	computed  map[string]string
	reflows   int
	listeners map[int]func(CompletionEvent)
	nextID    int
	classLog  []string
}

func newFakeElement() *fakeElement {
	return &fakeElement{
		alive:     true,
		styles:    map[string]string{},
		props:     map[string]string{},
		computed:  map[string]string{},
		listeners: map[int]func(CompletionEvent){},
	}
}

func (f *fakeElement) Alive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alive
}

func (f *fakeElement) AddClass(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.classes {
		if c == name {
			return
		}
	}
	f.classes = append(f.classes, name)
	f.classLog = append(f.classLog, "+"+name)
}

func (f *fakeElement) RemoveClass(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.classes[:0]
	removed := false
	for _, c := range f.classes {
		if c == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	f.classes = kept
	if removed {
		f.classLog = append(f.classLog, "-"+name)
	}
}

func (f *fakeElement) Classes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.classes))
	copy(out, f.classes)
	return out
}

func (f *fakeElement) SetProperty(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.props[name] = value
}

func (f *fakeElement) SetStyle(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value == "" {
		delete(f.styles, name)
		return
	}
	f.styles[name] = value
}

func (f *fakeElement) Style(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.styles[name]
}

func (f *fakeElement) ComputedStyle(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.computed[name]
}

func (f *fakeElement) Reflow() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reflows++
}

func (f *fakeElement) OnAnimationEnd(fn func(CompletionEvent)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

// fireAnimationEnd delivers a completion event attributed to target, which
// may differ from f to simulate a bubbled descendant event. Listeners run
// without the element lock held.
func (f *fakeElement) fireAnimationEnd(target Element, name string) {
	f.mu.Lock()
	fns := make([]func(CompletionEvent), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(CompletionEvent{Target: target, AnimationName: name})
	}
}

func (f *fakeElement) animationClasses() []string {
	var out []string
	for _, c := range f.Classes() {
		if len(c) >= len(ClassPrefix) && c[:len(ClassPrefix)] == ClassPrefix {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeElement) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func (f *fakeElement) classAdds(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, entry := range f.classLog {
		if entry == "+"+name {
			n++
		}
	}
	return n
}

func (f *fakeElement) classRemovals(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, entry := range f.classLog {
		if entry == "-"+name {
			n++
		}
	}
	return n
}
