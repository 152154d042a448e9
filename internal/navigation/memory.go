package navigation

import "sync"

// MemoryEnvironment is an in-process Environment. It records fragment
// writes, queues frame callbacks until Flush, and lets callers simulate
// browser navigation. The zero value has no location; use
// NewMemoryEnvironment for one that does.
type MemoryEnvironment struct {
	mu          sync.Mutex
	hasLocation bool
	fragment    string
	writes      []string
	listeners   map[int]func()
	nextID      int
	frames      []func()
	elements    map[string]*MemoryElement
}

// NewMemoryEnvironment returns an environment whose location fragment
// starts at fragment.
func NewMemoryEnvironment(fragment string) *MemoryEnvironment {
	return &MemoryEnvironment{hasLocation: true, fragment: fragment}
}

func (m *MemoryEnvironment) Fragment() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fragment, m.hasLocation
}

// SetFragment writes the location. Like a browser, it only reports a
// change to listeners when the value differs.
func (m *MemoryEnvironment) SetFragment(fragment string) {
	m.mu.Lock()
	m.writes = append(m.writes, fragment)
	changed := m.fragment != fragment
	m.fragment = fragment
	m.hasLocation = true
	m.mu.Unlock()

	if changed {
		m.notify()
	}
}

func (m *MemoryEnvironment) OnFragmentChange(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listeners == nil {
		m.listeners = make(map[int]func())
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *MemoryEnvironment) RequestFrame(fn func()) {
	m.mu.Lock()
	m.frames = append(m.frames, fn)
	m.mu.Unlock()
}

func (m *MemoryEnvironment) ElementByID(id string) (Element, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Simulate changes the location as a back/forward navigation would,
// without going through any controller.
func (m *MemoryEnvironment) Simulate(fragment string) {
	m.mu.Lock()
	changed := m.fragment != fragment
	m.fragment = fragment
	m.hasLocation = true
	m.mu.Unlock()

	if changed {
		m.notify()
	}
}

// Flush runs the queued frame callbacks in order, including any queued
// while flushing, and returns how many ran.
func (m *MemoryEnvironment) Flush() int {
	ran := 0
	for {
		m.mu.Lock()
		if len(m.frames) == 0 {
			m.mu.Unlock()
			return ran
		}
		fn := m.frames[0]
		m.frames = m.frames[1:]
		m.mu.Unlock()

		fn()
		ran++
	}
}

// Pending returns the number of queued frame callbacks.
func (m *MemoryEnvironment) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// Writes returns every fragment written through SetFragment, in order.
func (m *MemoryEnvironment) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// Listeners returns the number of registered change listeners.
func (m *MemoryEnvironment) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// AddElement registers an element under id and returns it.
func (m *MemoryEnvironment) AddElement(id string) *MemoryElement {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.elements == nil {
		m.elements = make(map[string]*MemoryElement)
	}
	el := &MemoryElement{ID: id}
	m.elements[id] = el
	return el
}

// RemoveElement drops the element registered under id.
func (m *MemoryEnvironment) RemoveElement(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.elements, id)
}

func (m *MemoryEnvironment) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.listeners))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// MemoryElement records the scrolls requested on it.
type MemoryElement struct {
	ID string

	mu      sync.Mutex
	scrolls []ScrollOptions
}

func (e *MemoryElement) ScrollIntoView(opts ScrollOptions) {
	e.mu.Lock()
	e.scrolls = append(e.scrolls, opts)
	e.mu.Unlock()
}

// Scrolls returns the options of every scroll so far.
func (e *MemoryElement) Scrolls() []ScrollOptions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ScrollOptions(nil), e.scrolls...)
}
