// Package navigation keeps the active URL fragment in sync with the
// hosting window and is the only writer of it.
package navigation

import (
	"sync"

	"rolfe.dev/internal/route"
)

// Controller owns the current fragment. Consumers observe it through
// Current, Route and Subscribe; only the controller writes it.
type Controller struct {
	env Environment

	mu          sync.Mutex
	current     string
	subscribers map[int]func(string)
	nextID      int
	detach      func()
	closed      bool
}

// New creates a controller bound to env and reads the initial fragment
// from it. A nil env behaves like a host without a location.
func New(env Environment) *Controller {
	c := &Controller{
		env:         env,
		current:     route.Root,
		subscribers: make(map[int]func(string)),
	}
	if env == nil {
		return c
	}
	if f, ok := env.Fragment(); ok && f != "" {
		c.current = f
	}
	c.detach = env.OnFragmentChange(c.syncFromEnv)
	return c
}

// Current returns the active fragment.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Route returns the parsed active fragment.
func (c *Controller) Route() route.Route {
	return route.Parse(c.Current())
}

// Subscribe registers fn to be called with the new fragment every time
// the active fragment changes value. The returned func unregisters it.
func (c *Controller) Subscribe(fn func(fragment string)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}

	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// Navigate moves to the page fragment for target. Subscribers see the
// new value before Navigate returns.
func (c *Controller) Navigate(target string) {
	c.write(route.Normalize(target))
}

// GoToSection shows the home view and then jumps to the anchor id. The
// anchor write and the scroll happen on the next frame so the home view
// is mounted first, even when coming from a project page.
func (c *Controller) GoToSection(id string) {
	c.Navigate(route.Root)
	if c.env == nil {
		return
	}
	c.env.RequestFrame(func() {
		if c.isClosed() {
			return
		}
		c.write(id)
		c.ScrollToAnchor(id)
	})
}

// ScrollToAnchor smooth-scrolls the element with the given id into view.
// It reports false when there is no such element.
func (c *Controller) ScrollToAnchor(id string) bool {
	if c.env == nil || id == "" {
		return false
	}
	el, ok := c.env.ElementByID(id)
	if !ok || el == nil {
		return false
	}
	el.ScrollIntoView(anchorScroll)
	return true
}

// Close detaches from the environment and drops all subscribers.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	detach := c.detach
	c.detach = nil
	c.subscribers = make(map[int]func(string))
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// write is a no-op once the controller is closed, including for frames
// GoToSection queued before Close.
func (c *Controller) write(fragment string) {
	if c.isClosed() {
		return
	}
	if c.env != nil {
		c.env.SetFragment(fragment)
	}
	c.set(fragment)
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// syncFromEnv handles a host-reported change. Echoes of our own writes
// carry the value we already hold and are dropped by set.
func (c *Controller) syncFromEnv() {
	f, ok := c.env.Fragment()
	if !ok || f == "" {
		f = route.Root
	}
	c.set(f)
}

func (c *Controller) set(fragment string) {
	c.mu.Lock()
	if c.closed || c.current == fragment {
		c.mu.Unlock()
		return
	}
	c.current = fragment
	fns := make([]func(string), 0, len(c.subscribers))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subscribers[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(fragment)
	}
}
