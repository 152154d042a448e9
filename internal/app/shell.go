// Package app drives the single-page site: it renders the view for the
// active fragment and re-renders whenever the fragment changes.
package app

import (
	"log"
	"sync"

	"rolfe.dev/internal/navigation"
	"rolfe.dev/internal/route"
	"rolfe.dev/internal/views"
)

// Mount receives the HTML of the routed view.
type Mount interface {
	Replace(html string)
}

// Action is a click on a navigation element. Exactly one field is set.
type Action struct {
	Section string
	Route   string
}

// Shell renders routes from a navigation controller into a mount.
type Shell struct {
	nav      *navigation.Controller
	renderer *views.Renderer
	mount    Mount

	mu sync.Mutex
	// anchorFor is the fragment the home anchor effect last ran for.
	anchorFor  string
	anchorDone bool
}

// NewShell creates a shell; call Start to render.
func NewShell(nav *navigation.Controller, renderer *views.Renderer, mount Mount) *Shell {
	return &Shell{nav: nav, renderer: renderer, mount: mount}
}

// Start renders the active route and follows every later change until
// the returned stop func is called.
func (s *Shell) Start() (stop func()) {
	unsubscribe := s.nav.Subscribe(s.render)
	s.render(s.nav.Current())
	return unsubscribe
}

// HandleAction applies a navigation click.
func (s *Shell) HandleAction(a Action) {
	switch {
	case a.Section != "":
		s.nav.GoToSection(a.Section)
	case a.Route != "":
		s.nav.Navigate(a.Route)
	}
}

func (s *Shell) render(fragment string) {
	rt := route.Parse(fragment)
	html, err := s.renderer.RouteHTML(rt)
	if err != nil {
		log.Printf("Error rendering %s view for %q: %v", rt.Kind, fragment, err)
		return
	}
	s.mount.Replace(html)

	if rt.Kind == route.Home {
		s.homeMounted(fragment)
		return
	}

	// Leaving the home view unmounts it; the next mount starts fresh.
	s.mu.Lock()
	s.anchorDone = false
	s.mu.Unlock()
}

// homeMounted scrolls to the anchor named by fragment, once per change
// of the fragment value.
func (s *Shell) homeMounted(fragment string) {
	s.mu.Lock()
	if s.anchorDone && s.anchorFor == fragment {
		s.mu.Unlock()
		return
	}
	s.anchorFor = fragment
	s.anchorDone = true
	s.mu.Unlock()

	if route.IsAnchor(fragment) {
		s.nav.ScrollToAnchor(fragment)
	}
}
