//go:build js && wasm

// Package browser binds the navigation controller to the real window
// through syscall/js.
package browser

import (
	"strings"
	"sync"
	"syscall/js"

	"rolfe.dev/internal/app"
	"rolfe.dev/internal/navigation"
)

// Window implements navigation.Environment on the global window.
type Window struct {
	win js.Value
	doc js.Value

	mu        sync.Mutex
	listeners []listener
}

type listener struct {
	target js.Value
	event  string
	cb     js.Func
}

// NewWindow binds to the global window and document.
func NewWindow() *Window {
	win := js.Global()
	return &Window{win: win, doc: win.Get("document")}
}

func (w *Window) Fragment() (string, bool) {
	loc := w.win.Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return "", false
	}
	return strings.TrimPrefix(loc.Get("hash").String(), "#"), true
}

func (w *Window) SetFragment(fragment string) {
	w.win.Get("location").Set("hash", "#"+fragment)
}

func (w *Window) OnFragmentChange(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	w.win.Call("addEventListener", "hashchange", cb)
	return func() {
		w.win.Call("removeEventListener", "hashchange", cb)
		cb.Release()
	}
}

// RequestFrame schedules fn with requestAnimationFrame. The callback
// releases itself after it runs.
func (w *Window) RequestFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		defer cb.Release()
		fn()
		return nil
	})
	w.win.Call("requestAnimationFrame", cb)
}

func (w *Window) ElementByID(id string) (navigation.Element, bool) {
	el := w.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return element{v: el}, true
}

// OnAction installs one delegated click listener that turns clicks on
// data-nav-section / data-nav-route elements into actions.
func (w *Window) OnAction(fn func(app.Action)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		target := ev.Get("target")
		if target.IsNull() || target.IsUndefined() || target.Get("closest").IsUndefined() {
			return nil
		}
		el := target.Call("closest", "[data-nav-section],[data-nav-route]")
		if el.IsNull() {
			return nil
		}
		ev.Call("preventDefault")

		if section := attr(el, "data-nav-section"); section != "" {
			fn(app.Action{Section: section})
			return nil
		}
		fn(app.Action{Route: attr(el, "data-nav-route")})
		return nil
	})
	w.listen(w.doc, "click", cb)
}

// OnPageHide calls fn once when the page is unloaded for good. A page
// kept in the back/forward cache (event.persisted) stays live.
func (w *Window) OnPageHide(fn func()) {
	var once sync.Once
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() {
			return nil
		}
		once.Do(fn)
		return nil
	})
	w.listen(w.win, "pagehide", cb)
}

// Release drops the listeners installed by OnAction and OnPageHide.
func (w *Window) Release() {
	w.mu.Lock()
	listeners := w.listeners
	w.listeners = nil
	w.mu.Unlock()

	for _, l := range listeners {
		l.target.Call("removeEventListener", l.event, l.cb)
		l.cb.Release()
	}
}

func (w *Window) listen(target js.Value, event string, cb js.Func) {
	target.Call("addEventListener", event, cb)

	w.mu.Lock()
	w.listeners = append(w.listeners, listener{target: target, event: event, cb: cb})
	w.mu.Unlock()
}

// Mount returns an app.Mount writing into the element with the given id.
func (w *Window) Mount(id string) app.Mount {
	return mount{doc: w.doc, id: id}
}

type element struct {
	v js.Value
}

func (e element) ScrollIntoView(opts navigation.ScrollOptions) {
	e.v.Call("scrollIntoView", map[string]any{
		"behavior": string(opts.Behavior),
		"block":    string(opts.Block),
	})
}

type mount struct {
	doc js.Value
	id  string
}

func (m mount) Replace(html string) {
	el := m.doc.Call("getElementById", m.id)
	if el.IsNull() || el.IsUndefined() {
		return
	}
	el.Set("innerHTML", html)
}

func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
