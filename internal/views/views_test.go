package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"rolfe.dev/internal/content"
	"rolfe.dev/internal/route"
	"rolfe.dev/internal/services"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	p, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	r, err := New(p, services.NewProjectService(p.Projects))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestRenderHomeHasEveryAnchor(t *testing.T) {
	t.Parallel()

	html, err := newTestRenderer(t).RouteHTML(route.Route{Kind: route.Home})
	if err != nil {
		t.Fatalf("RouteHTML() error = %v", err)
	}

	for _, want := range []string{
		`id="skills"`,
		`id="experience"`,
		`id="projects"`,
		`id="education"`,
		`id="contact"`,
		`data-nav-route="/project/free-throw-rnn"`,
		"Canadian Tire Corporation",
		"<code>python-pptx</code>",
		`href="tel:&#43;14372371203"`,
		`<div role="button" tabindex="0" class="card project"`,
		"&copy; 2026 Daniel Rolfe",
		`href="mailto:daniel.rolfe@mail.utoronto.ca"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("home view missing %q", want)
		}
	}
}

func TestRenderProject(t *testing.T) {
	t.Parallel()

	html, err := newTestRenderer(t).RouteHTML(route.Route{Kind: route.Project, Slug: "free-throw-rnn"})
	if err != nil {
		t.Fatalf("RouteHTML() error = %v", err)
	}

	for _, want := range []string{
		"<h1>Biomechanics Free-Throw RNN</h1>",
		"Tech stack: PyTorch • NumPy",
		`data-nav-route="/"`,
		"Overview",
		"Results &amp; Impact",
		"Technologies Used",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("project view missing %q", want)
		}
	}
	if strings.Contains(html, `id="skills"`) {
		t.Fatal("project view contains home sections")
	}
	if strings.Contains(html, "<footer") {
		t.Fatal("project view contains the home footer")
	}
}

func TestRenderUnknownProject(t *testing.T) {
	t.Parallel()

	for _, slug := range []string{"", "does-not-exist"} {
		html, err := newTestRenderer(t).RouteHTML(route.Route{Kind: route.Project, Slug: slug})
		if err != nil {
			t.Fatalf("RouteHTML(%q) error = %v", slug, err)
		}
		if !strings.Contains(html, "<h1>"+FallbackProjectTitle+"</h1>") {
			t.Fatalf("slug %q: missing fallback title", slug)
		}
		if !strings.Contains(html, "Tech stack: </p>") {
			t.Fatalf("slug %q: stack not empty", slug)
		}
	}
}

func TestRenderShell(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	var buf bytes.Buffer
	if err := r.RenderShell(&buf, r.Shell("", "/static/")); err != nil {
		t.Fatalf("RenderShell() error = %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<title>Daniel Rolfe</title>",
		`<main id="app" class="relative z-10"></main>`,
		`data-nav-section="skills"`,
		`data-nav-section="contact"`,
		"View Projects",
		`src="/static/wasm_exec.js"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("shell missing %q", want)
		}
	}
}

func TestRenderShellEmptyPrefix(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	var buf bytes.Buffer
	if err := r.RenderShell(&buf, r.Shell("Portfolio", "")); err != nil {
		t.Fatalf("RenderShell() error = %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<title>Portfolio</title>") {
		t.Fatal("title not honored")
	}
	if !strings.Contains(html, `src="/wasm_exec.js"`) {
		t.Fatal("empty static prefix not honored")
	}
	if strings.Contains(html, `id="skills"`) || strings.Contains(html, "<footer") {
		t.Fatal("shell rendered part of a routed view")
	}
}

func TestSafeURL(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"tel:+1":              "tel:+1",
		"mailto:a@b.c":        "mailto:a@b.c",
		"https://github.com":  "https://github.com",
		"javascript:alert(1)": "#",
		"":                    "#",
	} {
		if got := string(safeURL(in)); got != want {
			t.Fatalf("safeURL(%q) = %q, want %q", in, got, want)
		}
	}
}
