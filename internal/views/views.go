// Package views renders the site's HTML from the static catalog.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"rolfe.dev/internal/models"
	"rolfe.dev/internal/route"
	"rolfe.dev/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// FallbackProjectTitle is shown for slugs that are not in the catalog.
const FallbackProjectTitle = "Project"

var (
	mainPlaceholders = []string{"Overview", "Problem & Goals", "Approach", "Results & Impact"}
	sidePlaceholders = []string{"Links & Repo", "Technologies Used"}
)

// ShellData fills the document around the routed view. The routed
// view itself is always rendered in the browser.
type ShellData struct {
	Title        string
	StaticPrefix string
	Hero         models.Hero
	Nav          []models.NavLink
}

// homeView is the catalog plus what the home footer needs.
type homeView struct {
	*models.Portfolio
	Year int
}

type projectView struct {
	Found bool
	Name  string
	Stack []string
	Blurb string
	Main  []string
	Side  []string
}

// Renderer renders the shell document and the routed views.
type Renderer struct {
	tmpl      *template.Template
	portfolio *models.Portfolio
	projects  *services.ProjectService
	md        goldmark.Markdown
	now       func() time.Time
}

// New parses the embedded templates.
func New(p *models.Portfolio, projects *services.ProjectService) (*Renderer, error) {
	r := &Renderer{
		portfolio: p,
		projects:  projects,
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:       time.Now,
	}

	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"join":            strings.Join,
		"markdown":        r.markdown,
		"projectFragment": route.ProjectFragment,
		"safeURL":         safeURL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Shell returns ShellData for the catalog with the given title and
// static asset prefix.
func (r *Renderer) Shell(title, staticPrefix string) ShellData {
	if title == "" {
		title = r.portfolio.Hero.Name
	}
	return ShellData{
		Title:        title,
		StaticPrefix: strings.TrimSuffix(staticPrefix, "/"),
		Hero:         r.portfolio.Hero,
		Nav:          r.portfolio.Nav,
	}
}

// RenderShell writes the full document.
func (r *Renderer) RenderShell(w io.Writer, data ShellData) error {
	return r.execute(w, "shell", data)
}

// RenderRoute writes the view selected by rt. Unknown project slugs get
// the fallback title and an empty stack.
func (r *Renderer) RenderRoute(w io.Writer, rt route.Route) error {
	if rt.Kind != route.Project {
		return r.execute(w, "home", homeView{Portfolio: r.portfolio, Year: r.now().Year()})
	}

	view := projectView{Name: FallbackProjectTitle, Main: mainPlaceholders, Side: sidePlaceholders}
	if p, ok := r.projects.Lookup(rt.Slug); ok {
		view.Found = true
		view.Name = p.Name
		view.Stack = p.Stack
		view.Blurb = p.Blurb
	}
	return r.execute(w, "project", view)
}

// RouteHTML renders rt into a string.
func (r *Renderer) RouteHTML(rt route.Route) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderRoute(&buf, rt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// execute writes nothing to w unless the whole template rendered.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// safeURL lets contact links with tel: through html/template, which
// only trusts http, https and mailto on its own.
func safeURL(href string) template.URL {
	for _, scheme := range []string{"https:", "http:", "mailto:", "tel:"} {
		if strings.HasPrefix(href, scheme) {
			return template.URL(href)
		}
	}
	return template.URL("#")
}
