// Package route maps URL fragments to the views of the site.
package route

import "strings"

const (
	// Root is the fragment of the home view.
	Root = "/"

	// ProjectPrefix is the fragment prefix of a project detail view.
	ProjectPrefix = "/project/"

	projectSegment = "project"
)

// Kind identifies which view a Route selects.
type Kind int

const (
	Home Kind = iota
	Project
)

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k Kind) String() string {
	switch k {
	case Project:
		return "project"
	default:
		return "home"
	}
}

// Route is the parsed form of a fragment. Slug is only meaningful for
// Project routes and may name a project that is not in the catalog.
type Route struct {
	Kind Kind   `json:"kind"`
	Slug string `json:"slug,omitempty"`
}

// Parse maps a fragment to a Route. Every input yields a route; anything
// that is not a project path is the home view.
func Parse(fragment string) Route {
	rest := strings.TrimPrefix(fragment, "#")
	rest = strings.TrimPrefix(rest, "/")

	parts := strings.Split(rest, "/")
	if parts[0] != projectSegment {
		return Route{Kind: Home}
	}

	r := Route{Kind: Project}
	if len(parts) > 1 {
		r.Slug = parts[1]
	}
	return r
}

// Normalize returns the canonical page fragment for target: any leading
// '#' is dropped and exactly one leading '/' is kept.
func Normalize(target string) string {
	rest := strings.TrimPrefix(target, "#")
	return Root + strings.TrimLeft(rest, "/")
}

// ProjectFragment returns the fragment of the project detail view for slug.
func ProjectFragment(slug string) string {
	return ProjectPrefix + slug
}

// IsAnchor reports whether fragment names an in-page anchor rather than
// a page route.
func IsAnchor(fragment string) bool {
	return fragment != "" && !strings.HasPrefix(fragment, "/")
}

// Fragment returns the page fragment that selects r.
func (r Route) Fragment() string {
	if r.Kind == Project {
		return ProjectFragment(r.Slug)
	}
	return Root
}
