package handlers

import (
	"net/http"
	"strings"

	"rolfe.dev/internal/models"
	"rolfe.dev/internal/route"
	"rolfe.dev/internal/services"
)

// RouteHandler exposes the fragment parser
type RouteHandler struct {
	projectService *services.ProjectService
}

// RouteResponse is the parsed form of a fragment
type RouteResponse struct {
	Fragment string          `json:"fragment"`
	Route    route.Route     `json:"route"`
	Anchor   string          `json:"anchor,omitempty"`
	Project  *models.Project `json:"project,omitempty"`
}

// NewRouteHandler creates a new RouteHandler
func NewRouteHandler(ps *services.ProjectService) *RouteHandler {
	return &RouteHandler{projectService: ps}
}

// ParseFragment handles GET /api/route?fragment=
func (h *RouteHandler) ParseFragment(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	rt := route.Parse(fragment)

	resp := RouteResponse{Fragment: fragment, Route: rt}
	if anchor := strings.TrimPrefix(fragment, "#"); rt.Kind == route.Home && route.IsAnchor(anchor) {
		resp.Anchor = anchor
	}
	if rt.Kind == route.Project {
		if p, ok := h.projectService.Lookup(rt.Slug); ok {
			resp.Project = &p
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
