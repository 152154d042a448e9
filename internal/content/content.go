// Package content holds the static catalog compiled into the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"rolfe.dev/internal/models"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

// Load decodes and validates the embedded catalog.
func Load() (*models.Portfolio, error) {
	return Parse(portfolioYAML)
}

// MustLoad is Load for process start, where a broken table is a build bug.
func MustLoad() *models.Portfolio {
	p, err := Load()
	if err != nil {
		panic("Failed to load portfolio content: " + err.Error())
	}
	return p
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the rest of the site relies on.
func Validate(p *models.Portfolio) error {
	if len(p.Projects) == 0 {
		return errors.New("portfolio has no projects")
	}

	seen := make(map[string]struct{}, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.Slug == "" {
			return fmt.Errorf("project %d has an empty slug", i)
		}
		if _, dup := seen[proj.Slug]; dup {
			return fmt.Errorf("duplicate project slug %q", proj.Slug)
		}
		seen[proj.Slug] = struct{}{}
	}

	for i, link := range p.Nav {
		if link.Section == "" {
			return fmt.Errorf("nav link %d (%q) has no section", i, link.Label)
		}
	}
	return nil
}
