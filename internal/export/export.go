// Package export writes a static build of the site for hosts that only
// serve files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"rolfe.dev/internal/models"
	"rolfe.dev/internal/services"
	"rolfe.dev/internal/views"
)

// Options configures a static build.
type Options struct {
	OutputDir    string
	StaticDir    string
	StaticPrefix string
	SiteTitle    string
	Portfolio    *models.Portfolio
}

// Result summarizes what was written.
type Result struct {
	Files int
}

// Run writes index.html, the catalog JSON and a copy of the static dir
// into OutputDir.
func Run(opts Options) (Result, error) {
	var res Result
	if opts.OutputDir == "" {
		return res, errors.New("output dir is required")
	}
	if opts.Portfolio == nil {
		return res, errors.New("portfolio is required")
	}

	projectService := services.NewProjectService(opts.Portfolio.Projects)
	renderer, err := views.New(opts.Portfolio, projectService)
	if err != nil {
		return res, err
	}

	projectsDir := filepath.Join(opts.OutputDir, "api", "projects")
	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}

	index, err := os.Create(filepath.Join(opts.OutputDir, "index.html"))
	if err != nil {
		return res, fmt.Errorf("create index.html: %w", err)
	}
	err = renderer.RenderShell(index, renderer.Shell(opts.SiteTitle, opts.StaticPrefix))
	if cerr := index.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return res, fmt.Errorf("write index.html: %w", err)
	}
	res.Files++

	if err := writeJSON(filepath.Join(opts.OutputDir, "api", "projects.json"), models.ProjectList{Projects: projectService.GetAll()}); err != nil {
		return res, err
	}
	res.Files++

	for _, p := range projectService.GetAll() {
		if err := writeJSON(filepath.Join(projectsDir, p.Slug+".json"), p); err != nil {
			return res, err
		}
		res.Files++
	}

	if opts.StaticDir != "" {
		n, err := copyDir(opts.StaticDir, filepath.Join(opts.OutputDir, filepath.FromSlash(opts.StaticPrefix)))
		if err != nil {
			return res, fmt.Errorf("copy static files: %w", err)
		}
		res.Files += n
	}

	return res, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// copyDir copies regular files under src into dst. A missing src is
// logged and skipped so the catalog can be exported before the wasm
// bundle is built.
func copyDir(src, dst string) (int, error) {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: static dir %s does not exist, skipping", src)
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
