// Package scaffold provides the embedded starter files written by
// `docguide init`: a config file, a gitignore and one guide.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName  string
	Framework string
	Slug      string
}

// Write renders every template into dir and returns the written paths.
// Nothing is written if any target already exists, unless force is set.
func Write(dir string, data Data, force bool) ([]string, error) {
	if data.Slug == "" {
		return nil, fmt.Errorf("scaffold: empty guide slug")
	}

	type target struct{ src, out string }
	var targets []target
	err := fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		targets = append(targets, target{src: path, out: filepath.Join(dir, outputPath(rel, data.Slug))})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !force {
		for _, t := range targets {
			if _, err := os.Stat(t.out); err == nil {
				return nil, fmt.Errorf("%s already exists (use --force to overwrite)", t.out)
			}
		}
	}

	written := make([]string, 0, len(targets))
	for _, t := range targets {
		if err := render(t.src, t.out, data); err != nil {
			return written, err
		}
		written = append(written, t.out)
	}
	return written, nil
}

// outputPath maps a template path to its output path: the .tmpl suffix is
// dropped, a "dot-" prefix becomes ".", and the guide template takes the
// guide's slug as its file name.
func outputPath(rel, slug string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	dir, base := filepath.Split(rel)
	switch {
	case strings.HasPrefix(base, "dot-"):
		base = "." + strings.TrimPrefix(base, "dot-")
	case base == "guide.yaml":
		base = slug + ".yaml"
	}
	return filepath.Join(dir, base)
}

func render(src, out string, data Data) error {
	content, err := Templates.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	tmpl, err := template.New(filepath.Base(src)).Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse template %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute template %s: %w", src, err)
	}
	return nil
}
