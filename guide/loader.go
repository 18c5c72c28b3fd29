package guide

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docguide/markup"
)

// yamlGuide is the on-disk shape of a guide file.
type yamlGuide struct {
	Slug  string     `yaml:"slug"`
	Meta  yamlMeta   `yaml:"meta"`
	Steps []yamlStep `yaml:"steps"`
}

type yamlMeta struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Section       string `yaml:"section"`
	Layout        string `yaml:"layout"`
	AllowOverflow bool   `yaml:"allow_overflow"`
}

type yamlStep struct {
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Code  yamlCode `yaml:"code"`
}

type yamlCode struct {
	Name string `yaml:"name"`
	Lang string `yaml:"lang"`
	Code string `yaml:"code"`
}

// Loader reads guide files from disk.
type Loader struct {
	ignoreFile string
}

type LoaderOption func(*Loader)

// WithIgnoreFile sets the gitignore-style file used to skip matches
// (default ".gitignore"). An empty path disables ignore rules.
func WithIgnoreFile(path string) LoaderOption {
	return func(l *Loader) { l.ignoreFile = path }
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{ignoreFile: ".gitignore"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile parses and validates a single YAML guide file.
func (l *Loader) LoadFile(path string) (Guide, error) {
	// #nosec G304 - path comes from configured guide patterns
	b, err := os.ReadFile(path)
	if err != nil {
		return Guide{}, fmt.Errorf("read guide %s: %w", path, err)
	}
	var yg yamlGuide
	if err := yaml.Unmarshal(b, &yg); err != nil {
		return Guide{}, fmt.Errorf("parse guide %s: %w", path, err)
	}
	g, err := yg.toGuide()
	if err != nil {
		return Guide{}, fmt.Errorf("guide %s: %w", path, err)
	}
	if err := g.Validate(); err != nil {
		return Guide{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadFiles loads every guide file matched by the doublestar patterns,
// in lexical path order. Files matched by the ignore file are skipped.
func (l *Loader) LoadFiles(patterns []string) ([]Guide, error) {
	paths, err := l.Discover(patterns)
	if err != nil {
		return nil, err
	}
	guides := make([]Guide, 0, len(paths))
	for _, p := range paths {
		g, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		guides = append(guides, g)
	}
	return guides, nil
}

// Discover expands patterns to a sorted, de-duplicated list of files.
func (l *Loader) Discover(patterns []string) ([]string, error) {
	gi := l.compileIgnore()
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad guide pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			// Ignore rules only make sense for paths inside the project.
			if gi != nil && !filepath.IsAbs(m) && gi.MatchesPath(m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (l *Loader) compileIgnore() *ignore.GitIgnore {
	if l.ignoreFile == "" {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(l.ignoreFile)
	if err != nil {
		// no ignore file is fine
		return nil
	}
	return gi
}

func (yg yamlGuide) toGuide() (Guide, error) {
	g := Guide{
		Slug: yg.Slug,
		Meta: Meta{
			Title:         yg.Meta.Title,
			Description:   yg.Meta.Description,
			Section:       yg.Meta.Section,
			Layout:        yg.Meta.Layout,
			AllowOverflow: yg.Meta.AllowOverflow,
		},
		Steps: make([]Step, 0, len(yg.Steps)),
	}
	if g.Meta.Layout == "" {
		g.Meta.Layout = LayoutDocumentation
	}
	for i, s := range yg.Steps {
		body, err := markup.Parse(s.Body)
		if err != nil {
			return Guide{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		g.Steps = append(g.Steps, Step{
			Title: s.Title,
			Body:  body,
			Code:  CodeSample{Name: s.Code.Name, Lang: s.Code.Lang, Code: trimFinalNewline(s.Code.Code)},
		})
	}
	return g, nil
}

// YAML block scalars ("|") keep a trailing newline that guide authors never
// mean to show.
func trimFinalNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
