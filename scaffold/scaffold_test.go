package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/highlight"
)

func TestWriteProducesLoadableGuide(t *testing.T) {
	dir := t.TempDir()
	written, err := Write(dir, Data{SiteName: "Acme Docs", Framework: "Laravel", Slug: "laravel"}, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, ".docguide.yaml"),
		filepath.Join(dir, ".gitignore"),
		filepath.Join(dir, "guides", "laravel.yaml"),
	}, written)

	g, err := guide.NewLoader(guide.WithIgnoreFile("")).LoadFile(filepath.Join(dir, "guides", "laravel.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "laravel", g.Slug)
	assert.Equal(t, "Install Tailwind CSS with Laravel", g.Meta.Title)
	require.Len(t, g.Steps, 5)

	for i, s := range g.Steps {
		assert.NoError(t, highlight.Check(s.Code.Code, s.Code.Lang), "step %d", i+1)
	}
}

func TestWriteConfigIsValidYAML(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(dir, Data{SiteName: `Say "hi"`, Framework: "Vite", Slug: "vite"}, false)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, ".docguide.yaml"))
	require.NoError(t, err)
	var cfg struct {
		Site struct {
			Name string `yaml:"name"`
		} `yaml:"site"`
		Guides struct {
			Patterns []string `yaml:"patterns"`
		} `yaml:"guides"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	assert.Equal(t, `Say "hi"`, cfg.Site.Name)
	assert.Equal(t, []string{"guides/**/*.yaml"}, cfg.Guides.Patterns)
}

func TestWriteRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	data := Data{SiteName: "Docs", Framework: "Vite", Slug: "vite"}
	_, err := Write(dir, data, false)
	require.NoError(t, err)

	_, err = Write(dir, data, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = Write(dir, data, true)
	assert.NoError(t, err)
}

func TestWriteRequiresSlug(t *testing.T) {
	_, err := Write(t.TempDir(), Data{SiteName: "Docs"}, false)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, ".docguide.yaml", outputPath("dot-docguide.yaml.tmpl", "x"))
	assert.Equal(t, filepath.Join("guides", "rails.yaml"), outputPath(filepath.Join("guides", "guide.yaml.tmpl"), "rails"))
}
