package site

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/pkg/vtest"
)

func newBuilder(t *testing.T, opts Options) *Builder {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	if opts.OutDir == "" {
		opts.OutDir = t.TempDir()
	}
	b := New(config.New(), cat, zerolog.Nop(), opts)
	b.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBuildWritesGallery(t *testing.T) {
	var steps []string
	b := newBuilder(t, Options{Workers: 3, OnProgress: func(s string) { steps = append(steps, s) }})

	result, err := b.Build(context.Background())
	require.NoError(t, err)

	m := result.Manifest
	require.Len(t, m.Files, 34, "index plus one page per component")
	_, err = uuid.Parse(m.BuildID)
	assert.NoError(t, err)
	assert.Equal(t, "light", m.Theme)
	assert.Equal(t, "components/artboard.html", m.Files[0].Path)
	assert.Equal(t, "index.html", m.Files[len(m.Files)-1].Path)
	assert.NotEmpty(t, steps)

	for _, f := range m.Files {
		sum, err := HashFile(filepath.Join(result.OutDir, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		assert.Equal(t, f.SHA256, sum, f.Path)
	}

	onDisk, err := ReadManifest(result.OutDir)
	require.NoError(t, err)
	assert.Equal(t, m.BuildID, onDisk.BuildID)
	assert.Equal(t, m.Files, onDisk.Files)
}

func TestBuildPageContent(t *testing.T) {
	b := newBuilder(t, Options{Theme: "dracula"})

	result, err := b.Build(context.Background())
	require.NoError(t, err)

	index := readFile(t, filepath.Join(result.OutDir, "index.html"))
	assert.True(t, strings.HasPrefix(index, "<!DOCTYPE html>"))
	assert.Contains(t, index, `data-theme="dracula"`)
	assert.Contains(t, index, `href="components/input-group.html"`)
	assert.Contains(t, index, "© 2026 DaisyUI Components")

	button := readFile(t, filepath.Join(result.OutDir, "components", "button.html"))
	assert.Contains(t, button, "<title>Button · DaisyUI Components</title>")
	assert.Contains(t, button, `href="../index.html"`)
	assert.Contains(t, button, `id="demo-colors"`)
	assert.Contains(t, button, `class="btn btn-primary"`)
	assert.Contains(t, button, "&lt;button class=&quot;btn btn-primary&quot;", "demo HTML is shown escaped")
}

func TestBuildUnknownTheme(t *testing.T) {
	b := newBuilder(t, Options{Theme: "neon"})

	_, err := b.Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, "E105", errors.Code(err))
}

func TestBuildCancelled(t *testing.T) {
	b := newBuilder(t, Options{Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildAggregatesPageFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "components", "button.html"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "components", "hero.html"), 0o755))

	b := newBuilder(t, Options{OutDir: dir, Workers: 4})

	_, err := b.Build(context.Background())
	require.Error(t, err)

	var de *errors.DaisyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "E303", de.Code)
	assert.Equal(t, "2 of 34 pages failed", de.Detail)
	assert.Len(t, multierr.Errors(de.Wrapped), 2)

	_, statErr := os.Stat(filepath.Join(dir, "components", "chat.html"))
	assert.NoError(t, statErr, "other pages are still written")
	_, statErr = os.Stat(filepath.Join(dir, "manifest.json"))
	assert.True(t, os.IsNotExist(statErr), "no manifest for a failed build")
}

func TestBuildClean(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	b := newBuilder(t, Options{OutDir: dir, Clean: true})
	_, err := b.Build(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, b.Clean())
	_, statErr = os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewAppliesConfigDefaults(t *testing.T) {
	cfg := config.New()
	cfg.Build.Workers = 7
	cfg.Build.Pretty = true
	cfg.Site.Theme = "night"

	cat, err := catalog.Load()
	require.NoError(t, err)

	b := New(cfg, cat, zerolog.Nop(), Options{})
	assert.Equal(t, 7, b.options.Workers)
	assert.True(t, b.options.Pretty)
	assert.Equal(t, "night", b.options.Theme)
	assert.Equal(t, cfg.OutputPath(), b.options.OutDir)
}

func TestLinks(t *testing.T) {
	assert.Equal(t, "components/input-group.html", PagePath("input-group"))

	root := StaticLinks(0)
	assert.Equal(t, "index.html", root.Home)
	assert.Equal(t, "components/hero.html", root.Component("hero"))

	nested := StaticLinks(1)
	assert.Equal(t, "../index.html", nested.Home)
	assert.Equal(t, "../components/hero.html", nested.Component("hero"))

	server := ServerLinks(url.Values{"theme": {"dark"}})
	assert.Equal(t, "/?theme=dark", server.Home)
	assert.Equal(t, "/components/hero?theme=dark", server.Component("hero"))
	assert.Equal(t, "/components/hero", ServerLinks(nil).Component("hero"))
}

func TestComponentPageMarksActiveMenuItem(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	node, err := ComponentPage(cat, "hero", PageOptions{Site: config.New().Site, Links: ServerLinks(nil)})
	require.NoError(t, err)

	doc := vtest.Parse(t, node)
	var active []string
	for _, li := range doc.FindByClass("active") {
		active = append(active, vtest.Text(li))
	}
	assert.Equal(t, []string{"Hero"}, active)

	_, err = ComponentPage(cat, "missing", PageOptions{Links: ServerLinks(nil)})
	assert.Equal(t, "E202", errors.Code(err))
}

func TestDocument(t *testing.T) {
	site := config.New().Site
	site.Scripts = []string{"/app.js"}

	page := Document(PageOptions{Site: site}, "", nil)
	assert.Equal(t, "DaisyUI Components", page.Title)
	assert.Equal(t, "light", page.Theme)
	require.Len(t, page.Scripts, 1)
	assert.True(t, page.Scripts[0].Defer)

	page = Document(PageOptions{Site: site, Theme: "dark"}, "Hero", nil)
	assert.Equal(t, "Hero · DaisyUI Components", page.Title)
	assert.Equal(t, "dark", page.Theme)
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Data Display", heading("data-display"))
}
