package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/pkg/vdom"
	"github.com/vango-dev/daisy/pkg/vtest"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoadEmbedded(t *testing.T) {
	c := mustLoad(t)

	entries := c.List()
	require.Len(t, entries, 33)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Name, entries[i].Name, "entries are sorted by name")
	}
}

func TestEveryDemoRenders(t *testing.T) {
	c := mustLoad(t)

	for _, e := range c.List() {
		for _, d := range e.Demos {
			t.Run(e.Name+"/"+d.Name, func(t *testing.T) {
				node, err := c.RenderDemo(e.Name, d.Name)
				require.NoError(t, err)
				require.NotNil(t, node)

				doc := vtest.Parse(t, node)
				assert.NotNil(t, doc.First(), "demo renders at least one element")
			})
		}
	}
}

func TestGet(t *testing.T) {
	c := mustLoad(t)

	button, err := c.Get("button")
	require.NoError(t, err)
	assert.Equal(t, "Button", button.Title)
	assert.Equal(t, "actions", button.Category)
	assert.Equal(t, []string{"ButtonUI"}, button.Parts)

	link, ok := button.Demo("link")
	require.True(t, ok)
	assert.Equal(t, "As link", link.Title)

	sizes, ok := button.Demo("sizes")
	require.True(t, ok)
	assert.Equal(t, "Sizes", sizes.Title)

	group, err := c.Get("input-group")
	require.NoError(t, err)
	assert.Equal(t, "Input Group", group.Title)

	_, err = c.Get("accordion")
	require.Error(t, err)
	assert.Equal(t, "E202", errors.Code(err))
}

func TestRenderDemoUnknown(t *testing.T) {
	c := mustLoad(t)

	_, err := c.RenderDemo("button", "huge")
	require.Error(t, err)
	var de *errors.DaisyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "E203", de.Code)
	assert.Contains(t, de.Detail, "colors, sizes, variants, link")

	_, err = c.RenderDemo("nope", "colors")
	assert.Equal(t, "E202", errors.Code(err))
}

func TestRenderDemoOutput(t *testing.T) {
	c := mustLoad(t)

	node, err := c.RenderDemo("kbd", "shortcut")
	require.NoError(t, err)

	doc := vtest.Parse(t, node)
	keys := doc.FindAll("kbd")
	require.Len(t, keys, 3)
	assert.Equal(t, "ctrl", vtest.Text(keys[0]))
}

func TestCategories(t *testing.T) {
	c := mustLoad(t)

	assert.Equal(t,
		[]string{"actions", "data-display", "data-input", "feedback", "layout", "mockup", "navigation"},
		c.Categories())

	var names []string
	for _, e := range c.InCategory("feedback") {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"progress", "skeleton", "toast"}, names)
}

func TestSearch(t *testing.T) {
	c := mustLoad(t)

	names := func(entries []*Entry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Contains(t, names(c.Search("MENU")), "menu")
	assert.Equal(t, []string{"button"}, names(c.Search("buttonui")))
	assert.Contains(t, names(c.Search("mockup")), "artboard")
	assert.Len(t, c.Search("  "), len(c.List()))
	assert.Empty(t, c.Search("zzz-no-match"))
}

func stubDemo() *vdom.VNode { return vdom.Div("stub") }

func TestParseDemoMismatch(t *testing.T) {
	data := []byte(`version: 1
components:
  - name: widget
    category: layout
    description: A widget.
    parts: [Widget]
    demos:
      - name: basic
      - name: fancy
`)
	demos := map[string]Demo{
		"widget/basic": stubDemo,
		"widget/extra": stubDemo,
	}

	_, err := Parse(data, demos)
	require.Error(t, err)

	var de *errors.DaisyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "E204", de.Code)
	assert.Len(t, multierr.Errors(de.Wrapped), 2)
	assert.Contains(t, de.Detail, "widget/fancy: no demo function")
	assert.Contains(t, de.Detail, "widget/extra: demo function has no catalog entry")
}

func TestParseInvalidManifest(t *testing.T) {
	data := []byte(`version: 1
components:
  - name: Bad Name
    category: weird
    description: Broken.
    demos:
      - name: basic
`)

	_, err := Parse(data, map[string]Demo{"Bad Name/basic": stubDemo})
	require.Error(t, err)

	var de *errors.DaisyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "E201", de.Code)
	assert.Len(t, multierr.Errors(de.Wrapped), 3)
	assert.Contains(t, de.Detail, `"ident"`)
	assert.Contains(t, de.Detail, `"category"`)
	assert.Contains(t, de.Detail, "parts")
}

func TestParseDuplicates(t *testing.T) {
	data := []byte(`version: 1
components:
  - name: widget
    category: layout
    description: A widget.
    parts: [Widget]
    demos:
      - name: basic
      - name: basic
  - name: widget
    category: layout
    description: Again.
    parts: [Widget]
    demos:
      - name: basic
`)

	_, err := Parse(data, map[string]Demo{"widget/basic": stubDemo})
	require.Error(t, err)
	assert.Equal(t, "E201", errors.Code(err))
	assert.Contains(t, err.Error(), `duplicate component "widget"`)
	assert.Contains(t, err.Error(), `widget: duplicate demo "basic"`)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("components: [\n"), nil)
	require.Error(t, err)
	assert.Equal(t, "E201", errors.Code(err))
}

func TestTitleFromName(t *testing.T) {
	assert.Equal(t, "Input Group", titleFromName("input-group"))
	assert.Equal(t, "Kbd", titleFromName("kbd"))
}
