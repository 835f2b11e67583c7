package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vdom"
	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestTheme(t *testing.T) {
	got := vtest.MustRender(t, Theme(ThemeProps{Name: ThemeNameDark}, vdom.P("x")))
	assert.Equal(t, `<div>data-theme=dark<p>x</p></div>`, got)

	got = vtest.MustRender(t, Theme(ThemeProps{Name: ThemeNameCupcake, Class: "p-4", ID: "t"}))
	assert.Equal(t, `<div class="p-4" id="t">data-theme=cupcake</div>`, got)
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Len(t, names, 29)
	assert.Equal(t, ThemeNameLight, names[0])
	assert.Equal(t, ThemeNameWinter, names[len(names)-1])

	seen := map[string]bool{}
	for _, n := range names {
		s := n.String()
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate theme %q", s)
		seen[s] = true

		parsed, ok := ParseThemeName(s)
		assert.True(t, ok)
		assert.Equal(t, n, parsed)
	}
}

func TestParseThemeName_Unknown(t *testing.T) {
	_, ok := ParseThemeName("solarized")
	assert.False(t, ok)
	_, ok = ParseThemeName("Dark")
	assert.False(t, ok)
	assert.Empty(t, ThemeName(99).String())
	assert.Empty(t, ThemeName(-1).String())
}
