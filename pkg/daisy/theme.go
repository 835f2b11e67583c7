package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ThemeName is one of the built-in DaisyUI themes. Light is the zero
// value.
type ThemeName int

const (
	ThemeNameLight ThemeName = iota
	ThemeNameDark
	ThemeNameCupcake
	ThemeNameBumblebee
	ThemeNameEmerald
	ThemeNameCorporate
	ThemeNameSynthwave
	ThemeNameRetro
	ThemeNameCyberpunk
	ThemeNameValentine
	ThemeNameHalloween
	ThemeNameGarden
	ThemeNameForest
	ThemeNameAqua
	ThemeNameLofi
	ThemeNamePastel
	ThemeNameFantasy
	ThemeNameWireframe
	ThemeNameBlack
	ThemeNameLuxury
	ThemeNameDracula
	ThemeNameCmyk
	ThemeNameAutumn
	ThemeNameBusiness
	ThemeNameAcid
	ThemeNameLemonade
	ThemeNameNight
	ThemeNameCoffee
	ThemeNameWinter
)

var themeTokens = [...]string{
	ThemeNameLight:     "light",
	ThemeNameDark:      "dark",
	ThemeNameCupcake:   "cupcake",
	ThemeNameBumblebee: "bumblebee",
	ThemeNameEmerald:   "emerald",
	ThemeNameCorporate: "corporate",
	ThemeNameSynthwave: "synthwave",
	ThemeNameRetro:     "retro",
	ThemeNameCyberpunk: "cyberpunk",
	ThemeNameValentine: "valentine",
	ThemeNameHalloween: "halloween",
	ThemeNameGarden:    "garden",
	ThemeNameForest:    "forest",
	ThemeNameAqua:      "aqua",
	ThemeNameLofi:      "lofi",
	ThemeNamePastel:    "pastel",
	ThemeNameFantasy:   "fantasy",
	ThemeNameWireframe: "wireframe",
	ThemeNameBlack:     "black",
	ThemeNameLuxury:    "luxury",
	ThemeNameDracula:   "dracula",
	ThemeNameCmyk:      "cmyk",
	ThemeNameAutumn:    "autumn",
	ThemeNameBusiness:  "business",
	ThemeNameAcid:      "acid",
	ThemeNameLemonade:  "lemonade",
	ThemeNameNight:     "night",
	ThemeNameCoffee:    "coffee",
	ThemeNameWinter:    "winter",
}

// String returns the theme identifier, or "" when t is out of range.
func (t ThemeName) String() string {
	if t < 0 || int(t) >= len(themeTokens) {
		return ""
	}
	return themeTokens[t]
}

// ThemeNames returns every built-in theme in declaration order.
func ThemeNames() []ThemeName {
	names := make([]ThemeName, len(themeTokens))
	for i := range themeTokens {
		names[i] = ThemeName(i)
	}
	return names
}

// ParseThemeName looks up a theme by its token ("dark", "cupcake", ...).
func ParseThemeName(s string) (ThemeName, bool) {
	for i, tok := range themeTokens {
		if tok == s {
			return ThemeName(i), true
		}
	}
	return 0, false
}

// ThemeProps configures Theme.
type ThemeProps struct {
	ID    string
	Class string
	Name  ThemeName
}

// Theme wraps children in a div marked with the theme name. The marker
// is emitted as a leading text node "data-theme=<name>", not as an
// attribute; pages that need the theme applied set data-theme on <html>.
func Theme(p ThemeProps, children ...any) *vdom.VNode {
	return element("div", classes(p.Class), p.ID,
		"data-theme="+p.Name.String(),
		children,
	)
}
