package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ToggleColorScheme sets the toggle color. Primary is the default.
type ToggleColorScheme int

const (
	ToggleColorSchemePrimary ToggleColorScheme = iota + 1
	ToggleColorSchemeSecondary
	ToggleColorSchemeAccent
	ToggleColorSchemeSuccess
	ToggleColorSchemeWarning
	ToggleColorSchemeError
	ToggleColorSchemeInfo
)

// String returns the class token for c, or "" when unset.
func (c ToggleColorScheme) String() string {
	switch c {
	case ToggleColorSchemePrimary:
		return "toggle-primary"
	case ToggleColorSchemeSecondary:
		return "toggle-secondary"
	case ToggleColorSchemeAccent:
		return "toggle-accent"
	case ToggleColorSchemeSuccess:
		return "toggle-success"
	case ToggleColorSchemeWarning:
		return "toggle-warning"
	case ToggleColorSchemeError:
		return "toggle-error"
	case ToggleColorSchemeInfo:
		return "toggle-info"
	}
	return ""
}

// ToggleSize sets the toggle size modifier.
type ToggleSize int

const (
	ToggleSizeDefault ToggleSize = iota
	ToggleSizeSmall
	ToggleSizeMedium
	ToggleSizeLarge
)

// String returns the class token for s.
func (s ToggleSize) String() string {
	switch s {
	case ToggleSizeSmall:
		return "toggle-sm"
	case ToggleSizeMedium:
		return "toggle-md"
	case ToggleSizeLarge:
		return "toggle-lg"
	}
	return ""
}

// ToggleProps configures Toggle.
type ToggleProps struct {
	ID          string
	Class       string
	Name        string
	ColorScheme ToggleColorScheme
	Size        ToggleSize
	Checked     bool
	Disabled    bool
}

// Toggle renders a switch-styled checkbox.
func Toggle(p ToggleProps) *vdom.VNode {
	cls := classes("toggle", p.ColorScheme.String(), p.Size.String(), p.Class)
	return element("input", cls, p.ID,
		vdom.Type("checkbox"),
		vdom.AttrIf(p.Checked, vdom.Checked()),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		vdom.StringAttr("name", p.Name),
	)
}
