package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// RadioColorScheme sets the radio color. Primary is the default.
type RadioColorScheme int

const (
	RadioColorSchemePrimary RadioColorScheme = iota
	RadioColorSchemeSecondary
	RadioColorSchemeAccent
	RadioColorSchemeSuccess
	RadioColorSchemeWarning
	RadioColorSchemeError
)

// String returns the class token for c.
func (c RadioColorScheme) String() string {
	switch c {
	case RadioColorSchemePrimary:
		return "radio-primary"
	case RadioColorSchemeSecondary:
		return "radio-secondary"
	case RadioColorSchemeAccent:
		return "radio-accent"
	case RadioColorSchemeSuccess:
		return "radio-success"
	case RadioColorSchemeWarning:
		return "radio-warning"
	case RadioColorSchemeError:
		return "radio-error"
	}
	return ""
}

// RadioSize sets the radio size modifier.
type RadioSize int

const (
	RadioSizeDefault RadioSize = iota
	RadioSizeSmall
	RadioSizeMedium
	RadioSizeLarge
)

// String returns the class token for s.
func (s RadioSize) String() string {
	switch s {
	case RadioSizeSmall:
		return "radio-sm"
	case RadioSizeMedium:
		return "radio-md"
	case RadioSizeLarge:
		return "radio-lg"
	}
	return ""
}

// RadioProps configures Radio. Name and Value identify the option within
// its group and should always be set.
type RadioProps struct {
	ID          string
	Class       string
	Name        string
	Value       string
	ColorScheme RadioColorScheme
	Size        RadioSize
	Checked     bool
	Disabled    bool
	Required    bool
}

// Radio renders a label wrapping a radio input and its caption. The id
// goes on the input so external labels can target it.
func Radio(p RadioProps, children ...any) *vdom.VNode {
	cls := classes("radio", p.ColorScheme.String(), p.Size.String(), p.Class)
	return element("label", cls, "",
		vdom.Input(
			vdom.Type("radio"),
			vdom.StringAttr("name", p.Name),
			vdom.StringAttr("value", p.Value),
			vdom.AttrIf(p.Checked, vdom.Checked()),
			vdom.AttrIf(p.Disabled, vdom.Disabled()),
			vdom.AttrIf(p.Required, vdom.Required()),
			vdom.StringAttr("id", p.ID),
		),
		children,
	)
}
