package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ButtonUIColorScheme selects the button palette. Neutral is the default.
type ButtonUIColorScheme int

const (
	ButtonUIColorSchemeNeutral ButtonUIColorScheme = iota
	ButtonUIColorSchemePrimary
	ButtonUIColorSchemeSecondary
	ButtonUIColorSchemeAccent
	ButtonUIColorSchemeInfo
	ButtonUIColorSchemeSuccess
	ButtonUIColorSchemeWarning
	ButtonUIColorSchemeError
	ButtonUIColorSchemeGhost
	ButtonUIColorSchemeLink
)

// String returns the class token for c.
func (c ButtonUIColorScheme) String() string {
	switch c {
	case ButtonUIColorSchemeNeutral:
		return "btn-neutral"
	case ButtonUIColorSchemePrimary:
		return "btn-primary"
	case ButtonUIColorSchemeSecondary:
		return "btn-secondary"
	case ButtonUIColorSchemeAccent:
		return "btn-accent"
	case ButtonUIColorSchemeInfo:
		return "btn-info"
	case ButtonUIColorSchemeSuccess:
		return "btn-success"
	case ButtonUIColorSchemeWarning:
		return "btn-warning"
	case ButtonUIColorSchemeError:
		return "btn-error"
	case ButtonUIColorSchemeGhost:
		return "btn-ghost"
	case ButtonUIColorSchemeLink:
		return "btn-link"
	}
	return ""
}

// ButtonUISize selects the button size. The default size adds no token.
type ButtonUISize int

const (
	ButtonUISizeDefault ButtonUISize = iota
	ButtonUISizeLarge
	ButtonUISizeMedium
	ButtonUISizeSmall
	ButtonUISizeExtraSmall
	ButtonUISizeTiny
)

// String returns the class token for s.
func (s ButtonUISize) String() string {
	switch s {
	case ButtonUISizeLarge:
		return "btn-lg"
	case ButtonUISizeMedium:
		return "btn-md"
	case ButtonUISizeSmall:
		return "btn-sm"
	case ButtonUISizeExtraSmall:
		return "btn-xs"
	case ButtonUISizeTiny:
		return "btn-tiny"
	}
	return ""
}

// ButtonUIShape selects a circle or square button.
type ButtonUIShape int

const (
	ButtonUIShapeNone ButtonUIShape = iota
	ButtonUIShapeCircle
	ButtonUIShapeSquare
)

// String returns the class token for s.
func (s ButtonUIShape) String() string {
	switch s {
	case ButtonUIShapeCircle:
		return "btn-circle"
	case ButtonUIShapeSquare:
		return "btn-square"
	}
	return ""
}

// ButtonUIVariant selects the visual style of the button.
type ButtonUIVariant int

const (
	ButtonUIVariantNone ButtonUIVariant = iota
	ButtonUIVariantOutline
	ButtonUIVariantSoft
	ButtonUIVariantWide
	ButtonUIVariantBlock
	ButtonUIVariantGlass
)

// String returns the class token for v.
func (v ButtonUIVariant) String() string {
	switch v {
	case ButtonUIVariantOutline:
		return "btn-outline"
	case ButtonUIVariantSoft:
		return "btn-soft"
	case ButtonUIVariantWide:
		return "btn-wide"
	case ButtonUIVariantBlock:
		return "btn-block"
	case ButtonUIVariantGlass:
		return "glass"
	}
	return ""
}

// ButtonUIState forces a visual state.
type ButtonUIState int

const (
	ButtonUIStateNone ButtonUIState = iota
	ButtonUIStateActive
	ButtonUIStateDisabled
	ButtonUIStateLoading
	ButtonUIStateFocus
)

// String returns the class token for s.
func (s ButtonUIState) String() string {
	switch s {
	case ButtonUIStateActive:
		return "btn-active"
	case ButtonUIStateDisabled:
		return "btn-disabled"
	case ButtonUIStateLoading:
		return "loading"
	case ButtonUIStateFocus:
		return "btn-focus"
	}
	return ""
}

// ButtonUIProps configures ButtonUI.
type ButtonUIProps struct {
	ID       string
	Class    string
	Disabled bool

	// Href turns the button into an anchor.
	Href string
	// Target applies to the anchor form only.
	Target string

	ColorScheme ButtonUIColorScheme
	Size        ButtonUISize
	Shape       ButtonUIShape
	Variant     ButtonUIVariant
	State       ButtonUIState

	// Loading is merged with State == ButtonUIStateLoading.
	Loading bool

	// PrefixIcon and SuffixIcon are trusted markup inserted unescaped
	// around the children.
	PrefixIcon string
	SuffixIcon string
}

// ButtonUI renders a DaisyUI button, or an anchor styled as a button
// when Href is set.
func ButtonUI(p ButtonUIProps, children ...any) *vdom.VNode {
	state := p.State
	if p.Loading {
		state = ButtonUIStateLoading
	}

	cls := classes("btn",
		p.ColorScheme.String(),
		p.Size.String(),
		p.Shape.String(),
		p.Variant.String(),
		state.String(),
		p.Class,
	)

	content := []any{
		buttonIcon(p.PrefixIcon),
		children,
		buttonIcon(p.SuffixIcon),
	}

	if p.Href != "" {
		return element("a", cls, p.ID,
			vdom.Href(p.Href),
			vdom.StringAttr("target", p.Target),
			vdom.AttrIf(p.Disabled, vdom.Attribute("aria-disabled", "true")),
			content,
		)
	}
	return element("button", cls, p.ID,
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		content,
	)
}

func buttonIcon(markup string) *vdom.VNode {
	if markup == "" {
		return nil
	}
	return vdom.Span(vdom.Class("icon"), vdom.Raw(markup))
}
