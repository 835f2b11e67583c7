package daisy

import (
	"strconv"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// DefaultHeroOverlayOpacity is the overlay alpha used when
// HeroProps.OverlayOpacity is nil.
const DefaultHeroOverlayOpacity = 0.5

// HeroColor sets the hero background color.
type HeroColor int

const (
	HeroColorPrimary HeroColor = iota + 1
	HeroColorSecondary
	HeroColorAccent
	HeroColorNeutral
)

// String returns the class token for c, or "" when unset.
func (c HeroColor) String() string {
	switch c {
	case HeroColorPrimary:
		return "hero-primary"
	case HeroColorSecondary:
		return "hero-secondary"
	case HeroColorAccent:
		return "hero-accent"
	case HeroColorNeutral:
		return "hero-neutral"
	}
	return ""
}

// HeroSize sets the hero height modifier.
type HeroSize int

const (
	HeroSizeSmall HeroSize = iota + 1
	HeroSizeMedium
	HeroSizeLarge
	HeroSizeExtraLarge
)

// String returns the class token for s, or "" when unset.
func (s HeroSize) String() string {
	switch s {
	case HeroSizeSmall:
		return "hero-sm"
	case HeroSizeMedium:
		return "hero-md"
	case HeroSizeLarge:
		return "hero-lg"
	case HeroSizeExtraLarge:
		return "hero-xl"
	}
	return ""
}

// HeroAlign aligns hero text.
type HeroAlign int

const (
	HeroAlignLeft HeroAlign = iota + 1
	HeroAlignCenter
	HeroAlignRight
)

// String returns the class token for a, or "" when unset.
func (a HeroAlign) String() string {
	switch a {
	case HeroAlignLeft:
		return "text-left"
	case HeroAlignCenter:
		return "text-center"
	case HeroAlignRight:
		return "text-right"
	}
	return ""
}

// HeroTitleLevel picks the heading element of HeroTitle. H1 is the default.
type HeroTitleLevel int

const (
	HeroTitleLevelH1 HeroTitleLevel = iota
	HeroTitleLevelH2
	HeroTitleLevelH3
)

// String returns the heading tag name for l.
func (l HeroTitleLevel) String() string {
	switch l {
	case HeroTitleLevelH1:
		return "h1"
	case HeroTitleLevelH2:
		return "h2"
	case HeroTitleLevelH3:
		return "h3"
	}
	return ""
}

// HeroProps configures Hero.
type HeroProps struct {
	ID    string
	Class string
	Color HeroColor
	Size  HeroSize

	// Align is accepted for symmetry with HeroContent; alignment is
	// applied there.
	Align HeroAlign

	BackgroundImage string
	BackgroundColor string

	Overlay        bool
	OverlayOpacity *float64
}

// Hero renders a large banner section. Background image and color become
// an inline style; Overlay appends a darkening layer after the children.
func Hero(p HeroProps, children ...any) *vdom.VNode {
	cls := classes("hero", p.Color.String(), p.Size.String(), p.Class)

	var style string
	if p.BackgroundImage != "" {
		style = "background-image: url('" + p.BackgroundImage + "');"
	}
	if p.BackgroundColor != "" {
		if style != "" {
			style += " "
		}
		style += "background-color: " + p.BackgroundColor + ";"
	}

	var overlay *vdom.VNode
	if p.Overlay {
		opacity := DefaultHeroOverlayOpacity
		if p.OverlayOpacity != nil {
			opacity = *p.OverlayOpacity
		}
		overlay = vdom.Div(
			vdom.Class("hero-overlay"),
			vdom.StyleAttr("background-color: rgba(0, 0, 0, "+strconv.FormatFloat(opacity, 'f', -1, 64)+");"),
		)
	}

	return element("div", cls, p.ID,
		vdom.StringAttr("style", style),
		children,
		overlay,
	)
}

// HeroContentProps configures HeroContent.
type HeroContentProps struct {
	ID    string
	Class string
	Align HeroAlign
}

// HeroContent renders the centered content block of a hero.
func HeroContent(p HeroContentProps, children ...any) *vdom.VNode {
	return element("div", classes("hero-content", p.Align.String(), p.Class), p.ID, children)
}

// HeroTitleProps configures HeroTitle.
type HeroTitleProps struct {
	ID    string
	Class string
	Level HeroTitleLevel
}

// HeroTitle wraps children in a heading of the chosen level.
func HeroTitle(p HeroTitleProps, children ...any) *vdom.VNode {
	tag := p.Level.String()
	if tag == "" {
		tag = "h1"
	}
	return element("div", classes("hero-title", p.Class), p.ID,
		vdom.El(tag, children),
	)
}

// HeroSubtitleProps configures HeroSubtitle.
type HeroSubtitleProps struct {
	ID    string
	Class string
}

// HeroSubtitle renders the text under the title.
func HeroSubtitle(p HeroSubtitleProps, children ...any) *vdom.VNode {
	return simple("hero-subtitle", p.ID, p.Class, children)
}

// HeroActionsProps configures HeroActions.
type HeroActionsProps struct {
	ID    string
	Class string
}

// HeroActions renders the call-to-action row.
func HeroActions(p HeroActionsProps, children ...any) *vdom.VNode {
	return simple("hero-actions", p.ID, p.Class, children)
}
