package daisy

import (
	"strconv"
	"strings"

	"github.com/vango-dev/daisy/pkg/vdom"
)

const (
	// DefaultFooterYear substitutes {year} when no year is given.
	DefaultFooterYear = 2025

	// DefaultCopyright is used when the copyright text is empty.
	DefaultCopyright = "© {year} My Company"
)

// FooterColor sets the footer background.
type FooterColor int

const (
	FooterColorNeutral FooterColor = iota + 1
	FooterColorPrimary
	FooterColorSecondary
)

// String returns the class token for c, or "" when unset.
func (c FooterColor) String() string {
	switch c {
	case FooterColorNeutral:
		return "footer-neutral"
	case FooterColorPrimary:
		return "footer-primary"
	case FooterColorSecondary:
		return "footer-secondary"
	}
	return ""
}

// FooterSize sets the footer size modifier.
type FooterSize int

const (
	FooterSizeSmall FooterSize = iota + 1
	FooterSizeMedium
	FooterSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s FooterSize) String() string {
	switch s {
	case FooterSizeSmall:
		return "footer-sm"
	case FooterSizeMedium:
		return "footer-md"
	case FooterSizeLarge:
		return "footer-lg"
	}
	return ""
}

// FooterProps configures Footer.
type FooterProps struct {
	ID    string
	Class string
	Color FooterColor
	Size  FooterSize

	// Logo is rendered first when set.
	Logo        *vdom.VNode
	Title       string
	Description string

	// Copyright may contain {year}; empty means DefaultCopyright.
	Copyright string
	Year      int
}

// Footer renders a page footer: logo, title and description, then
// children, then the copyright line.
func Footer(p FooterProps, children ...any) *vdom.VNode {
	cls := classes("footer", p.Color.String(), p.Size.String(), p.Class)

	var title, desc *vdom.VNode
	if p.Title != "" {
		title = vdom.Div(vdom.Class("footer-title"), p.Title)
	}
	if p.Description != "" {
		desc = vdom.Div(vdom.Class("footer-description"), p.Description)
	}

	copyright := p.Copyright
	if copyright == "" {
		copyright = DefaultCopyright
	}

	return element("footer", cls, p.ID,
		p.Logo,
		title,
		desc,
		children,
		vdom.Div(vdom.Class("footer-copyright"), expandYear(copyright, p.Year)),
	)
}

// expandYear replaces every {year} in text with year.
func expandYear(text string, year int) string {
	if year == 0 {
		year = DefaultFooterYear
	}
	return strings.ReplaceAll(text, "{year}", strconv.Itoa(year))
}

// FooterSectionProps configures FooterSection.
type FooterSectionProps struct {
	ID    string
	Class string
	Title string
}

// FooterSection renders a titled column of links.
func FooterSection(p FooterSectionProps, children ...any) *vdom.VNode {
	return element("div", classes("footer-section", p.Class), p.ID,
		vdom.H4(vdom.Class("footer-title"), p.Title),
		children,
	)
}

// FooterLinkProps configures FooterLink.
type FooterLinkProps struct {
	ID       string
	Class    string
	Href     string
	External bool
}

// FooterLink renders a hover-underlined link. External adds rel="noopener noreferrer".
func FooterLink(p FooterLinkProps, children ...any) *vdom.VNode {
	return element("a", classes("link", "link-hover", p.Class), p.ID,
		vdom.Href(p.Href),
		vdom.AttrIf(p.External, vdom.Rel("noopener noreferrer")),
		children,
	)
}

// FooterCopyrightProps configures FooterCopyright.
type FooterCopyrightProps struct {
	ID    string
	Class string
	// Text may contain {year}.
	Text string
	Year int
}

// FooterCopyright renders a standalone copyright line. Unlike Footer it
// has no default text.
func FooterCopyright(p FooterCopyrightProps) *vdom.VNode {
	return element("div", classes("footer-copyright", p.Class), p.ID,
		vdom.Text(expandYear(p.Text, p.Year)),
	)
}
