package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// LinkColorScheme sets the link color. Neutral is the default.
type LinkColorScheme int

const (
	LinkColorSchemeNeutral LinkColorScheme = iota
	LinkColorSchemePrimary
	LinkColorSchemeSecondary
	LinkColorSchemeAccent
	LinkColorSchemeInfo
	LinkColorSchemeSuccess
	LinkColorSchemeWarning
	LinkColorSchemeError
)

// String returns the class token for c.
func (c LinkColorScheme) String() string {
	switch c {
	case LinkColorSchemeNeutral:
		return "link-neutral"
	case LinkColorSchemePrimary:
		return "link-primary"
	case LinkColorSchemeSecondary:
		return "link-secondary"
	case LinkColorSchemeAccent:
		return "link-accent"
	case LinkColorSchemeInfo:
		return "link-info"
	case LinkColorSchemeSuccess:
		return "link-success"
	case LinkColorSchemeWarning:
		return "link-warning"
	case LinkColorSchemeError:
		return "link-error"
	}
	return ""
}

// LinkProps configures Link.
type LinkProps struct {
	ID          string
	Class       string
	Href        string
	Target      string
	ColorScheme LinkColorScheme

	// External adds rel="noopener noreferrer", but only for links that
	// open in a new tab (Target "_blank").
	External bool
}

// Link renders an anchor. External links opened in a new tab get
// rel="noopener noreferrer".
func Link(p LinkProps, children ...any) *vdom.VNode {
	return element("a", classes("link", p.ColorScheme.String(), p.Class), p.ID,
		vdom.StringAttr("href", p.Href),
		vdom.StringAttr("target", p.Target),
		vdom.AttrIf(p.External && p.Target == "_blank", vdom.Rel("noopener noreferrer")),
		children,
	)
}
