package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// MenuOrientation lays menu items out vertically or horizontally.
type MenuOrientation int

const (
	MenuOrientationVertical MenuOrientation = iota
	MenuOrientationHorizontal
)

// String returns the class token for o.
func (o MenuOrientation) String() string {
	switch o {
	case MenuOrientationVertical:
		return "menu-vertical"
	case MenuOrientationHorizontal:
		return "menu-horizontal"
	}
	return ""
}

// MenuProps configures Menu.
type MenuProps struct {
	ID          string
	Class       string
	Orientation MenuOrientation
}

// Menu renders a ul of menu items.
func Menu(p MenuProps, children ...any) *vdom.VNode {
	return element("ul", classes("menu", p.Orientation.String(), p.Class), p.ID, children)
}

// MenuItemProps configures MenuItem.
type MenuItemProps struct {
	ID       string
	Class    string
	Active   bool
	Disabled bool
	// Href wraps the children in a link.
	Href string
}

// MenuItem renders an li. With Href the children are wrapped in an anchor.
func MenuItem(p MenuItemProps, children ...any) *vdom.VNode {
	cls := classes("menu-item").
		addIf(p.Active, "active").
		addIf(p.Disabled, "disabled").
		add(p.Class)
	if p.Href != "" {
		return element("li", cls, p.ID, vdom.A(vdom.Href(p.Href), children))
	}
	return element("li", cls, p.ID, children)
}

// MenuTitleProps configures MenuTitle.
type MenuTitleProps struct {
	ID    string
	Class string
}

// MenuTitle renders a non-interactive heading item.
func MenuTitle(p MenuTitleProps, children ...any) *vdom.VNode {
	return element("li", classes("menu-title", p.Class), p.ID, children)
}
