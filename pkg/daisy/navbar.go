package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// NavbarProps configures Navbar.
type NavbarProps struct {
	ID    string
	Class string
}

// Navbar is a top bar split into start, center and end slots.
func Navbar(p NavbarProps, children ...any) *vdom.VNode {
	return simple("navbar", p.ID, p.Class, children)
}

// NavbarStartProps configures NavbarStart.
type NavbarStartProps struct {
	ID    string
	Class string
}

// NavbarStart renders the left slot.
func NavbarStart(p NavbarStartProps, children ...any) *vdom.VNode {
	return simple("navbar-start", p.ID, p.Class, children)
}

// NavbarCenterProps configures NavbarCenter.
type NavbarCenterProps struct {
	ID    string
	Class string
}

// NavbarCenter renders the middle slot.
func NavbarCenter(p NavbarCenterProps, children ...any) *vdom.VNode {
	return simple("navbar-center", p.ID, p.Class, children)
}

// NavbarEndProps configures NavbarEnd.
type NavbarEndProps struct {
	ID    string
	Class string
}

// NavbarEnd renders the right slot.
func NavbarEnd(p NavbarEndProps, children ...any) *vdom.VNode {
	return simple("navbar-end", p.ID, p.Class, children)
}
