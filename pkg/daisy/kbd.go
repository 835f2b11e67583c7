package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// KbdProps configures Kbd.
type KbdProps struct {
	ID    string
	Class string
}

// Kbd renders a keyboard key.
func Kbd(p KbdProps, children ...any) *vdom.VNode {
	return element("kbd", classes("kbd", p.Class), p.ID, children)
}
