package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// DividerOrientation picks a horizontal or vertical rule.
type DividerOrientation int

const (
	DividerOrientationHorizontal DividerOrientation = iota + 1
	DividerOrientationVertical
)

// String returns the class token for o, or "" when unset.
func (o DividerOrientation) String() string {
	switch o {
	case DividerOrientationHorizontal:
		return "divider-horizontal"
	case DividerOrientationVertical:
		return "divider-vertical"
	}
	return ""
}

// DividerProps configures Divider.
type DividerProps struct {
	ID          string
	Class       string
	Orientation DividerOrientation
}

// Divider renders a separator line. Children become its label.
func Divider(p DividerProps, children ...any) *vdom.VNode {
	return element("div", classes("divider", p.Orientation.String(), p.Class), p.ID, children)
}
