package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// JoinOrientation lays out joined items. Horizontal is the default and
// always emits a token.
type JoinOrientation int

const (
	JoinOrientationHorizontal JoinOrientation = iota
	JoinOrientationVertical
)

// String returns the class token for o.
func (o JoinOrientation) String() string {
	switch o {
	case JoinOrientationHorizontal:
		return "join-horizontal"
	case JoinOrientationVertical:
		return "join-vertical"
	}
	return ""
}

// JoinProps configures Join.
type JoinProps struct {
	ID          string
	Class       string
	Orientation JoinOrientation
}

// Join renders a group whose items share borders.
func Join(p JoinProps, children ...any) *vdom.VNode {
	return element("div", classes("join", p.Orientation.String(), p.Class), p.ID, children)
}

// JoinItemProps configures JoinItem. Items carry no id.
type JoinItemProps struct {
	Class string
}

// JoinItem renders one joined item.
func JoinItem(p JoinItemProps, children ...any) *vdom.VNode {
	return element("div", classes("join-item", p.Class), "", children)
}
