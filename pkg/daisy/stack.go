package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// StackDirection sets the stacking axis.
type StackDirection int

const (
	StackDirectionVertical StackDirection = iota + 1
	StackDirectionHorizontal
)

// String returns the class token for d, or "" when unset.
func (d StackDirection) String() string {
	switch d {
	case StackDirectionVertical:
		return "stack-vertical"
	case StackDirectionHorizontal:
		return "stack-horizontal"
	}
	return ""
}

// StackProps configures Stack.
type StackProps struct {
	ID        string
	Class     string
	Direction StackDirection
}

// Stack renders children layered on top of each other.
func Stack(p StackProps, children ...any) *vdom.VNode {
	return element("div", classes("stack", p.Direction.String(), p.Class), p.ID, children)
}
