package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// StepsOrientation lays steps out vertically or horizontally.
type StepsOrientation int

const (
	StepsOrientationVertical StepsOrientation = iota
	StepsOrientationHorizontal
)

// String returns the class token for o.
func (o StepsOrientation) String() string {
	switch o {
	case StepsOrientationVertical:
		return "steps-vertical"
	case StepsOrientationHorizontal:
		return "steps-horizontal"
	}
	return ""
}

// StepsProps configures Steps. CurrentStep is accepted but not rendered.
type StepsProps struct {
	ID          string
	Class       string
	Orientation StepsOrientation

	// CurrentStep is informational; Step derives its state from its own
	// Value.
	CurrentStep int
}

// Steps renders a ul of Step items.
func Steps(p StepsProps, children ...any) *vdom.VNode {
	return element("ul", classes("steps", p.Orientation.String(), p.Class), p.ID, children)
}

// StepProps configures Step. Value is the step's offset from the
// current step: negative for completed steps, zero for the current one,
// positive for pending ones.
type StepProps struct {
	ID    string
	Class string
	Value int
}

// Step renders one li. Its state token comes from comparing Value with zero.
func Step(p StepProps, children ...any) *vdom.VNode {
	return element("li", classes("step", stepState(p.Value), p.Class), p.ID, children)
}

func stepState(value int) string {
	switch {
	case value < 0:
		return "step-completed"
	case value == 0:
		return "step-current"
	default:
		return "step-pending"
	}
}
