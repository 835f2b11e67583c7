package daisy

import (
	"strconv"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// CountdownProps configures Countdown.
type CountdownProps struct {
	ID    string
	Class string
}

// Countdown renders the container for CountdownValue digits.
func Countdown(p CountdownProps, children ...any) *vdom.VNode {
	return simple("countdown", p.ID, p.Class, children)
}

// CountdownValueProps configures CountdownValue.
type CountdownValueProps struct {
	ID    string
	Class string
	Value int
}

// CountdownValue renders one animated digit group. The value appears
// both as data-value and as the visible text; children follow it.
func CountdownValue(p CountdownValueProps, children ...any) *vdom.VNode {
	v := strconv.Itoa(p.Value)
	return element("span", classes(p.Class), p.ID,
		vdom.Data("value", v),
		v,
		children,
	)
}
