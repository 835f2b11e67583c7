package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// IndicatorProps configures Indicator.
type IndicatorProps struct {
	ID    string
	Class string
}

// Indicator positions IndicatorItem badges on the corner of its content.
func Indicator(p IndicatorProps, children ...any) *vdom.VNode {
	return simple("indicator", p.ID, p.Class, children)
}

// IndicatorItemProps configures IndicatorItem.
type IndicatorItemProps struct {
	ID    string
	Class string
}

// IndicatorItem renders the badge pinned to the indicator corner.
func IndicatorItem(p IndicatorItemProps, children ...any) *vdom.VNode {
	return simple("indicator-item", p.ID, p.Class, children)
}
