package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// TabsOrientation lays tabs out vertically or horizontally.
type TabsOrientation int

const (
	TabsOrientationVertical TabsOrientation = iota
	TabsOrientationHorizontal
)

// String returns the class token for o.
func (o TabsOrientation) String() string {
	switch o {
	case TabsOrientationVertical:
		return "tabs-vertical"
	case TabsOrientationHorizontal:
		return "tabs-horizontal"
	}
	return ""
}

// TabsProps configures Tabs.
type TabsProps struct {
	ID          string
	Class       string
	Orientation TabsOrientation
}

// Tabs holds Tab and TabPanel children. A tab and its panel are paired
// by Value.
func Tabs(p TabsProps, children ...any) *vdom.VNode {
	return element("div", classes("tabs", p.Orientation.String(), p.Class), p.ID, children)
}

// TabProps configures Tab. Value links the tab to its TabPanel.
type TabProps struct {
	ID       string
	Class    string
	Value    string
	Disabled bool
}

// Tab renders one tab anchor carrying data-value.
func Tab(p TabProps, children ...any) *vdom.VNode {
	cls := classes("tab").addIf(p.Disabled, "tab-disabled").add(p.Class)
	return element("a", cls, p.ID, vdom.Data("value", p.Value), children)
}

// TabPanelProps configures TabPanel.
type TabPanelProps struct {
	ID    string
	Class string
	Value string
}

// TabPanel renders the content shown for the tab with the same Value.
func TabPanel(p TabPanelProps, children ...any) *vdom.VNode {
	return element("div", classes("tab-content", p.Class), p.ID, vdom.Data("value", p.Value), children)
}
