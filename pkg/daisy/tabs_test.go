package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestTabs(t *testing.T) {
	node := Tabs(TabsProps{Orientation: TabsOrientationHorizontal},
		Tab(TabProps{Value: "one"}, "One"),
		Tab(TabProps{Value: "two", Disabled: true}, "Two"),
		TabPanel(TabPanelProps{Value: "one"}, "First"),
	)
	assert.Equal(t,
		`<div class="tabs tabs-horizontal"><a class="tab" data-value="one">One</a><a class="tab tab-disabled" data-value="two">Two</a><div class="tab-content" data-value="one">First</div></div>`,
		vtest.MustRender(t, node))
}

func TestTabs_DefaultOrientation(t *testing.T) {
	vtest.ExpectClass(t, Tabs(TabsProps{}), "tabs tabs-vertical")
}
