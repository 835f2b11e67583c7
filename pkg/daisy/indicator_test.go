package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestIndicator(t *testing.T) {
	node := Indicator(IndicatorProps{},
		IndicatorItem(IndicatorItemProps{Class: "badge"}, "new"),
		"content",
	)
	assert.Equal(t, `<div class="indicator"><div class="indicator-item badge">new</div>content</div>`, vtest.MustRender(t, node))
}
