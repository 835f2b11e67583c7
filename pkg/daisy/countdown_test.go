package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestCountdownValue(t *testing.T) {
	doc := vtest.Parse(t, CountdownValue(CountdownValueProps{Value: 42}))
	span := doc.Find("span")
	require.NotNil(t, span)

	v, ok := vtest.Attr(span, "data-value")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, "42", vtest.Text(span))
	_, hasClass := vtest.Attr(span, "class")
	assert.False(t, hasClass)
}

func TestCountdown(t *testing.T) {
	node := Countdown(CountdownProps{Class: "font-mono"},
		CountdownValue(CountdownValueProps{Value: 10}),
		":",
		CountdownValue(CountdownValueProps{Value: -1, Class: "text-xl"}),
	)
	assert.Equal(t,
		`<div class="countdown font-mono"><span data-value="10">10</span>:<span class="text-xl" data-value="-1">-1</span></div>`,
		vtest.MustRender(t, node))
}
