package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestRadio(t *testing.T) {
	got := vtest.MustRender(t, Radio(RadioProps{ID: "r1", Name: "plan", Value: "pro", Checked: true}, "Pro"))
	assert.Equal(t,
		`<label class="radio radio-primary"><input id="r1" checked name="plan" type="radio" value="pro">Pro</label>`,
		got)
}

func TestRadio_Tokens(t *testing.T) {
	node := Radio(RadioProps{
		Name:        "n",
		Value:       "v",
		ColorScheme: RadioColorSchemeWarning,
		Size:        RadioSizeSmall,
		Class:       "x",
		Disabled:    true,
		Required:    true,
	})
	doc := vtest.Parse(t, node)
	label := doc.First()
	class, _ := vtest.Attr(label, "class")
	assert.Equal(t, "radio radio-warning radio-sm x", class)
	_, labelID := vtest.Attr(label, "id")
	assert.False(t, labelID)

	input := doc.Find("input")
	_, disabled := vtest.Attr(input, "disabled")
	_, required := vtest.Attr(input, "required")
	_, checked := vtest.Attr(input, "checked")
	assert.True(t, disabled)
	assert.True(t, required)
	assert.False(t, checked)
}
