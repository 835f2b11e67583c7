package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestInputGroup(t *testing.T) {
	vtest.ExpectClass(t, InputGroup(InputGroupProps{}), "input-group")
	vtest.ExpectClass(t, InputGroup(InputGroupProps{Size: InputGroupSizeLarge, Vertical: true, Class: "w-full"}),
		"input-group input-group-lg input-group-vertical w-full")
}

func TestInputGroupInput(t *testing.T) {
	got := vtest.MustRender(t, InputGroupInput(InputGroupInputProps{
		Type:        "text",
		Placeholder: "Search...",
		Name:        "q",
		Required:    true,
	}))
	assert.Equal(t, `<input class="input-group-input" name="q" placeholder="Search..." required type="text">`, got)

	got = vtest.MustRender(t, InputGroupInput(InputGroupInputProps{Type: "email", Value: "a@b.c", Disabled: true, Readonly: true}))
	assert.Equal(t, `<input class="input-group-input" disabled readonly type="email" value="a@b.c">`, got)
}

func TestInputGroupButton(t *testing.T) {
	got := vtest.MustRender(t, InputGroupButton(InputGroupButtonProps{Type: "submit"}, "Submit"))
	assert.Equal(t, `<button class="input-group-button" type="submit">Submit</button>`, got)
}

func TestInputGroupSelect(t *testing.T) {
	node := InputGroupSelect(InputGroupSelectProps{Name: "n", Required: true},
		InputGroupOption(InputGroupOptionProps{Value: "1", Selected: true}, "Option 1"),
		InputGroupOption(InputGroupOptionProps{Value: "2", Disabled: true}, "Option 2"),
	)
	assert.Equal(t,
		`<select class="input-group-select" name="n" required><option class="input-group-option" selected value="1">Option 1</option><option class="input-group-option" disabled value="2">Option 2</option></select>`,
		vtest.MustRender(t, node))
}

func TestInputGroupIcon(t *testing.T) {
	vtest.ExpectClass(t, InputGroupIcon(InputGroupIconProps{}, "@"), "input-group-icon")
}
