package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// InputGroupSize sets the size of the whole group.
type InputGroupSize int

const (
	InputGroupSizeSmall InputGroupSize = iota + 1
	InputGroupSizeMedium
	InputGroupSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s InputGroupSize) String() string {
	switch s {
	case InputGroupSizeSmall:
		return "input-group-sm"
	case InputGroupSizeMedium:
		return "input-group-md"
	case InputGroupSizeLarge:
		return "input-group-lg"
	}
	return ""
}

// InputGroupProps configures InputGroup.
type InputGroupProps struct {
	ID       string
	Class    string
	Size     InputGroupSize
	Vertical bool
}

// InputGroup joins inputs, buttons, selects and icons into one control.
func InputGroup(p InputGroupProps, children ...any) *vdom.VNode {
	cls := classes("input-group", p.Size.String()).
		addIf(p.Vertical, "input-group-vertical").
		add(p.Class)
	return element("div", cls, p.ID, children)
}

// InputGroupInputProps configures InputGroupInput. Empty strings omit
// their attribute.
type InputGroupInputProps struct {
	ID          string
	Class       string
	Type        string
	Placeholder string
	Name        string
	Value       string
	Disabled    bool
	Required    bool
	Readonly    bool
}

// InputGroupInput renders the text input of a group.
func InputGroupInput(p InputGroupInputProps) *vdom.VNode {
	return element("input", classes("input-group-input", p.Class), p.ID,
		vdom.StringAttr("type", p.Type),
		vdom.StringAttr("placeholder", p.Placeholder),
		vdom.StringAttr("name", p.Name),
		vdom.StringAttr("value", p.Value),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		vdom.AttrIf(p.Required, vdom.Required()),
		vdom.AttrIf(p.Readonly, vdom.Readonly()),
	)
}

// InputGroupButtonProps configures InputGroupButton.
type InputGroupButtonProps struct {
	ID       string
	Class    string
	Type     string
	Disabled bool
}

// InputGroupButton renders a button attached to the input.
func InputGroupButton(p InputGroupButtonProps, children ...any) *vdom.VNode {
	return element("button", classes("input-group-button", p.Class), p.ID,
		vdom.StringAttr("type", p.Type),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		children,
	)
}

// InputGroupSelectProps configures InputGroupSelect.
type InputGroupSelectProps struct {
	ID       string
	Class    string
	Name     string
	Disabled bool
	Required bool
}

// InputGroupSelect renders a select attached to the input.
func InputGroupSelect(p InputGroupSelectProps, children ...any) *vdom.VNode {
	return element("select", classes("input-group-select", p.Class), p.ID,
		vdom.StringAttr("name", p.Name),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		vdom.AttrIf(p.Required, vdom.Required()),
		children,
	)
}

// InputGroupOptionProps configures InputGroupOption.
type InputGroupOptionProps struct {
	ID       string
	Class    string
	Value    string
	Selected bool
	Disabled bool
}

// InputGroupOption renders one option of an InputGroupSelect.
func InputGroupOption(p InputGroupOptionProps, children ...any) *vdom.VNode {
	return element("option", classes("input-group-option", p.Class), p.ID,
		vdom.StringAttr("value", p.Value),
		vdom.AttrIf(p.Selected, vdom.Selected()),
		vdom.AttrIf(p.Disabled, vdom.Disabled()),
		children,
	)
}

// InputGroupIconProps configures InputGroupIcon.
type InputGroupIconProps struct {
	ID    string
	Class string
}

// InputGroupIcon renders a decorative icon slot.
func InputGroupIcon(p InputGroupIconProps, children ...any) *vdom.VNode {
	return simple("input-group-icon", p.ID, p.Class, children)
}
